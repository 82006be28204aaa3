package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/apperrors"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRemissionRepository is a mock type for the RemissionRepositoryWithTx interface
type MockRemissionRepository struct {
	mock.Mock
}

func (m *MockRemissionRepository) SaveRemission(ctx context.Context, remission domain.Remission) error {
	args := m.Called(ctx, remission)
	return args.Error(0)
}

func (m *MockRemissionRepository) FindRemissionByID(ctx context.Context, remissionID string) (*domain.Remission, error) {
	args := m.Called(ctx, remissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Remission), args.Error(1)
}

func (m *MockRemissionRepository) ListRemissionsByOrder(ctx context.Context, orderID string) ([]domain.Remission, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Remission), args.Error(1)
}

func (m *MockRemissionRepository) DeleteRemission(ctx context.Context, remissionID string) error {
	args := m.Called(ctx, remissionID)
	return args.Error(0)
}

func (m *MockRemissionRepository) FindRemissionByIDForUpdate(ctx context.Context, tx pgx.Tx, remissionID string) (*domain.Remission, error) {
	args := m.Called(ctx, tx, remissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Remission), args.Error(1)
}

func (m *MockRemissionRepository) FindSalesByRemissionIDInTx(ctx context.Context, tx pgx.Tx, remissionID string) ([]domain.Sale, error) {
	args := m.Called(ctx, tx, remissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockRemissionRepository) FindCreditsByRemissionIDInTx(ctx context.Context, tx pgx.Tx, remissionID string) ([]domain.CreditAssignment, error) {
	args := m.Called(ctx, tx, remissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditAssignment), args.Error(1)
}

func (m *MockRemissionRepository) UpdateRemissionStatusInTx(ctx context.Context, tx pgx.Tx, remissionID string, status domain.RemissionStatus) error {
	args := m.Called(ctx, tx, remissionID, status)
	return args.Error(0)
}

func (m *MockRemissionRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	args := m.Called(ctx, tx, sale)
	return args.Error(0)
}

func (m *MockRemissionRepository) SaveCreditInTx(ctx context.Context, tx pgx.Tx, credit domain.CreditAssignment) error {
	args := m.Called(ctx, tx, credit)
	return args.Error(0)
}

func (m *MockRemissionRepository) FindSalesByRemissionID(ctx context.Context, remissionID string) ([]domain.Sale, error) {
	args := m.Called(ctx, remissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockRemissionRepository) UpdateSaleCreatedAt(ctx context.Context, saleID string, createdAt time.Time) error {
	args := m.Called(ctx, saleID, createdAt)
	return args.Error(0)
}

func (m *MockRemissionRepository) FindCreditsByRemissionID(ctx context.Context, remissionID string) ([]domain.CreditAssignment, error) {
	args := m.Called(ctx, remissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CreditAssignment), args.Error(1)
}

func (m *MockRemissionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRemissionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRemissionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockOrderReader is a mock type for the OrderReader interface
type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderReader) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

// --- Test Suite Setup ---

type RemissionServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockRemissionRepository
	mockOrderRepo *MockOrderReader
	service       portssvc.RemissionSvcFacade
}

func (suite *RemissionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRemissionRepository)
	suite.mockOrderRepo = new(MockOrderReader)
	suite.service = services.NewRemissionService(suite.mockRepo, suite.mockOrderRepo)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func openRemission() *domain.Remission {
	return &domain.Remission{
		RemissionID: uuid.NewString(),
		OrderID:     uuid.NewString(),
		Folio:       "REM-0001AB",
		Status:      domain.RemissionOpen,
		CreatedAt:   time.Now().UTC(),
	}
}

// --- Close ---

func (suite *RemissionServiceTestSuite) TestCloseRemission_Success() {
	ctx := context.Background()
	remission := openRemission()

	sales := []domain.Sale{
		{SaleID: uuid.NewString(), RemissionID: remission.RemissionID, Subtotal: dec("100.00"), Tax: dec("16.00")},
	}
	credits := []domain.CreditAssignment{
		{CreditID: uuid.NewString(), RemissionID: remission.RemissionID, Amount: dec("50.00")},
	}

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("FindSalesByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return(sales, nil).Once()
	suite.mockRepo.On("FindCreditsByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return(credits, nil).Once()
	suite.mockRepo.On("UpdateRemissionStatusInTx", ctx, mock.Anything, remission.RemissionID, domain.RemissionClosed).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	err := suite.service.CloseRemission(ctx, remission.RemissionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestCloseRemission_NoSales() {
	ctx := context.Background()
	remission := openRemission()

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("FindSalesByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return([]domain.Sale{}, nil).Once()
	suite.mockRepo.On("FindCreditsByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return([]domain.CreditAssignment{}, nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	err := suite.service.CloseRemission(ctx, remission.RemissionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEmptySaleSet)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRemissionStatusInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestCloseRemission_CreditsExceedSales() {
	ctx := context.Background()
	remission := openRemission()

	sales := []domain.Sale{
		{SaleID: uuid.NewString(), RemissionID: remission.RemissionID, Subtotal: dec("100.00"), Tax: dec("16.00")},
	}
	credits := []domain.CreditAssignment{
		{CreditID: uuid.NewString(), RemissionID: remission.RemissionID, Amount: dec("120.00")},
	}

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("FindSalesByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return(sales, nil).Once()
	suite.mockRepo.On("FindCreditsByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return(credits, nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	err := suite.service.CloseRemission(ctx, remission.RemissionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrCreditsExceedSales)
	suite.Contains(err.Error(), "120.00")
	suite.Contains(err.Error(), "116.00")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRemissionStatusInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestCloseRemission_CreditsEqualSalesCloses() {
	ctx := context.Background()
	remission := openRemission()

	sales := []domain.Sale{
		{SaleID: uuid.NewString(), RemissionID: remission.RemissionID, Subtotal: dec("100.00"), Tax: dec("16.00")},
	}
	credits := []domain.CreditAssignment{
		{CreditID: uuid.NewString(), RemissionID: remission.RemissionID, Amount: dec("116.00")},
	}

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("FindSalesByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return(sales, nil).Once()
	suite.mockRepo.On("FindCreditsByRemissionIDInTx", ctx, mock.Anything, remission.RemissionID).Return(credits, nil).Once()
	suite.mockRepo.On("UpdateRemissionStatusInTx", ctx, mock.Anything, remission.RemissionID, domain.RemissionClosed).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	err := suite.service.CloseRemission(ctx, remission.RemissionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestCloseRemission_AlreadyClosed() {
	ctx := context.Background()
	remission := openRemission()
	remission.Status = domain.RemissionClosed

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	err := suite.service.CloseRemission(ctx, remission.RemissionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyClosed)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRemissionStatusInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestCloseRemission_NotFound() {
	ctx := context.Background()
	remissionID := uuid.NewString()

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remissionID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	err := suite.service.CloseRemission(ctx, remissionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- AddSale ---

func (suite *RemissionServiceTestSuite) TestAddSale_Success() {
	ctx := context.Background()
	remission := openRemission()
	req := dto.CreateSaleRequest{Subtotal: dec("10.555"), Tax: dec("1.688")}

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("SaveSaleInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	sale, err := suite.service.AddSale(ctx, remission.RemissionID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.NotEmpty(sale.SaleID)
	suite.Equal(remission.RemissionID, sale.RemissionID)
	// Amounts are quantized to 2 decimal places on creation.
	suite.True(sale.Subtotal.Equal(dec("10.56")), "subtotal was %s", sale.Subtotal)
	suite.True(sale.Tax.Equal(dec("1.69")), "tax was %s", sale.Tax)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestAddSale_ZeroAmountsAllowed() {
	ctx := context.Background()
	remission := openRemission()
	req := dto.CreateSaleRequest{Subtotal: decimal.Zero, Tax: decimal.Zero}

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("SaveSaleInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Sale")).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	sale, err := suite.service.AddSale(ctx, remission.RemissionID, req)

	suite.Require().NoError(err)
	suite.True(sale.Total().IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestAddSale_NegativeAmountRejected() {
	ctx := context.Background()

	sale, err := suite.service.AddSale(ctx, uuid.NewString(), dto.CreateSaleRequest{
		Subtotal: dec("-1.00"),
		Tax:      decimal.Zero,
	})

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrNegativeAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *RemissionServiceTestSuite) TestAddSale_ClosedRemissionRejected() {
	ctx := context.Background()
	remission := openRemission()
	remission.Status = domain.RemissionClosed

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	sale, err := suite.service.AddSale(ctx, remission.RemissionID, dto.CreateSaleRequest{
		Subtotal: dec("10.00"),
		Tax:      dec("1.60"),
	})

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, services.ErrRemissionClosed)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSaleInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- AddCredit ---

func (suite *RemissionServiceTestSuite) TestAddCredit_Success() {
	ctx := context.Background()
	remission := openRemission()

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("SaveCreditInTx", ctx, mock.Anything, mock.AnythingOfType("domain.CreditAssignment")).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	credit, err := suite.service.AddCredit(ctx, remission.RemissionID, dto.CreateCreditRequest{
		Amount: dec("25.00"),
		Reason: "Damaged goods returned",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(credit)
	suite.NotEmpty(credit.CreditID)
	suite.True(credit.Amount.Equal(dec("25.00")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestAddCredit_NonPositiveAmountRejected() {
	ctx := context.Background()

	credit, err := suite.service.AddCredit(ctx, uuid.NewString(), dto.CreateCreditRequest{
		Amount: decimal.Zero,
		Reason: "Zero credit",
	})

	suite.Require().Error(err)
	suite.Nil(credit)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrNonPositiveAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *RemissionServiceTestSuite) TestAddCredit_ClosedRemissionRejected() {
	ctx := context.Background()
	remission := openRemission()
	remission.Status = domain.RemissionClosed

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindRemissionByIDForUpdate", ctx, mock.Anything, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	credit, err := suite.service.AddCredit(ctx, remission.RemissionID, dto.CreateCreditRequest{
		Amount: dec("25.00"),
		Reason: "Late credit",
	})

	suite.Require().Error(err)
	suite.Nil(credit)
	suite.ErrorIs(err, services.ErrRemissionClosed)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Summary ---

func (suite *RemissionServiceTestSuite) TestSummarizeRemission() {
	ctx := context.Background()
	remission := openRemission()

	sales := []domain.Sale{
		{SaleID: uuid.NewString(), Subtotal: dec("100.00"), Tax: dec("16.00")},
		{SaleID: uuid.NewString(), Subtotal: dec("50.00"), Tax: dec("8.00")},
	}
	credits := []domain.CreditAssignment{
		{CreditID: uuid.NewString(), Amount: dec("30.00")},
	}

	suite.mockRepo.On("FindRemissionByID", ctx, remission.RemissionID).Return(remission, nil).Once()
	suite.mockRepo.On("FindSalesByRemissionID", ctx, remission.RemissionID).Return(sales, nil).Once()
	suite.mockRepo.On("FindCreditsByRemissionID", ctx, remission.RemissionID).Return(credits, nil).Once()

	summary, err := suite.service.SummarizeRemission(ctx, remission.RemissionID)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.TotalSales.Equal(dec("174.00")), "total sales was %s", summary.TotalSales)
	suite.True(summary.TotalCredits.Equal(dec("30.00")))
	suite.True(summary.Balance.Equal(dec("144.00")))
	suite.Equal(2, summary.SalesCount)
	// Reads never touch the state machine.
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRemissionStatusInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestSummarizeRemission_NotFound() {
	ctx := context.Background()
	remissionID := uuid.NewString()

	suite.mockRepo.On("FindRemissionByID", ctx, remissionID).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.SummarizeRemission(ctx, remissionID)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Create ---

func (suite *RemissionServiceTestSuite) TestCreateRemission_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	req := dto.CreateRemissionRequest{OrderID: orderID, Folio: "REM-9999ZZ"}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{OrderID: orderID}, nil).Once()
	suite.mockRepo.On("SaveRemission", ctx, mock.AnythingOfType("domain.Remission")).Return(nil).Once()

	remission, err := suite.service.CreateRemission(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(remission)
	suite.NotEmpty(remission.RemissionID)
	suite.Equal(domain.RemissionOpen, remission.Status)
	suite.Equal(req.Folio, remission.Folio)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *RemissionServiceTestSuite) TestCreateRemission_OrderNotFound() {
	ctx := context.Background()
	req := dto.CreateRemissionRequest{OrderID: uuid.NewString(), Folio: "REM-0000AA"}

	suite.mockOrderRepo.On("FindOrderByID", ctx, req.OrderID).Return(nil, apperrors.ErrNotFound).Once()

	remission, err := suite.service.CreateRemission(ctx, req)

	suite.Require().Error(err)
	suite.Nil(remission)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRemission", mock.Anything, mock.Anything)
}

func (suite *RemissionServiceTestSuite) TestCreateRemission_DuplicateFolio() {
	ctx := context.Background()
	orderID := uuid.NewString()
	req := dto.CreateRemissionRequest{OrderID: orderID, Folio: "REM-1111BB"}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(&domain.Order{OrderID: orderID}, nil).Once()
	suite.mockRepo.On("SaveRemission", ctx, mock.AnythingOfType("domain.Remission")).Return(apperrors.ErrDuplicate).Once()

	remission, err := suite.service.CreateRemission(ctx, req)

	suite.Require().Error(err)
	suite.Nil(remission)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- Transaction failures ---

func (suite *RemissionServiceTestSuite) TestCloseRemission_BeginFails() {
	ctx := context.Background()
	beginErr := errors.New("connection refused")

	suite.mockRepo.On("Begin", ctx).Return(nil, beginErr).Once()

	err := suite.service.CloseRemission(ctx, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, beginErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRemissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RemissionServiceTestSuite))
}
