package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davidmr-dev/remission_tracker_app/internal/core/domain"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListSalesInDateRange(ctx context.Context, from, to time.Time) ([]domain.Sale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
}

func (suite *ReportingServiceTestSuite) TestDailySalesReport_GroupsByDate() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	yesterday := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	sales := []domain.Sale{
		{SaleID: uuid.NewString(), Subtotal: dec("100.00"), Tax: dec("16.00"), CreatedAt: yesterday},
		{SaleID: uuid.NewString(), Subtotal: dec("50.00"), Tax: dec("8.00"), CreatedAt: yesterday.Add(2 * time.Hour)},
		{SaleID: uuid.NewString(), Subtotal: dec("200.00"), Tax: dec("32.00"), CreatedAt: today},
	}

	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("ListSalesInDateRange", ctx, from, to).Return(sales, nil).Once()

	rows, err := service.DailySalesReport(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	// Rows come back sorted ascending by date.
	suite.Equal(29, rows[0].Date.Day())
	suite.True(rows[0].TotalSales.Equal(dec("174.00")), "day one total was %s", rows[0].TotalSales)
	suite.True(rows[0].TotalTax.Equal(dec("24.00")))
	suite.Equal(2, rows[0].SalesCount)

	suite.Equal(30, rows[1].Date.Day())
	suite.True(rows[1].TotalSales.Equal(dec("232.00")))
	suite.True(rows[1].TotalTax.Equal(dec("32.00")))
	suite.Equal(1, rows[1].SalesCount)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDailySalesReport_EmptyRange() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("ListSalesInDateRange", ctx, from, to).Return([]domain.Sale{}, nil).Once()

	rows, err := service.DailySalesReport(ctx, from, to)

	suite.Require().NoError(err)
	suite.NotNil(rows)
	suite.Empty(rows)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDailySalesReport_InvertedRange() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	from := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	rows, err := service.DailySalesReport(ctx, from, to)

	suite.Require().NoError(err)
	suite.NotNil(rows)
	suite.Empty(rows)
	// The repository is never consulted for an inverted range.
	suite.mockRepo.AssertNotCalled(suite.T(), "ListSalesInDateRange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestDailySalesReport_RepositoryError() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	repoErr := errors.New("connection reset")

	suite.mockRepo.On("ListSalesInDateRange", ctx, from, to).Return(nil, repoErr).Once()

	rows, err := service.DailySalesReport(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, repoErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
