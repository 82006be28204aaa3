// Command seed populates the database with realistic random data. Sales are
// spread across the last 30 days so the daily sales report has material to
// aggregate.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	portssvc "github.com/davidmr-dev/remission_tracker_app/internal/core/ports/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/core/services"
	"github.com/davidmr-dev/remission_tracker_app/internal/dto"
	"github.com/davidmr-dev/remission_tracker_app/internal/platform/config"
	"github.com/davidmr-dev/remission_tracker_app/internal/repositories/database/pgsql"
	"github.com/davidmr-dev/remission_tracker_app/pkg/database"
)

const (
	customerCount = 50
	orderCount    = 100
	taxRate       = 0.16
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos)

	logger.Info("Seeding database...")
	if err := seed(ctx, serviceContainer); err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database seeding completed successfully.")
}

func seed(ctx context.Context, svc *portssvc.ServiceContainer) error {
	customers := make([]string, 0, customerCount)
	for i := 0; i < customerCount; i++ {
		email := gofakeit.Email()
		customer, err := svc.Customer.CreateCustomer(ctx, dto.CreateCustomerRequest{
			Name:  gofakeit.Name(),
			Email: &email,
		})
		if err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}
		customers = append(customers, customer.CustomerID)
	}

	for i := 0; i < orderCount; i++ {
		customerID := customers[rand.Intn(len(customers))]

		order, err := svc.Order.CreateOrder(ctx, dto.CreateOrderRequest{
			CustomerID: customerID,
			Folio:      "ORD-" + gofakeit.Numerify("####") + gofakeit.Lexify("??"),
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		remission, err := svc.Remission.CreateRemission(ctx, dto.CreateRemissionRequest{
			OrderID: order.OrderID,
			Folio:   "REM-" + gofakeit.Numerify("####") + gofakeit.Lexify("??"),
		})
		if err != nil {
			return fmt.Errorf("failed to create remission: %w", err)
		}

		// All sales of one remission land on the same random day in the
		// last 30 days, giving the daily report varied buckets.
		saleDate := gofakeit.DateRange(time.Now().AddDate(0, 0, -30), time.Now())

		totalSales := decimal.Zero
		for n := 0; n < 1+rand.Intn(3); n++ {
			subtotal := decimal.NewFromFloat(gofakeit.Float64Range(10.0, 500.0)).Round(2)
			tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)

			sale, err := svc.Remission.AddSale(ctx, remission.RemissionID, dto.CreateSaleRequest{
				Subtotal:  subtotal,
				Tax:       tax,
				CreatedAt: &saleDate,
			})
			if err != nil {
				return fmt.Errorf("failed to create sale: %w", err)
			}
			totalSales = totalSales.Add(sale.Total())
		}

		// Roughly half the remissions get a credit. The upper bound runs a
		// little past the sales total so some remissions refuse to close.
		if rand.Float64() > 0.5 {
			maxAmount, _ := totalSales.Mul(decimal.NewFromFloat(1.2)).Float64()
			amount := decimal.NewFromFloat(gofakeit.Float64Range(5.0, maxAmount)).Round(2)

			_, err := svc.Remission.AddCredit(ctx, remission.RemissionID, dto.CreateCreditRequest{
				Amount: amount,
				Reason: gofakeit.Sentence(8),
			})
			if err != nil {
				return fmt.Errorf("failed to create credit: %w", err)
			}
		}
	}

	return nil
}
