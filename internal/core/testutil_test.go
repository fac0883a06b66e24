package core_test

import (
	"context"
	"os"
	"testing"

	"bizdesk/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE transactions, expenses, invoices, order_items, orders,
		inventory, suppliers, customers, products, warehouses
		RESTART IDENTITY CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}

	return pool
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func mustCreateWarehouse(t *testing.T, pool *pgxpool.Pool, name string) *core.Warehouse {
	t.Helper()
	svc := core.NewWarehouseService(pool)
	wh, err := svc.CreateWarehouse(context.Background(), core.CreateWarehouseInput{
		Name:     name,
		Location: "Test Location",
	})
	if err != nil {
		t.Fatalf("Failed to create warehouse %q: %v", name, err)
	}
	return wh
}

func mustCreateProduct(t *testing.T, pool *pgxpool.Pool, name, sku, price, cost string) *core.Product {
	t.Helper()
	svc := core.NewProductService(pool)
	p, err := svc.CreateProduct(context.Background(), core.CreateProductInput{
		Name:  name,
		SKU:   sku,
		Price: dec(t, price),
		Cost:  dec(t, cost),
	})
	if err != nil {
		t.Fatalf("Failed to create product %q: %v", sku, err)
	}
	return p
}

func mustCreateCustomer(t *testing.T, pool *pgxpool.Pool, name string) *core.Customer {
	t.Helper()
	svc := core.NewCustomerService(pool)
	c, err := svc.CreateCustomer(context.Background(), core.CreatePartyInput{Name: name})
	if err != nil {
		t.Fatalf("Failed to create customer %q: %v", name, err)
	}
	return c
}

func mustCreateSupplier(t *testing.T, pool *pgxpool.Pool, name string) *core.Supplier {
	t.Helper()
	svc := core.NewSupplierService(pool)
	s, err := svc.CreateSupplier(context.Background(), core.CreatePartyInput{Name: name})
	if err != nil {
		t.Fatalf("Failed to create supplier %q: %v", name, err)
	}
	return s
}
