package core_test

import (
	"context"
	"errors"
	"testing"

	"bizdesk/internal/core"
)

func TestWarehouse_CreateAndList(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewWarehouseService(pool)
	ctx := context.Background()

	wh, err := svc.CreateWarehouse(ctx, core.CreateWarehouseInput{
		Name:        "Main Warehouse",
		Location:    "Springfield",
		Description: strPtr("Primary storage"),
	})
	if err != nil {
		t.Fatalf("CreateWarehouse failed: %v", err)
	}
	if wh.ID == 0 {
		t.Error("Expected a generated ID")
	}
	if wh.Name != "Main Warehouse" || wh.Location != "Springfield" {
		t.Errorf("Unexpected warehouse fields: %+v", wh)
	}
	if wh.Description == nil || *wh.Description != "Primary storage" {
		t.Errorf("Expected description to round-trip, got %v", wh.Description)
	}

	warehouses, err := svc.GetWarehouses(ctx)
	if err != nil {
		t.Fatalf("GetWarehouses failed: %v", err)
	}
	if len(warehouses) != 1 {
		t.Fatalf("Expected 1 warehouse, got %d", len(warehouses))
	}
	if warehouses[0].ID != wh.ID {
		t.Errorf("Listed warehouse ID %d, want %d", warehouses[0].ID, wh.ID)
	}
}

func TestWarehouse_RequiredFields(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewWarehouseService(pool)

	_, err := svc.CreateWarehouse(context.Background(), core.CreateWarehouseInput{Name: "No Location"})
	if err == nil {
		t.Fatal("Expected validation error for missing location")
	}
	var validationErr *core.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
}

func TestProduct_PriceRoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewProductService(pool)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, core.CreateProductInput{
		Name:  "Widget",
		SKU:   "WID-001",
		Price: dec(t, "19.99"),
		Cost:  dec(t, "12.50"),
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	// Money must survive the storage round trip exactly.
	if p.Price.StringFixed(2) != "19.99" {
		t.Errorf("Price drifted: got %s, want 19.99", p.Price.StringFixed(2))
	}
	if p.Cost.StringFixed(2) != "12.50" {
		t.Errorf("Cost drifted: got %s, want 12.50", p.Cost.StringFixed(2))
	}

	products, err := svc.GetProducts(ctx)
	if err != nil {
		t.Fatalf("GetProducts failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}
	if products[0].Price.StringFixed(2) != "19.99" {
		t.Errorf("Listed price drifted: got %s", products[0].Price.StringFixed(2))
	}
}

func TestProduct_DuplicateSKU(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewProductService(pool)
	ctx := context.Background()

	input := core.CreateProductInput{
		Name:  "Widget",
		SKU:   "DUP-001",
		Price: dec(t, "10.00"),
		Cost:  dec(t, "5.00"),
	}
	if _, err := svc.CreateProduct(ctx, input); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := svc.CreateProduct(ctx, input)
	if err == nil {
		t.Fatal("Expected duplicate SKU to fail, but it succeeded")
	}
	var constraintErr *core.ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Errorf("Expected ConstraintError for duplicate SKU, got %T: %v", err, err)
	}
}

func TestProduct_InvalidPrice(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewProductService(pool)

	_, err := svc.CreateProduct(context.Background(), core.CreateProductInput{
		Name:  "Freebie",
		SKU:   "FREE-001",
		Price: dec(t, "0"),
		Cost:  dec(t, "1.00"),
	})
	if err == nil {
		t.Fatal("Expected zero price to be rejected")
	}
	var validationErr *core.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
}
