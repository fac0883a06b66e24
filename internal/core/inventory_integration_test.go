package core_test

import (
	"context"
	"errors"
	"testing"

	"bizdesk/internal/core"
)

func TestInventory_UpsertDefaults(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	wh := mustCreateWarehouse(t, pool, "WH-A")
	p := mustCreateProduct(t, pool, "Widget", "INV-001", "19.99", "12.50")

	svc := core.NewInventoryService(pool)
	ctx := context.Background()

	inv, err := svc.UpdateInventory(ctx, core.UpdateInventoryInput{
		ProductID:   p.ID,
		WarehouseID: wh.ID,
		Quantity:    50,
	})
	if err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if inv.Quantity != 50 {
		t.Errorf("Expected quantity 50, got %d", inv.Quantity)
	}
	// A brand-new row without an explicit reorder level gets the default.
	if inv.ReorderLevel != 10 {
		t.Errorf("Expected default reorder level 10, got %d", inv.ReorderLevel)
	}
}

func TestInventory_UpsertPreservesReorderLevel(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	wh := mustCreateWarehouse(t, pool, "WH-A")
	p := mustCreateProduct(t, pool, "Widget", "INV-002", "19.99", "12.50")

	svc := core.NewInventoryService(pool)
	ctx := context.Background()

	// First upsert sets an explicit reorder level.
	first, err := svc.UpdateInventory(ctx, core.UpdateInventoryInput{
		ProductID:    p.ID,
		WarehouseID:  wh.ID,
		Quantity:     100,
		ReorderLevel: intPtr(25),
	})
	if err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if first.ReorderLevel != 25 {
		t.Fatalf("Expected reorder level 25, got %d", first.ReorderLevel)
	}

	// Second upsert omits it: quantity changes, reorder level is preserved.
	second, err := svc.UpdateInventory(ctx, core.UpdateInventoryInput{
		ProductID:   p.ID,
		WarehouseID: wh.ID,
		Quantity:    30,
	})
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("Expected the same row to be updated, got new ID %d (was %d)", second.ID, first.ID)
	}
	if second.Quantity != 30 {
		t.Errorf("Expected quantity 30, got %d", second.Quantity)
	}
	if second.ReorderLevel != 25 {
		t.Errorf("Expected reorder level preserved at 25, got %d", second.ReorderLevel)
	}

	// Still exactly one row for the pair.
	all, err := svc.GetInventory(ctx)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 inventory row, got %d", len(all))
	}
}

func TestInventory_UnknownReferences(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	wh := mustCreateWarehouse(t, pool, "WH-A")
	p := mustCreateProduct(t, pool, "Widget", "INV-003", "19.99", "12.50")

	svc := core.NewInventoryService(pool)
	ctx := context.Background()

	_, err := svc.UpdateInventory(ctx, core.UpdateInventoryInput{
		ProductID:   99999,
		WarehouseID: wh.ID,
		Quantity:    1,
	})
	var notFound *core.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError for unknown product, got %T: %v", err, err)
	}
	if notFound.Resource != "product" {
		t.Errorf("Expected resource 'product', got %q", notFound.Resource)
	}

	_, err = svc.UpdateInventory(ctx, core.UpdateInventoryInput{
		ProductID:   p.ID,
		WarehouseID: 99999,
		Quantity:    1,
	})
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError for unknown warehouse, got %T: %v", err, err)
	}
	if notFound.Resource != "warehouse" {
		t.Errorf("Expected resource 'warehouse', got %q", notFound.Resource)
	}
}

func TestInventory_LowStockStrictlyBelow(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	wh := mustCreateWarehouse(t, pool, "WH-A")
	below := mustCreateProduct(t, pool, "Below", "LOW-001", "10.00", "5.00")
	atLevel := mustCreateProduct(t, pool, "At Level", "LOW-002", "10.00", "5.00")
	above := mustCreateProduct(t, pool, "Above", "LOW-003", "10.00", "5.00")

	svc := core.NewInventoryService(pool)
	ctx := context.Background()

	for _, tc := range []struct {
		productID int
		quantity  int
	}{
		{below.ID, 9},
		{atLevel.ID, 10},
		{above.ID, 11},
	} {
		_, err := svc.UpdateInventory(ctx, core.UpdateInventoryInput{
			ProductID:    tc.productID,
			WarehouseID:  wh.ID,
			Quantity:     tc.quantity,
			ReorderLevel: intPtr(10),
		})
		if err != nil {
			t.Fatalf("Upsert failed for product %d: %v", tc.productID, err)
		}
	}

	low, err := svc.GetLowStockItems(ctx)
	if err != nil {
		t.Fatalf("GetLowStockItems failed: %v", err)
	}
	if len(low) != 1 {
		t.Fatalf("Expected exactly 1 low-stock row, got %d", len(low))
	}
	// quantity == reorder_level does not count as low stock.
	if low[0].ProductID != below.ID {
		t.Errorf("Expected product %d in low stock, got %d", below.ID, low[0].ProductID)
	}
}
