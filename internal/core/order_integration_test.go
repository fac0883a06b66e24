package core_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"

	"bizdesk/internal/core"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d+-\d{1,3}$`)

func TestOrder_CreateSales(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer := mustCreateCustomer(t, pool, "Acme Corp")

	svc := core.NewOrderService(pool)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, core.CreateOrderInput{
		Type:       core.OrderTypeSales,
		CustomerID: intPtr(customer.ID),
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if !orderNumberPattern.MatchString(order.OrderNumber) {
		t.Errorf("Unexpected order number format: %q", order.OrderNumber)
	}
	if order.Status != core.OrderStatusPending {
		t.Errorf("Expected status pending, got %s", order.Status)
	}
	if !order.TotalAmount.IsZero() {
		t.Errorf("Expected zero total on a fresh order, got %s", order.TotalAmount)
	}
	if order.CustomerID == nil || *order.CustomerID != customer.ID {
		t.Errorf("Expected customer_id %d, got %v", customer.ID, order.CustomerID)
	}
	if order.SupplierID != nil {
		t.Errorf("Expected nil supplier_id on a sales order, got %v", order.SupplierID)
	}
}

func TestOrder_TypePartyRules(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer := mustCreateCustomer(t, pool, "Acme Corp")
	supplier := mustCreateSupplier(t, pool, "Parts Inc")

	svc := core.NewOrderService(pool)
	ctx := context.Background()

	cases := []struct {
		name  string
		input core.CreateOrderInput
	}{
		{"sales without customer", core.CreateOrderInput{Type: core.OrderTypeSales}},
		{"sales with supplier", core.CreateOrderInput{
			Type: core.OrderTypeSales, CustomerID: intPtr(customer.ID), SupplierID: intPtr(supplier.ID),
		}},
		{"purchase without supplier", core.CreateOrderInput{Type: core.OrderTypePurchase}},
		{"purchase with customer", core.CreateOrderInput{
			Type: core.OrderTypePurchase, SupplierID: intPtr(supplier.ID), CustomerID: intPtr(customer.ID),
		}},
		{"unknown type", core.CreateOrderInput{Type: "transfer", CustomerID: intPtr(customer.ID)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tc.input)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var validationErr *core.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("Expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestOrder_ItemTotalsRecompute(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	customer := mustCreateCustomer(t, pool, "Acme Corp")
	widget := mustCreateProduct(t, pool, "Widget", "ORD-W01", "19.99", "12.00")
	gadget := mustCreateProduct(t, pool, "Gadget", "ORD-G01", "10.00", "6.00")

	svc := core.NewOrderService(pool)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, core.CreateOrderInput{
		Type:       core.OrderTypeSales,
		CustomerID: intPtr(customer.ID),
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	// First item: 2 × 19.99 = 39.98
	item1, err := svc.CreateOrderItem(ctx, core.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: widget.ID,
		Quantity:  2,
		UnitPrice: dec(t, "19.99"),
	})
	if err != nil {
		t.Fatalf("First CreateOrderItem failed: %v", err)
	}
	if item1.TotalPrice.StringFixed(2) != "39.98" {
		t.Errorf("Expected line total 39.98, got %s", item1.TotalPrice.StringFixed(2))
	}

	var total decimal.Decimal
	if err := pool.QueryRow(ctx, "SELECT total_amount FROM orders WHERE id = $1", order.ID).Scan(&total); err != nil {
		t.Fatalf("Failed to read order total: %v", err)
	}
	if total.StringFixed(2) != "39.98" {
		t.Errorf("Expected order total 39.98 after first item, got %s", total.StringFixed(2))
	}

	// Second item: 1 × 10.00 → total 49.98
	if _, err := svc.CreateOrderItem(ctx, core.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: gadget.ID,
		Quantity:  1,
		UnitPrice: dec(t, "10.00"),
	}); err != nil {
		t.Fatalf("Second CreateOrderItem failed: %v", err)
	}

	if err := pool.QueryRow(ctx, "SELECT total_amount FROM orders WHERE id = $1", order.ID).Scan(&total); err != nil {
		t.Fatalf("Failed to read order total: %v", err)
	}
	if total.StringFixed(2) != "49.98" {
		t.Errorf("Expected order total 49.98 after second item, got %s", total.StringFixed(2))
	}

	items, err := svc.GetOrderItems(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrderItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(items))
	}
}

func TestOrder_ItemForUnknownOrder(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	widget := mustCreateProduct(t, pool, "Widget", "ORD-W02", "19.99", "12.00")

	svc := core.NewOrderService(pool)

	_, err := svc.CreateOrderItem(context.Background(), core.CreateOrderItemInput{
		OrderID:   99999,
		ProductID: widget.ID,
		Quantity:  1,
		UnitPrice: dec(t, "1.00"),
	})
	if err == nil {
		t.Fatal("Expected item insert for unknown order to fail")
	}
	var constraintErr *core.ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Errorf("Expected ConstraintError from FK violation, got %T: %v", err, err)
	}
}
