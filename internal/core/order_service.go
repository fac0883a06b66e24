package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// OrderService manages order headers and their line items. Item insertion
// recomputes the parent order's total inside one transaction, so readers
// never observe a stale total.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrders(ctx context.Context) ([]Order, error)
	CreateOrderItem(ctx context.Context, input CreateOrderItemInput) (*OrderItem, error)
	GetOrderItems(ctx context.Context, orderID int) ([]OrderItem, error)
}

type orderService struct {
	pool *pgxpool.Pool
}

func NewOrderService(pool *pgxpool.Pool) OrderService {
	return &orderService{pool: pool}
}

func (s *orderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	// The generated number is unique only probabilistically; on the rare
	// unique-key clash, retry with a fresh one.
	var lastErr error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		var o Order
		err := s.pool.QueryRow(ctx, `
			INSERT INTO orders (order_number, type, customer_id, supplier_id, status, total_amount, order_date)
			VALUES ($1, $2, $3, $4, 'pending', 0, $5)
			RETURNING id, order_number, type, customer_id, supplier_id, status, total_amount, order_date, created_at
		`, generateOrderNumber(), input.Type, input.CustomerID, input.SupplierID, orderDate).Scan(
			&o.ID, &o.OrderNumber, &o.Type, &o.CustomerID, &o.SupplierID,
			&o.Status, &o.TotalAmount, &o.OrderDate, &o.CreatedAt,
		)
		if err == nil {
			return &o, nil
		}
		lastErr = err
		if !isUniqueViolation(err) {
			break
		}
	}
	return nil, classifyStorageErr("create order", lastErr)
}

func (s *orderService) GetOrders(ctx context.Context) ([]Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, order_number, type, customer_id, supplier_id, status, total_amount, order_date, created_at
		FROM orders
		ORDER BY id
	`)
	if err != nil {
		return nil, classifyStorageErr("query orders", err)
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.Type, &o.CustomerID, &o.SupplierID,
			&o.Status, &o.TotalAmount, &o.OrderDate, &o.CreatedAt,
		); err != nil {
			return nil, classifyStorageErr("scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate orders", err)
	}
	return orders, nil
}

// CreateOrderItem inserts the item and rewrites the order's total from the
// full item set, atomically. The recompute is a full scan rather than an
// increment: item counts per order are small and the sum is always right.
func (s *orderService) CreateOrderItem(ctx context.Context, input CreateOrderItemInput) (*OrderItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	totalPrice := decimal.NewFromInt(int64(input.Quantity)).Mul(input.UnitPrice)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, classifyStorageErr("begin order item tx", err)
	}
	defer tx.Rollback(ctx)

	var item OrderItem
	err = tx.QueryRow(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_id, product_id, quantity, unit_price, total_price
	`, input.OrderID, input.ProductID, input.Quantity, input.UnitPrice, totalPrice).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice,
	)
	if err != nil {
		return nil, classifyStorageErr("insert order item", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE orders
		SET total_amount = (
			SELECT COALESCE(SUM(total_price), 0)
			FROM order_items
			WHERE order_id = $1
		)
		WHERE id = $1
	`, input.OrderID)
	if err != nil {
		return nil, classifyStorageErr("recompute order total", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classifyStorageErr("commit order item tx", err)
	}
	return &item, nil
}

func (s *orderService) GetOrderItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, classifyStorageErr("query order items", err)
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, classifyStorageErr("scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate order items", err)
	}
	return items, nil
}
