package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Reorder level applied when a brand-new inventory row omits one.
const defaultReorderLevel = 10

// InventoryService manages per-warehouse stock levels.
type InventoryService interface {
	// UpdateInventory upserts the stock row for (product_id, warehouse_id):
	// quantity is always overwritten, reorder_level only when supplied.
	UpdateInventory(ctx context.Context, input UpdateInventoryInput) (*Inventory, error)
	GetInventory(ctx context.Context) ([]Inventory, error)
	// GetLowStockItems returns rows where quantity is strictly below reorder_level.
	GetLowStockItems(ctx context.Context) ([]Inventory, error)
}

type inventoryService struct {
	pool *pgxpool.Pool
}

func NewInventoryService(pool *pgxpool.Pool) InventoryService {
	return &inventoryService{pool: pool}
}

func (s *inventoryService) UpdateInventory(ctx context.Context, input UpdateInventoryInput) (*Inventory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkExists(ctx, "products", "product", input.ProductID); err != nil {
		return nil, err
	}
	if err := s.checkExists(ctx, "warehouses", "warehouse", input.WarehouseID); err != nil {
		return nil, err
	}

	// Single conditional write: concurrent callers racing on the same pair
	// cannot both insert. COALESCE keeps the stored reorder_level when the
	// caller omitted one, and applies the default only on first insert.
	var inv Inventory
	err := s.pool.QueryRow(ctx, `
		INSERT INTO inventory (product_id, warehouse_id, quantity, reorder_level, updated_at)
		VALUES ($1, $2, $3, COALESCE($4, $5), NOW())
		ON CONFLICT (product_id, warehouse_id) DO UPDATE
		SET quantity      = EXCLUDED.quantity,
		    reorder_level = COALESCE($4, inventory.reorder_level),
		    updated_at    = NOW()
		RETURNING id, product_id, warehouse_id, quantity, reorder_level, updated_at
	`, input.ProductID, input.WarehouseID, input.Quantity, input.ReorderLevel, defaultReorderLevel).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.ReorderLevel, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, classifyStorageErr("upsert inventory", err)
	}
	return &inv, nil
}

func (s *inventoryService) checkExists(ctx context.Context, table, resource string, id int) error {
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM " + table + " WHERE id = $1)"
	if err := s.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return classifyStorageErr("check "+resource+" exists", err)
	}
	if !exists {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return nil
}

func (s *inventoryService) GetInventory(ctx context.Context) ([]Inventory, error) {
	return s.queryInventory(ctx, `
		SELECT id, product_id, warehouse_id, quantity, reorder_level, updated_at
		FROM inventory
		ORDER BY id
	`)
}

func (s *inventoryService) GetLowStockItems(ctx context.Context) ([]Inventory, error) {
	return s.queryInventory(ctx, `
		SELECT id, product_id, warehouse_id, quantity, reorder_level, updated_at
		FROM inventory
		WHERE quantity < reorder_level
		ORDER BY id
	`)
}

func (s *inventoryService) queryInventory(ctx context.Context, query string) ([]Inventory, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, classifyStorageErr("query inventory", err)
	}
	defer rows.Close()

	var items []Inventory
	for rows.Next() {
		var inv Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.ReorderLevel, &inv.UpdatedAt); err != nil {
			return nil, classifyStorageErr("scan inventory", err)
		}
		items = append(items, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate inventory", err)
	}
	return items, nil
}
