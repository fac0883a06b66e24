package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// WarehouseService manages warehouse master data.
type WarehouseService interface {
	CreateWarehouse(ctx context.Context, input CreateWarehouseInput) (*Warehouse, error)
	GetWarehouses(ctx context.Context) ([]Warehouse, error)
}

type warehouseService struct {
	pool *pgxpool.Pool
}

func NewWarehouseService(pool *pgxpool.Pool) WarehouseService {
	return &warehouseService{pool: pool}
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, input CreateWarehouseInput) (*Warehouse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var w Warehouse
	err := s.pool.QueryRow(ctx, `
		INSERT INTO warehouses (name, location, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, location, description, created_at
	`, input.Name, input.Location, input.Description).Scan(
		&w.ID, &w.Name, &w.Location, &w.Description, &w.CreatedAt,
	)
	if err != nil {
		return nil, classifyStorageErr("create warehouse", err)
	}
	return &w, nil
}

func (s *warehouseService) GetWarehouses(ctx context.Context) ([]Warehouse, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, location, description, created_at
		FROM warehouses
		ORDER BY id
	`)
	if err != nil {
		return nil, classifyStorageErr("query warehouses", err)
	}
	defer rows.Close()

	var warehouses []Warehouse
	for rows.Next() {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.Description, &w.CreatedAt); err != nil {
			return nil, classifyStorageErr("scan warehouse", err)
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate warehouses", err)
	}
	return warehouses, nil
}
