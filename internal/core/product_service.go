package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductService manages the product catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error)
	GetProducts(ctx context.Context) ([]Product, error)
}

type productService struct {
	pool *pgxpool.Pool
}

func NewProductService(pool *pgxpool.Pool) ProductService {
	return &productService{pool: pool}
}

// CreateProduct inserts a catalog row. A duplicate SKU surfaces as a
// ConstraintError from the unique index.
func (s *productService) CreateProduct(ctx context.Context, input CreateProductInput) (*Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var p Product
	err := s.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, sku, price, cost)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, sku, price, cost, created_at
	`, input.Name, input.Description, input.SKU, input.Price, input.Cost).Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.Price, &p.Cost, &p.CreatedAt,
	)
	if err != nil {
		return nil, classifyStorageErr("create product", err)
	}
	return &p, nil
}

func (s *productService) GetProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, sku, price, cost, created_at
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, classifyStorageErr("query products", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.SKU, &p.Price, &p.Cost, &p.CreatedAt); err != nil {
			return nil, classifyStorageErr("scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate products", err)
	}
	return products, nil
}
