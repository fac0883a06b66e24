package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerService manages customer master data.
type CustomerService interface {
	CreateCustomer(ctx context.Context, input CreatePartyInput) (*Customer, error)
	GetCustomers(ctx context.Context) ([]Customer, error)
}

// SupplierService manages supplier master data. Suppliers share the
// customer's shape but live in their own table and play a distinct role.
type SupplierService interface {
	CreateSupplier(ctx context.Context, input CreatePartyInput) (*Supplier, error)
	GetSuppliers(ctx context.Context) ([]Supplier, error)
}

type customerService struct {
	pool *pgxpool.Pool
}

func NewCustomerService(pool *pgxpool.Pool) CustomerService {
	return &customerService{pool: pool}
}

func (s *customerService) CreateCustomer(ctx context.Context, input CreatePartyInput) (*Customer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var c Customer
	err := s.pool.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, address, created_at
	`, input.Name, input.Email, input.Phone, input.Address).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt,
	)
	if err != nil {
		return nil, classifyStorageErr("create customer", err)
	}
	return &c, nil
}

func (s *customerService) GetCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, phone, address, created_at
		FROM customers
		ORDER BY id
	`)
	if err != nil {
		return nil, classifyStorageErr("query customers", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, classifyStorageErr("scan customer", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate customers", err)
	}
	return customers, nil
}

type supplierService struct {
	pool *pgxpool.Pool
}

func NewSupplierService(pool *pgxpool.Pool) SupplierService {
	return &supplierService{pool: pool}
}

func (s *supplierService) CreateSupplier(ctx context.Context, input CreatePartyInput) (*Supplier, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var sup Supplier
	err := s.pool.QueryRow(ctx, `
		INSERT INTO suppliers (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, address, created_at
	`, input.Name, input.Email, input.Phone, input.Address).Scan(
		&sup.ID, &sup.Name, &sup.Email, &sup.Phone, &sup.Address, &sup.CreatedAt,
	)
	if err != nil {
		return nil, classifyStorageErr("create supplier", err)
	}
	return &sup, nil
}

func (s *supplierService) GetSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, phone, address, created_at
		FROM suppliers
		ORDER BY id
	`)
	if err != nil {
		return nil, classifyStorageErr("query suppliers", err)
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		var sup Supplier
		if err := rows.Scan(&sup.ID, &sup.Name, &sup.Email, &sup.Phone, &sup.Address, &sup.CreatedAt); err != nil {
			return nil, classifyStorageErr("scan supplier", err)
		}
		suppliers = append(suppliers, sup)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate suppliers", err)
	}
	return suppliers, nil
}
