package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceService manages customer invoices. An invoice's total is fixed at
// creation: amount + tax_amount, never recomputed.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*Invoice, error)
	GetInvoices(ctx context.Context) ([]Invoice, error)
	// GetOverdueInvoices returns invoices past their due date that are not
	// paid, regardless of the stored payment_status flag.
	GetOverdueInvoices(ctx context.Context) ([]Invoice, error)
}

type invoiceService struct {
	pool *pgxpool.Pool
}

func NewInvoiceService(pool *pgxpool.Pool) InvoiceService {
	return &invoiceService{pool: pool}
}

const invoiceColumns = `id, invoice_number, order_id, customer_id, amount, tax_amount, total_amount,
	       payment_status, issue_date, due_date, created_at`

func (s *invoiceService) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*Invoice, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	issueDate := time.Now()
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}
	totalAmount := input.Amount.Add(input.TaxAmount)

	var lastErr error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		var inv Invoice
		err := s.pool.QueryRow(ctx, `
			INSERT INTO invoices (invoice_number, order_id, customer_id, amount, tax_amount, total_amount,
			                      payment_status, issue_date, due_date)
			VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, $8)
			RETURNING `+invoiceColumns+`
		`, generateInvoiceNumber(), input.OrderID, input.CustomerID, input.Amount, input.TaxAmount,
			totalAmount, issueDate, input.DueDate).Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.OrderID, &inv.CustomerID,
			&inv.Amount, &inv.TaxAmount, &inv.TotalAmount,
			&inv.PaymentStatus, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt,
		)
		if err == nil {
			return &inv, nil
		}
		lastErr = err
		if !isUniqueViolation(err) {
			break
		}
		// Retry only when the generated invoice number clashed; a duplicate
		// caused by anything else (e.g. a bad FK) will not heal.
	}
	return nil, classifyStorageErr("create invoice", lastErr)
}

func (s *invoiceService) GetInvoices(ctx context.Context) ([]Invoice, error) {
	return s.queryInvoices(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		ORDER BY id
	`)
}

func (s *invoiceService) GetOverdueInvoices(ctx context.Context) ([]Invoice, error) {
	return s.queryInvoices(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE payment_status <> 'paid' AND due_date < NOW()
		ORDER BY id
	`)
}

func (s *invoiceService) queryInvoices(ctx context.Context, query string) ([]Invoice, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, classifyStorageErr("query invoices", err)
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.OrderID, &inv.CustomerID,
			&inv.Amount, &inv.TaxAmount, &inv.TotalAmount,
			&inv.PaymentStatus, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt,
		); err != nil {
			return nil, classifyStorageErr("scan invoice", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate invoices", err)
	}
	return invoices, nil
}
