package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FinanceService manages expenses and transactions and computes the
// read-only financial reports.
type FinanceService interface {
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error)
	GetExpenses(ctx context.Context) ([]Expense, error)
	// GetExpensesByCategory groups expenses by exact category string and
	// sums amounts per group.
	GetExpensesByCategory(ctx context.Context) ([]CategoryTotal, error)

	CreateTransaction(ctx context.Context, input CreateTransactionInput) (*Transaction, error)
	// GetTransactions returns all transactions, newest-created first.
	GetTransactions(ctx context.Context) ([]Transaction, error)

	GetFinancialSummary(ctx context.Context) (*FinancialSummary, error)
}

type financeService struct {
	pool *pgxpool.Pool
}

func NewFinanceService(pool *pgxpool.Pool) FinanceService {
	return &financeService{pool: pool}
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func (s *financeService) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	expenseDate := time.Now()
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}

	var e Expense
	err := s.pool.QueryRow(ctx, `
		INSERT INTO expenses (description, amount, category, expense_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, description, amount, category, expense_date, created_at
	`, input.Description, input.Amount, input.Category, expenseDate).Scan(
		&e.ID, &e.Description, &e.Amount, &e.Category, &e.ExpenseDate, &e.CreatedAt,
	)
	if err != nil {
		return nil, classifyStorageErr("create expense", err)
	}
	return &e, nil
}

func (s *financeService) GetExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, description, amount, category, expense_date, created_at
		FROM expenses
		ORDER BY id
	`)
	if err != nil {
		return nil, classifyStorageErr("query expenses", err)
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.ExpenseDate, &e.CreatedAt); err != nil {
			return nil, classifyStorageErr("scan expense", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate expenses", err)
	}
	return expenses, nil
}

func (s *financeService) GetExpensesByCategory(ctx context.Context) ([]CategoryTotal, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT category, SUM(amount)
		FROM expenses
		GROUP BY category
		ORDER BY category
	`)
	if err != nil {
		return nil, classifyStorageErr("query expenses by category", err)
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, classifyStorageErr("scan category total", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate category totals", err)
	}
	return totals, nil
}

// ── Transactions ─────────────────────────────────────────────────────────────

func (s *financeService) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*Transaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	txDate := time.Now()
	if input.TransactionDate != nil {
		txDate = *input.TransactionDate
	}

	var t Transaction
	err := s.pool.QueryRow(ctx, `
		INSERT INTO transactions (type, amount, description, invoice_id, expense_id, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, type, amount, description, invoice_id, expense_id, transaction_date, created_at
	`, input.Type, input.Amount, input.Description, input.InvoiceID, input.ExpenseID, txDate).Scan(
		&t.ID, &t.Type, &t.Amount, &t.Description, &t.InvoiceID, &t.ExpenseID, &t.TransactionDate, &t.CreatedAt,
	)
	if err != nil {
		return nil, classifyStorageErr("create transaction", err)
	}
	return &t, nil
}

func (s *financeService) GetTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, type, amount, description, invoice_id, expense_id, transaction_date, created_at
		FROM transactions
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, classifyStorageErr("query transactions", err)
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(
			&t.ID, &t.Type, &t.Amount, &t.Description,
			&t.InvoiceID, &t.ExpenseID, &t.TransactionDate, &t.CreatedAt,
		); err != nil {
			return nil, classifyStorageErr("scan transaction", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyStorageErr("iterate transactions", err)
	}
	return transactions, nil
}

// ── Financial summary ────────────────────────────────────────────────────────

// GetFinancialSummary aggregates transactions by type and invoice totals by
// the stored payment_status flag. It does not consult due dates: an invoice
// counts as overdue only when its status says so (GetOverdueInvoices applies
// the date comparison instead).
func (s *financeService) GetFinancialSummary(ctx context.Context) (*FinancialSummary, error) {
	var summary FinancialSummary

	err := s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'income'),  0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
	`).Scan(&summary.TotalIncome, &summary.TotalExpenses)
	if err != nil {
		return nil, classifyStorageErr("aggregate transactions", err)
	}

	err = s.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'pending'), 0),
		       COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'overdue'), 0)
		FROM invoices
	`).Scan(&summary.PendingInvoices, &summary.OverdueInvoices)
	if err != nil {
		return nil, classifyStorageErr("aggregate invoices", err)
	}

	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpenses)
	return &summary, nil
}
