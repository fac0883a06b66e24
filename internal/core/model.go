package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeSales    OrderType = "sales"
	OrderTypePurchase OrderType = "purchase"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Warehouse is a physical storage location.
type Warehouse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is a catalog item. Price and Cost are exact decimals; they cross
// the storage boundary as NUMERIC(10,2) and must round-trip without drift.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Inventory tracks stock of one product in one warehouse. At most one row
// exists per (product_id, warehouse_id) pair.
type Inventory struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	WarehouseID  int       `json:"warehouse_id"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Customer is a sales counterparty.
type Customer struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Supplier is a purchasing counterparty. Structurally identical to Customer
// but kept as a distinct table and type.
type Supplier struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is a sales or purchase order header. TotalAmount is derived: it is
// recomputed from the order's items on every item insertion.
type Order struct {
	ID          int             `json:"id"`
	OrderNumber string          `json:"order_number"`
	Type        OrderType       `json:"type"`
	CustomerID  *int            `json:"customer_id"`
	SupplierID  *int            `json:"supplier_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderDate   time.Time       `json:"order_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderItem is one line on an order. TotalPrice = Quantity × UnitPrice,
// computed at creation and stored.
type OrderItem struct {
	ID         int             `json:"id"`
	OrderID    int             `json:"order_id"`
	ProductID  int             `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Invoice is a customer invoice. TotalAmount = Amount + TaxAmount, computed
// once at creation and never recomputed.
type Invoice struct {
	ID            int             `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	OrderID       *int            `json:"order_id"`
	CustomerID    int             `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Expense is a recorded business cost. Category is free text.
type Expense struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	ExpenseDate time.Time       `json:"expense_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Transaction is a money movement, optionally linked to an invoice or expense.
type Transaction struct {
	ID              int             `json:"id"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	InvoiceID       *int            `json:"invoice_id"`
	ExpenseID       *int            `json:"expense_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FinancialSummary is a computed report, not a stored entity. Pending and
// overdue totals trust the stored payment_status flag; they do not consult
// due dates.
type FinancialSummary struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	PendingInvoices decimal.Decimal `json:"pendingInvoices"`
	OverdueInvoices decimal.Decimal `json:"overdueInvoices"`
}

// CategoryTotal is one group in the expenses-by-category report.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
