package core

import (
	"time"

	"github.com/shopspring/decimal"

	"bizdesk/internal/validation"
)

// Create inputs mirror the RPC request bodies. Tag-expressible constraints
// use validator.v10; decimal sign checks and cross-field rules are explicit
// because money fields are decimal.Decimal structs, not numeric kinds.

func runTagValidation(v any) error {
	if errs := validation.ValidateStruct(v); errs != nil {
		return &ValidationError{Message: validation.Describe(errs)}
	}
	return nil
}

type CreateWarehouseInput struct {
	Name        string  `json:"name" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description *string `json:"description"`
}

func (in *CreateWarehouseInput) Validate() error {
	return runTagValidation(in)
}

type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	SKU         string          `json:"sku" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
}

func (in *CreateProductInput) Validate() error {
	if err := runTagValidation(in); err != nil {
		return err
	}
	if !in.Price.IsPositive() {
		return NewValidationError("price must be positive")
	}
	if in.Cost.IsNegative() {
		return NewValidationError("cost must not be negative")
	}
	return nil
}

type UpdateInventoryInput struct {
	ProductID    int  `json:"product_id" validate:"required,gt=0"`
	WarehouseID  int  `json:"warehouse_id" validate:"required,gt=0"`
	Quantity     int  `json:"quantity" validate:"gte=0"`
	ReorderLevel *int `json:"reorder_level" validate:"omitempty,gte=0"`
}

func (in *UpdateInventoryInput) Validate() error {
	return runTagValidation(in)
}

// CreatePartyInput serves both customers and suppliers; the two entities are
// structurally identical.
type CreatePartyInput struct {
	Name    string  `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (in *CreatePartyInput) Validate() error {
	return runTagValidation(in)
}

type CreateOrderInput struct {
	Type       OrderType  `json:"type" validate:"required,oneof=sales purchase"`
	CustomerID *int       `json:"customer_id"`
	SupplierID *int       `json:"supplier_id"`
	OrderDate  *time.Time `json:"order_date"`
}

// Validate enforces the type↔party rule: a sales order references exactly a
// customer, a purchase order exactly a supplier.
func (in *CreateOrderInput) Validate() error {
	if err := runTagValidation(in); err != nil {
		return err
	}
	switch in.Type {
	case OrderTypeSales:
		if in.CustomerID == nil {
			return NewValidationError("sales order requires customer_id")
		}
		if in.SupplierID != nil {
			return NewValidationError("sales order must not set supplier_id")
		}
	case OrderTypePurchase:
		if in.SupplierID == nil {
			return NewValidationError("purchase order requires supplier_id")
		}
		if in.CustomerID != nil {
			return NewValidationError("purchase order must not set customer_id")
		}
	}
	return nil
}

type CreateOrderItemInput struct {
	OrderID   int             `json:"order_id" validate:"required,gt=0"`
	ProductID int             `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (in *CreateOrderItemInput) Validate() error {
	if err := runTagValidation(in); err != nil {
		return err
	}
	if !in.UnitPrice.IsPositive() {
		return NewValidationError("unit_price must be positive")
	}
	return nil
}

type CreateInvoiceInput struct {
	OrderID    *int            `json:"order_id"`
	CustomerID int             `json:"customer_id" validate:"required,gt=0"`
	Amount     decimal.Decimal `json:"amount"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	DueDate    time.Time       `json:"due_date" validate:"required"`
	IssueDate  *time.Time      `json:"issue_date"`
}

func (in *CreateInvoiceInput) Validate() error {
	if err := runTagValidation(in); err != nil {
		return err
	}
	if !in.Amount.IsPositive() {
		return NewValidationError("amount must be positive")
	}
	if in.TaxAmount.IsNegative() {
		return NewValidationError("tax_amount must not be negative")
	}
	return nil
}

type CreateExpenseInput struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required"`
	ExpenseDate *time.Time      `json:"expense_date"`
}

func (in *CreateExpenseInput) Validate() error {
	if err := runTagValidation(in); err != nil {
		return err
	}
	if !in.Amount.IsPositive() {
		return NewValidationError("amount must be positive")
	}
	return nil
}

type CreateTransactionInput struct {
	Type            TransactionType `json:"type" validate:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description" validate:"required"`
	InvoiceID       *int            `json:"invoice_id"`
	ExpenseID       *int            `json:"expense_id"`
	TransactionDate *time.Time      `json:"transaction_date"`
}

func (in *CreateTransactionInput) Validate() error {
	if err := runTagValidation(in); err != nil {
		return err
	}
	if !in.Amount.IsPositive() {
		return NewValidationError("amount must be positive")
	}
	return nil
}
