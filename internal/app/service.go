package app

import (
	"context"

	"bizdesk/internal/core"
)

// ApplicationService is the single interface the RPC adapter calls. It
// decouples the transport from business logic; implementations contain no
// HTTP types and no display logic.
type ApplicationService interface {
	CreateWarehouse(ctx context.Context, input core.CreateWarehouseInput) (*core.Warehouse, error)
	GetWarehouses(ctx context.Context) ([]core.Warehouse, error)

	CreateProduct(ctx context.Context, input core.CreateProductInput) (*core.Product, error)
	GetProducts(ctx context.Context) ([]core.Product, error)

	UpdateInventory(ctx context.Context, input core.UpdateInventoryInput) (*core.Inventory, error)
	GetInventory(ctx context.Context) ([]core.Inventory, error)
	GetLowStockItems(ctx context.Context) ([]core.Inventory, error)

	CreateCustomer(ctx context.Context, input core.CreatePartyInput) (*core.Customer, error)
	GetCustomers(ctx context.Context) ([]core.Customer, error)
	CreateSupplier(ctx context.Context, input core.CreatePartyInput) (*core.Supplier, error)
	GetSuppliers(ctx context.Context) ([]core.Supplier, error)

	CreateOrder(ctx context.Context, input core.CreateOrderInput) (*core.Order, error)
	GetOrders(ctx context.Context) ([]core.Order, error)
	CreateOrderItem(ctx context.Context, input core.CreateOrderItemInput) (*core.OrderItem, error)
	GetOrderItems(ctx context.Context, orderID int) ([]core.OrderItem, error)

	CreateInvoice(ctx context.Context, input core.CreateInvoiceInput) (*core.Invoice, error)
	GetInvoices(ctx context.Context) ([]core.Invoice, error)
	GetOverdueInvoices(ctx context.Context) ([]core.Invoice, error)

	CreateExpense(ctx context.Context, input core.CreateExpenseInput) (*core.Expense, error)
	GetExpenses(ctx context.Context) ([]core.Expense, error)
	GetExpensesByCategory(ctx context.Context) ([]core.CategoryTotal, error)

	CreateTransaction(ctx context.Context, input core.CreateTransactionInput) (*core.Transaction, error)
	GetTransactions(ctx context.Context) ([]core.Transaction, error)

	GetFinancialSummary(ctx context.Context) (*core.FinancialSummary, error)
}

type appService struct {
	warehouses core.WarehouseService
	products   core.ProductService
	inventory  core.InventoryService
	customers  core.CustomerService
	suppliers  core.SupplierService
	orders     core.OrderService
	invoices   core.InvoiceService
	finance    core.FinanceService
}

// NewAppService wires the domain services behind the ApplicationService facade.
func NewAppService(
	warehouses core.WarehouseService,
	products core.ProductService,
	inventory core.InventoryService,
	customers core.CustomerService,
	suppliers core.SupplierService,
	orders core.OrderService,
	invoices core.InvoiceService,
	finance core.FinanceService,
) ApplicationService {
	return &appService{
		warehouses: warehouses,
		products:   products,
		inventory:  inventory,
		customers:  customers,
		suppliers:  suppliers,
		orders:     orders,
		invoices:   invoices,
		finance:    finance,
	}
}

func (s *appService) CreateWarehouse(ctx context.Context, input core.CreateWarehouseInput) (*core.Warehouse, error) {
	return s.warehouses.CreateWarehouse(ctx, input)
}

func (s *appService) GetWarehouses(ctx context.Context) ([]core.Warehouse, error) {
	return s.warehouses.GetWarehouses(ctx)
}

func (s *appService) CreateProduct(ctx context.Context, input core.CreateProductInput) (*core.Product, error) {
	return s.products.CreateProduct(ctx, input)
}

func (s *appService) GetProducts(ctx context.Context) ([]core.Product, error) {
	return s.products.GetProducts(ctx)
}

func (s *appService) UpdateInventory(ctx context.Context, input core.UpdateInventoryInput) (*core.Inventory, error) {
	return s.inventory.UpdateInventory(ctx, input)
}

func (s *appService) GetInventory(ctx context.Context) ([]core.Inventory, error) {
	return s.inventory.GetInventory(ctx)
}

func (s *appService) GetLowStockItems(ctx context.Context) ([]core.Inventory, error) {
	return s.inventory.GetLowStockItems(ctx)
}

func (s *appService) CreateCustomer(ctx context.Context, input core.CreatePartyInput) (*core.Customer, error) {
	return s.customers.CreateCustomer(ctx, input)
}

func (s *appService) GetCustomers(ctx context.Context) ([]core.Customer, error) {
	return s.customers.GetCustomers(ctx)
}

func (s *appService) CreateSupplier(ctx context.Context, input core.CreatePartyInput) (*core.Supplier, error) {
	return s.suppliers.CreateSupplier(ctx, input)
}

func (s *appService) GetSuppliers(ctx context.Context) ([]core.Supplier, error) {
	return s.suppliers.GetSuppliers(ctx)
}

func (s *appService) CreateOrder(ctx context.Context, input core.CreateOrderInput) (*core.Order, error) {
	return s.orders.CreateOrder(ctx, input)
}

func (s *appService) GetOrders(ctx context.Context) ([]core.Order, error) {
	return s.orders.GetOrders(ctx)
}

func (s *appService) CreateOrderItem(ctx context.Context, input core.CreateOrderItemInput) (*core.OrderItem, error) {
	return s.orders.CreateOrderItem(ctx, input)
}

func (s *appService) GetOrderItems(ctx context.Context, orderID int) ([]core.OrderItem, error) {
	return s.orders.GetOrderItems(ctx, orderID)
}

func (s *appService) CreateInvoice(ctx context.Context, input core.CreateInvoiceInput) (*core.Invoice, error) {
	return s.invoices.CreateInvoice(ctx, input)
}

func (s *appService) GetInvoices(ctx context.Context) ([]core.Invoice, error) {
	return s.invoices.GetInvoices(ctx)
}

func (s *appService) GetOverdueInvoices(ctx context.Context) ([]core.Invoice, error) {
	return s.invoices.GetOverdueInvoices(ctx)
}

func (s *appService) CreateExpense(ctx context.Context, input core.CreateExpenseInput) (*core.Expense, error) {
	return s.finance.CreateExpense(ctx, input)
}

func (s *appService) GetExpenses(ctx context.Context) ([]core.Expense, error) {
	return s.finance.GetExpenses(ctx)
}

func (s *appService) GetExpensesByCategory(ctx context.Context) ([]core.CategoryTotal, error) {
	return s.finance.GetExpensesByCategory(ctx)
}

func (s *appService) CreateTransaction(ctx context.Context, input core.CreateTransactionInput) (*core.Transaction, error) {
	return s.finance.CreateTransaction(ctx, input)
}

func (s *appService) GetTransactions(ctx context.Context) ([]core.Transaction, error) {
	return s.finance.GetTransactions(ctx)
}

func (s *appService) GetFinancialSummary(ctx context.Context) (*core.FinancialSummary, error) {
	return s.finance.GetFinancialSummary(ctx)
}
