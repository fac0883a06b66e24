package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bizdesk/internal/app"
)

const maxRequestBody = 1 << 20 // 1 MiB

// Handler adapts the application service to the HTTP RPC surface. All
// procedures live under /rpc/: queries are GET, mutations are POST.
type Handler struct {
	svc app.ApplicationService
	log *zap.Logger
}

// NewHandler builds the router with the full middleware chain and every
// RPC route mounted.
func NewHandler(svc app.ApplicationService, log *zap.Logger, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(maxRequestBody))
	r.Use(Metrics)

	r.Get("/metrics", metricsHandler().ServeHTTP)

	r.Route("/rpc", func(r chi.Router) {
		r.Get("/healthcheck", h.healthcheck)

		r.Post("/createWarehouse", h.createWarehouse)
		r.Get("/getWarehouses", h.getWarehouses)
		r.Post("/createProduct", h.createProduct)
		r.Get("/getProducts", h.getProducts)

		r.Post("/updateInventory", h.updateInventory)
		r.Get("/getInventory", h.getInventory)
		r.Get("/getLowStockItems", h.getLowStockItems)

		r.Post("/createCustomer", h.createCustomer)
		r.Get("/getCustomers", h.getCustomers)
		r.Post("/createSupplier", h.createSupplier)
		r.Get("/getSuppliers", h.getSuppliers)

		r.Post("/createOrder", h.createOrder)
		r.Get("/getOrders", h.getOrders)
		r.Post("/createOrderItem", h.createOrderItem)
		r.Get("/getOrderItems", h.getOrderItems)

		r.Post("/createInvoice", h.createInvoice)
		r.Get("/getInvoices", h.getInvoices)
		r.Get("/getOverdueInvoices", h.getOverdueInvoices)

		r.Post("/createExpense", h.createExpense)
		r.Get("/getExpenses", h.getExpenses)
		r.Get("/getExpensesByCategory", h.getExpensesByCategory)

		r.Post("/createTransaction", h.createTransaction)
		r.Get("/getTransactions", h.getTransactions)

		r.Get("/getFinancialSummary", h.getFinancialSummary)
	})

	return r
}

func (h *Handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// queryInt extracts a required positive integer query parameter, writing a
// 400 response on failure.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		writeError(w, r, "missing required query parameter: "+name, "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		writeError(w, r, "invalid query parameter "+name+": must be a positive integer", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return n, true
}
