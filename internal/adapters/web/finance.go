package web

import (
	"net/http"

	"bizdesk/internal/core"
)

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var input core.CreateInvoiceInput
	if !decodeJSON(w, r, &input) {
		return
	}
	invoice, err := h.svc.CreateInvoice(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, invoice)
}

func (h *Handler) getInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.GetInvoices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, invoices)
}

func (h *Handler) getOverdueInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.GetOverdueInvoices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, invoices)
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var input core.CreateExpenseInput
	if !decodeJSON(w, r, &input) {
		return
	}
	expense, err := h.svc.CreateExpense(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, expense)
}

func (h *Handler) getExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.GetExpenses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, expenses)
}

func (h *Handler) getExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.GetExpensesByCategory(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, totals)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var input core.CreateTransactionInput
	if !decodeJSON(w, r, &input) {
		return
	}
	tx, err := h.svc.CreateTransaction(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, tx)
}

func (h *Handler) getTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.svc.GetTransactions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, transactions)
}

func (h *Handler) getFinancialSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetFinancialSummary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, summary)
}
