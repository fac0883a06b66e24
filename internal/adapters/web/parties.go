package web

import (
	"net/http"

	"bizdesk/internal/core"
)

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var input core.CreatePartyInput
	if !decodeJSON(w, r, &input) {
		return
	}
	customer, err := h.svc.CreateCustomer(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, customer)
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.GetCustomers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, customers)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var input core.CreatePartyInput
	if !decodeJSON(w, r, &input) {
		return
	}
	supplier, err := h.svc.CreateSupplier(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, supplier)
}

func (h *Handler) getSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.GetSuppliers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, suppliers)
}
