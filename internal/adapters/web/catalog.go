package web

import (
	"net/http"

	"bizdesk/internal/core"
)

func (h *Handler) createWarehouse(w http.ResponseWriter, r *http.Request) {
	var input core.CreateWarehouseInput
	if !decodeJSON(w, r, &input) {
		return
	}
	warehouse, err := h.svc.CreateWarehouse(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, warehouse)
}

func (h *Handler) getWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.svc.GetWarehouses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, warehouses)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var input core.CreateProductInput
	if !decodeJSON(w, r, &input) {
		return
	}
	product, err := h.svc.CreateProduct(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, product)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.GetProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, products)
}
