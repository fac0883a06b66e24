package web

import (
	"net/http"

	"bizdesk/internal/core"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var input core.CreateOrderInput
	if !decodeJSON(w, r, &input) {
		return
	}
	order, err := h.svc.CreateOrder(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.GetOrders(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, orders)
}

func (h *Handler) createOrderItem(w http.ResponseWriter, r *http.Request) {
	var input core.CreateOrderItemInput
	if !decodeJSON(w, r, &input) {
		return
	}
	item, err := h.svc.CreateOrderItem(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCreated(w, item)
}

func (h *Handler) getOrderItems(w http.ResponseWriter, r *http.Request) {
	orderID, ok := queryInt(w, r, "order_id")
	if !ok {
		return
	}
	items, err := h.svc.GetOrderItems(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, items)
}
