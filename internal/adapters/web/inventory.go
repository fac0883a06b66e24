package web

import (
	"net/http"

	"bizdesk/internal/core"
)

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	var input core.UpdateInventoryInput
	if !decodeJSON(w, r, &input) {
		return
	}
	record, err := h.svc.UpdateInventory(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, record)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetInventory(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, records)
}

func (h *Handler) getLowStockItems(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.GetLowStockItems(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, records)
}
