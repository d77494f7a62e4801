package dashboard

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/dashboard/executive", h.Executive)
	r.Get("/api/dashboard/sales", h.Sales)
}
