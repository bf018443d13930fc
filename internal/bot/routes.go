package bot

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/webhook/message", h.HandleWebhook)
	r.Get("/sessions", h.HandleSessions)
}
