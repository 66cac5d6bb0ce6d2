package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterProxyRoutes(r chi.Router, h *ProxyHandlers) {
	r.Route("/proxy", func(r chi.Router) {
		r.Get("/", h.GetProxyHandler)
		r.Put("/", h.SetProxyHandler)
		r.Delete("/", h.DisableProxyHandler)

		r.Route("/bypass", func(r chi.Router) {
			r.Get("/", h.GetBypassHandler)
			r.Put("/", h.SetBypassHandler)
			r.Post("/", h.AddBypassHandler)
			r.Delete("/", h.ClearBypassHandler)
			r.Delete("/items", h.RemoveBypassHandler)
		})
	})
}
