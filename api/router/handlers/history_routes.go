package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterHistoryRoutes serves the journal, or 404 when it is disabled.
func RegisterHistoryRoutes(r chi.Router, history HistoryLister) {
	if history == nil {
		r.Get("/history", func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, http.StatusNotFound, "history is disabled")
		})
		return
	}
	r.Get("/history", GetHistoryHandler(history))
}
