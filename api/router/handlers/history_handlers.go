package handlers

import (
	"net/http"
	"strconv"

	"proxyctl/models"

	"github.com/go-chi/render"
)

const defaultHistoryLimit = 50

// HistoryLister is the read side of the change journal.
type HistoryLister interface {
	ListChanges(limit int) ([]models.SettingChange, error)
}

// GetHistoryHandler returns the most recent journal entries.
func GetHistoryHandler(history HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			limit = parsed
		}

		changes, err := history.ListChanges(limit)
		if err != nil {
			writeOperationError(w, r, "GetHistoryHandler", err)
			return
		}
		resp := make([]models.SettingChangeResponse, 0, len(changes))
		for _, c := range changes {
			resp = append(resp, c.Response())
		}
		render.JSON(w, r, resp)
	}
}
