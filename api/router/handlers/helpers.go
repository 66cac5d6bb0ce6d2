package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"proxyctl/core"
	"proxyctl/logger"
	"proxyctl/models"

	"github.com/go-chi/render"
	"github.com/tidwall/gjson"
)

const maxBodyBytes = 64 << 10

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, models.ErrorResponse{Message: message})
}

// statusFor maps operation errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrServerRequired), errors.Is(err, core.ErrItemRequired):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, core.ErrNotFound), errors.Is(err, core.ErrEmpty):
		return http.StatusNotFound
	case errors.Is(err, core.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeOperationError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("%s: %v", op, err)
	} else {
		logger.Debug("%s: %v", op, err)
	}
	writeError(w, r, status, err.Error())
}

// readJSONBody returns the request body after checking it is valid JSON.
func readJSONBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid JSON payload")
	}
	return body, nil
}

func settingsResponse(state core.State) *models.ProxySettingsResponse {
	return &models.ProxySettingsResponse{
		Enabled: state.Enabled,
		Server:  state.Server,
		Bypass:  state.Bypass,
	}
}

func notificationResponse(n core.Notification) models.NotificationResponse {
	resp := models.NotificationResponse{OK: n.OK}
	if n.Err != nil {
		resp.Error = n.Err.Error()
	}
	return resp
}

// bypassValue is nil when the bypass value was deleted.
func bypassValue(result core.BypassResult) *string {
	if result.Deleted {
		return nil
	}
	value := result.Bypass
	return &value
}
