package handlers

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"proxyctl/core"
	"proxyctl/logger"
	"proxyctl/models"

	"github.com/go-chi/render"
	"github.com/tidwall/gjson"
)

// ProxyHandlers serves the proxy endpoints. Requests are serialized because
// every mutation is a read-modify-write on the store.
type ProxyHandlers struct {
	mu  sync.Mutex
	cfg *core.Configurator
}

func NewProxyHandlers(cfg *core.Configurator) *ProxyHandlers {
	return &ProxyHandlers{cfg: cfg}
}

// GetProxyHandler returns the stored settings.
func (h *ProxyHandlers) GetProxyHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	state, err := h.cfg.GetSettings()
	if err != nil {
		writeOperationError(w, r, "GetProxyHandler", err)
		return
	}
	render.JSON(w, r, settingsResponse(state))
}

// SetProxyHandler stores server and bypass and enables the proxy.
// Body: {"server": "host:port", "bypass": "<local>;*.corp"}
func (h *ProxyHandlers) SetProxyHandler(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	server := gjson.GetBytes(body, "server").String()
	bypass := gjson.GetBytes(body, "bypass").String()

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.cfg.SetProxy(server, bypass)
	if err != nil {
		writeOperationError(w, r, "SetProxyHandler", err)
		return
	}
	logger.Info("API: proxy enabled with server %s", result.Server)

	state, err := h.cfg.GetSettings()
	if err != nil {
		writeOperationError(w, r, "SetProxyHandler", err)
		return
	}
	render.JSON(w, r, models.ProxyChangeResponse{
		Message:      "Proxy enabled",
		Settings:     settingsResponse(state),
		Notification: notificationResponse(result.Notification),
	})
}

// DisableProxyHandler clears the enabled flag and returns what was active.
func (h *ProxyHandlers) DisableProxyHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.cfg.DisableProxy()
	if err != nil {
		writeOperationError(w, r, "DisableProxyHandler", err)
		return
	}
	logger.Info("API: proxy disabled")

	previous := result.Previous
	render.JSON(w, r, models.ProxyChangeResponse{
		Message:      "Proxy disabled",
		Settings:     settingsResponse(core.State{Server: previous.Server, Bypass: previous.Bypass}),
		Notification: notificationResponse(result.Notification),
	})
}

// GetBypassHandler lists the bypass entries. An unset list is not an error.
func (h *ProxyHandlers) GetBypassHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	items, err := h.cfg.ShowBypass()
	if errors.Is(err, core.ErrEmpty) {
		render.JSON(w, r, models.BypassListResponse{Items: []string{}, Count: 0, Empty: true})
		return
	}
	if err != nil {
		writeOperationError(w, r, "GetBypassHandler", err)
		return
	}
	render.JSON(w, r, models.BypassListResponse{Items: items, Count: len(items)})
}

// SetBypassHandler replaces the bypass list. An empty string deletes it.
// Body: {"bypass": "<local>;*.corp"}
func (h *ProxyHandlers) SetBypassHandler(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	value := gjson.GetBytes(body, "bypass")
	if !value.Exists() {
		writeError(w, r, http.StatusBadRequest, "bypass is required")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.cfg.SetBypass(value.String())
	if err != nil {
		writeOperationError(w, r, "SetBypassHandler", err)
		return
	}
	render.JSON(w, r, models.ProxyChangeResponse{
		Message:      "Bypass list updated",
		Bypass:       bypassValue(result),
		Notification: notificationResponse(result.Notification),
	})
}

// AddBypassHandler appends one entry.
// Body: {"item": "*.example.com"}
func (h *ProxyHandlers) AddBypassHandler(w http.ResponseWriter, r *http.Request) {
	body, err := readJSONBody(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	item := gjson.GetBytes(body, "item").String()

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.cfg.AddBypass(item)
	if err != nil {
		writeOperationError(w, r, "AddBypassHandler", err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, models.ProxyChangeResponse{
		Message:      "Added " + result.Item,
		Bypass:       bypassValue(result),
		Notification: notificationResponse(result.Notification),
	})
}

// RemoveBypassHandler removes every entry matching the item query parameter.
func (h *ProxyHandlers) RemoveBypassHandler(w http.ResponseWriter, r *http.Request) {
	item := r.URL.Query().Get("item")
	if strings.TrimSpace(item) == "" {
		writeError(w, r, http.StatusBadRequest, core.ErrItemRequired.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.cfg.RemoveBypass(item)
	if err != nil {
		writeOperationError(w, r, "RemoveBypassHandler", err)
		return
	}
	render.JSON(w, r, models.ProxyChangeResponse{
		Message:      "Removed " + result.Item,
		Bypass:       bypassValue(result),
		Notification: notificationResponse(result.Notification),
	})
}

// ClearBypassHandler deletes the bypass list.
func (h *ProxyHandlers) ClearBypassHandler(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n, err := h.cfg.ClearBypass()
	if err != nil {
		writeOperationError(w, r, "ClearBypassHandler", err)
		return
	}
	render.JSON(w, r, models.ProxyChangeResponse{
		Message:      "Bypass list cleared",
		Notification: notificationResponse(n),
	})
}
