package api

import (
	"net/http"
	"time"

	"proxyctl/api/router/handlers"
	"proxyctl/core"
	"proxyctl/logger"
	"proxyctl/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// NewRouter creates the HTTP API over cfg. history may be nil when the change
// journal is disabled.
func NewRouter(cfg *core.Configurator, history handlers.HistoryLister) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	handlers.RegisterHealthRoutes(r)
	handlers.RegisterVersionRoutes(r)
	handlers.RegisterProxyRoutes(r, handlers.NewProxyHandlers(cfg))
	handlers.RegisterHistoryRoutes(r, history)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("API catch-all: unhandled route %s %s", r.Method, r.URL.Path)
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, models.ErrorResponse{Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, models.ErrorResponse{Message: "method not allowed"})
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Info("API %s %s -> %d (%s) [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}
