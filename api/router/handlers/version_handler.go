package handlers

import (
	"net/http"

	"proxyctl/version"

	"github.com/go-chi/render"
)

// GetVersionHandler returns the application version.
func GetVersionHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"version": version.AppVersion})
}
