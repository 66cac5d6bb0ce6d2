// Package api serves the proxy operations over HTTP on the loopback
// interface.
package api

// @title proxyctl API
// @version v1.0.0
// @description Read and change the current user's proxy settings.

// @host 127.0.0.1:8779
// @BasePath /
// @schemes http
