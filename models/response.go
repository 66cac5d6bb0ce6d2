package models

// ErrorResponse is a generic error response structure for API
type ErrorResponse struct {
	Message string `json:"message" example:"Error message describing the issue"`
}

// ProxySettingsResponse mirrors core.State. Absent fields are null.
type ProxySettingsResponse struct {
	Enabled bool    `json:"enabled"`
	Server  *string `json:"server"`
	Bypass  *string `json:"bypass"`
}

// NotificationResponse reports whether running applications were signalled.
type NotificationResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ProxyChangeResponse is returned by every mutating proxy endpoint.
type ProxyChangeResponse struct {
	Message      string                 `json:"message"`
	Settings     *ProxySettingsResponse `json:"settings,omitempty"`
	Bypass       *string                `json:"bypass,omitempty"`
	Notification NotificationResponse   `json:"notification"`
}

// BypassListResponse lists the bypass entries as stored, empty segments included.
type BypassListResponse struct {
	Items []string `json:"items"`
	Count int      `json:"count"`
	Empty bool     `json:"empty"`
}
