//go:build !windows

package sysproxy

import "proxyctl/core"

// NewNotifier returns a NopNotifier: without WinINet there is no process-wide
// proxy change signal to send.
func NewNotifier() core.Notifier {
	return NopNotifier{}
}
