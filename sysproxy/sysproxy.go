// Package sysproxy talks to the operating system's per-user proxy settings:
// the registry-backed SettingsStore and the wininet change notification.
package sysproxy

import "proxyctl/core"

// InternetSettingsPath is the per-user key holding ProxyEnable, ProxyServer
// and ProxyOverride.
const InternetSettingsPath = `Software\Microsoft\Windows\CurrentVersion\Internet Settings`

// NopNotifier accepts every notification. It is used where the settings store
// is the system of record and nothing else needs to hear about changes.
type NopNotifier struct{}

func (NopNotifier) Notify(core.NotifyOption) error {
	return nil
}
