package core

import (
	"fmt"
	"strings"
)

// State is a read-only view of the persisted proxy settings. A nil pointer
// means the field is absent from the store.
type State struct {
	Enabled bool
	Server  *string
	Bypass  *string
}

// HasServer reports whether a non-blank server address is stored.
func (s State) HasServer() bool {
	return s.Server != nil && strings.TrimSpace(*s.Server) != ""
}

// HasBypass reports whether a non-blank bypass list is stored.
func (s State) HasBypass() bool {
	return s.Bypass != nil && strings.TrimSpace(*s.Bypass) != ""
}

// SetResult describes what SetProxy wrote.
type SetResult struct {
	Server        string
	Bypass        string
	DefaultBypass bool
	Notification  Notification
}

// DisableResult carries the configuration that was active before DisableProxy.
type DisableResult struct {
	Previous     State
	Notification Notification
}

// BypassResult describes the bypass value left in the store after a change.
// Deleted is true when the value was removed instead of written.
type BypassResult struct {
	Item         string
	Bypass       string
	Deleted      bool
	Notification Notification
}

// Configurator applies proxy operations to a SettingsStore and signals
// applications after every mutation. It writes no output of its own.
//
// Read-modify-write sequences are not atomic: another process editing the same
// settings between the read and the write can lose an update.
type Configurator struct {
	store    SettingsStore
	notifier Notifier
}

func NewConfigurator(store SettingsStore, notifier Notifier) *Configurator {
	return &Configurator{store: store, notifier: notifier}
}

// CheckStatus reads the current state. An absent enabled flag reads as false.
func (c *Configurator) CheckStatus() (State, error) {
	return c.readState()
}

// GetSettings reads the current state for a table view.
func (c *Configurator) GetSettings() (State, error) {
	return c.readState()
}

// SetProxy stores server and bypass and enables the proxy. A blank bypass
// falls back to DefaultBypass. The three fields are written in order with no
// rollback if a later write fails.
func (c *Configurator) SetProxy(server, bypass string) (SetResult, error) {
	if strings.TrimSpace(server) == "" {
		return SetResult{}, ErrServerRequired
	}

	result := SetResult{Server: server, Bypass: bypass}
	if strings.TrimSpace(bypass) == "" {
		result.Bypass = DefaultBypass
		result.DefaultBypass = true
	}

	if err := c.store.Set(FieldServer, server); err != nil {
		return SetResult{}, fmt.Errorf("failed to set proxy server: %w", err)
	}
	if err := c.store.Set(FieldBypass, result.Bypass); err != nil {
		return SetResult{}, fmt.Errorf("failed to set bypass list: %w", err)
	}
	if err := c.store.Set(FieldEnabled, enabledOn); err != nil {
		return SetResult{}, fmt.Errorf("failed to enable proxy: %w", err)
	}

	result.Notification = notifyAll(c.notifier)
	return result, nil
}

// DisableProxy clears the enabled flag. Server and bypass are left in place.
func (c *Configurator) DisableProxy() (DisableResult, error) {
	previous, err := c.readState()
	if err != nil {
		return DisableResult{}, err
	}
	if err := c.store.Set(FieldEnabled, enabledOff); err != nil {
		return DisableResult{}, fmt.Errorf("failed to disable proxy: %w", err)
	}
	return DisableResult{Previous: previous, Notification: notifyAll(c.notifier)}, nil
}

// ShowBypass returns the unfiltered split of the stored bypass list, so empty
// segments show up as entries.
func (c *Configurator) ShowBypass() ([]string, error) {
	raw, ok, err := c.store.Get(FieldBypass)
	if err != nil {
		return nil, fmt.Errorf("failed to read bypass list: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, ErrEmpty
	}
	return ParseBypassList(raw).Items(), nil
}

// SetBypass stores raw verbatim. An empty string deletes the value so that an
// empty bypass list is never persisted.
func (c *Configurator) SetBypass(raw string) (BypassResult, error) {
	result, err := c.writeBypass(raw)
	if err != nil {
		return BypassResult{}, err
	}
	result.Notification = notifyAll(c.notifier)
	return result, nil
}

// AddBypass appends item unless an equal entry exists.
func (c *Configurator) AddBypass(item string) (BypassResult, error) {
	if strings.TrimSpace(item) == "" {
		return BypassResult{}, ErrItemRequired
	}
	list, _, err := c.loadBypass()
	if err != nil {
		return BypassResult{}, err
	}
	if err := list.Add(item); err != nil {
		return BypassResult{}, err
	}

	result, err := c.writeBypass(list.Serialize())
	if err != nil {
		return BypassResult{}, err
	}
	result.Item = item
	result.Notification = notifyAll(c.notifier)
	return result, nil
}

// RemoveBypass drops every entry matching item. The stored value is deleted
// once nothing remains.
func (c *Configurator) RemoveBypass(item string) (BypassResult, error) {
	if strings.TrimSpace(item) == "" {
		return BypassResult{}, ErrItemRequired
	}
	list, raw, err := c.loadBypass()
	if err != nil {
		return BypassResult{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return BypassResult{}, fmt.Errorf("bypass list is empty, nothing to remove: %w", ErrNotFound)
	}
	if err := list.Remove(item); err != nil {
		return BypassResult{}, err
	}

	serialized := list.Serialize()
	if list.IsEmpty() {
		serialized = ""
	}
	result, err := c.writeBypass(serialized)
	if err != nil {
		return BypassResult{}, err
	}
	result.Item = item
	result.Notification = notifyAll(c.notifier)
	return result, nil
}

// ClearBypass deletes the stored bypass list whether or not it exists.
func (c *Configurator) ClearBypass() (Notification, error) {
	if err := c.store.Delete(FieldBypass); err != nil {
		return Notification{}, fmt.Errorf("failed to clear bypass list: %w", err)
	}
	return notifyAll(c.notifier), nil
}

func (c *Configurator) readState() (State, error) {
	var state State

	enabled, ok, err := c.store.Get(FieldEnabled)
	if err != nil {
		return State{}, fmt.Errorf("failed to read proxy enable flag: %w", err)
	}
	state.Enabled = ok && strings.TrimSpace(enabled) == enabledOn

	server, ok, err := c.store.Get(FieldServer)
	if err != nil {
		return State{}, fmt.Errorf("failed to read proxy server: %w", err)
	}
	if ok {
		state.Server = &server
	}

	bypass, ok, err := c.store.Get(FieldBypass)
	if err != nil {
		return State{}, fmt.Errorf("failed to read bypass list: %w", err)
	}
	if ok {
		state.Bypass = &bypass
	}

	return state, nil
}

func (c *Configurator) loadBypass() (*BypassList, string, error) {
	raw, _, err := c.store.Get(FieldBypass)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read bypass list: %w", err)
	}
	return ParseBypassList(raw), raw, nil
}

func (c *Configurator) writeBypass(serialized string) (BypassResult, error) {
	if serialized == "" {
		if err := c.store.Delete(FieldBypass); err != nil {
			return BypassResult{}, fmt.Errorf("failed to delete bypass list: %w", err)
		}
		return BypassResult{Deleted: true}, nil
	}
	if err := c.store.Set(FieldBypass, serialized); err != nil {
		return BypassResult{}, fmt.Errorf("failed to save bypass list: %w", err)
	}
	return BypassResult{Bypass: serialized}, nil
}
