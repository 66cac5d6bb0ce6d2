// Package ui renders proxy operations for people: styled console messages and
// the interactive menu.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"proxyctl/core"

	"github.com/charmbracelet/lipgloss"
)

const notSet = "(not set)"

// Severity classifies how an operation error is shown.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Printer writes styled lines to w. Colors follow the terminal capabilities of
// the renderer, so a plain buffer gets plain text.
type Printer struct {
	w       io.Writer
	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	label   lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithRenderer(w, lipgloss.NewRenderer(w))
}

// NewPrinterWithRenderer lets the interactive menu render into a buffer with
// the color profile of the real terminal.
func NewPrinterWithRenderer(w io.Writer, r *lipgloss.Renderer) *Printer {
	return &Printer{
		w:       w,
		header:  r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		info:    r.NewStyle().Foreground(lipgloss.Color("14")),
		label:   r.NewStyle().Foreground(lipgloss.Color("14")).Width(14),
	}
}

func (p *Printer) line(style lipgloss.Style, format string, args ...interface{}) {
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Header(format string, args ...interface{}) {
	fmt.Fprintln(p.w)
	p.line(p.header, "== "+format+" ==", args...)
}

func (p *Printer) Success(format string, args ...interface{}) { p.line(p.success, format, args...) }
func (p *Printer) Error(format string, args ...interface{})   { p.line(p.failure, format, args...) }
func (p *Printer) Warning(format string, args ...interface{}) { p.line(p.warning, format, args...) }
func (p *Printer) Info(format string, args ...interface{})    { p.line(p.info, format, args...) }

// Field prints an indented "label : value" pair.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.w, "   %s: %s\n", p.label.Render(label), value)
}

func optional(s *string) string {
	if s == nil {
		return notSet
	}
	return *s
}

// Status renders the check/status view.
func (p *Printer) Status(state core.State) {
	p.Header("Proxy Status")
	if state.Enabled {
		p.Success("Proxy is ENABLED")
	} else {
		p.Warning("Proxy is DISABLED")
	}

	if !state.HasServer() {
		p.Info("No proxy server configured")
		return
	}
	if state.Enabled {
		p.Info("Active Proxy Configuration:")
	} else {
		p.Info("Configured Proxy (currently disabled):")
	}
	p.Field("Server", *state.Server)
	p.Field("Bypass List", optional(state.Bypass))
}

// Settings renders the get/show table.
func (p *Printer) Settings(state core.State) {
	p.Header("Proxy Settings")
	status := "DISABLED"
	if state.Enabled {
		status = "ENABLED"
	}
	p.Field("Status", status)
	p.Field("Server", optional(state.Server))
	p.Field("Bypass List", optional(state.Bypass))
}

func (p *Printer) ProxySet(result core.SetResult) {
	p.Success("Proxy Successfully Enabled")
	p.Field("Server", result.Server)
	if result.DefaultBypass {
		p.Field("Bypass", result.Bypass+" (default)")
	} else {
		p.Field("Bypass", result.Bypass)
	}
	p.Notification(result.Notification)
}

func (p *Printer) ProxyDisabled(result core.DisableResult) {
	p.Success("Proxy Successfully Disabled")
	if result.Previous.HasServer() {
		p.Info("Disabled proxy configuration:")
		p.Field("Server", *result.Previous.Server)
		p.Field("Bypass", optional(result.Previous.Bypass))
	}
	p.Notification(result.Notification)
}

// BypassItems numbers every entry, empty segments included.
func (p *Printer) BypassItems(items []string) {
	p.Header("Bypass List (%d items)", len(items))
	for i, item := range items {
		fmt.Fprintf(p.w, "   %2d. %s\n", i+1, item)
	}
}

func (p *Printer) BypassSet(result core.BypassResult) {
	p.Success("Bypass List Successfully Updated")
	p.bypassValue("New Bypass List", result)
	p.Notification(result.Notification)
}

func (p *Printer) BypassAdded(result core.BypassResult) {
	p.Success("Item Successfully Added")
	p.Field("Added", result.Item)
	p.bypassValue("New Bypass List", result)
	p.Notification(result.Notification)
}

func (p *Printer) BypassRemoved(result core.BypassResult) {
	p.Success("Item Successfully Removed")
	p.Field("Removed", result.Item)
	p.bypassValue("New Bypass List", result)
	p.Notification(result.Notification)
}

func (p *Printer) BypassCleared(n core.Notification) {
	p.Success("Bypass List Successfully Cleared")
	p.Notification(n)
}

func (p *Printer) bypassValue(label string, result core.BypassResult) {
	if result.Deleted {
		p.Field("Bypass List", "(empty)")
		return
	}
	p.Field(label, result.Bypass)
}

// Notification reports the outcome of the change signal. A failure is a
// warning: the settings are already saved.
func (p *Printer) Notification(n core.Notification) {
	if n.OK {
		p.Success("System notified, changes are now active")
		return
	}
	p.Warning("Failed to notify system, applications may need a restart")
	if n.Err != nil {
		for _, line := range strings.Split(n.Err.Error(), "; ") {
			p.Warning("   %s", line)
		}
	}
}

// Classify maps an operation error onto how loudly it is reported.
func Classify(err error) Severity {
	switch {
	case errors.Is(err, core.ErrEmpty):
		return SeverityInfo
	case errors.Is(err, core.ErrAlreadyExists), errors.Is(err, core.ErrNotFound):
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Failure prints err with the style of its severity and returns the severity.
func (p *Printer) Failure(err error) Severity {
	severity := Classify(err)
	switch {
	case severity == SeverityInfo:
		p.Info("Bypass list is empty or not configured")
	case severity == SeverityWarning:
		p.Warning("%s", capitalize(err.Error()))
	case errors.Is(err, core.ErrStoreUnavailable):
		p.Error("Cannot access proxy settings: %v", err)
	default:
		p.Error("Error: %v", err)
	}
	return severity
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
