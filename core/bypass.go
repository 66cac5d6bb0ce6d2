package core

import (
	"fmt"
	"strings"
)

// DefaultBypass is written by SetProxy when no bypass list is given.
const DefaultBypass = "<local>"

const bypassSeparator = ";"

// BypassList is the exclusion list held in the ProxyOverride value.
//
// Items are kept exactly as split from the raw string, surrounding whitespace
// and empty segments included. Comparison trims and folds case; storage never
// does.
type BypassList struct {
	items []string
}

// ParseBypassList splits raw on ';'. A blank raw string yields an empty list.
func ParseBypassList(raw string) *BypassList {
	l := &BypassList{}
	l.Set(raw)
	return l
}

// Set replaces the list with the split of raw. No trimming or deduplication
// is applied.
func (l *BypassList) Set(raw string) {
	if strings.TrimSpace(raw) == "" {
		l.items = nil
		return
	}
	l.items = strings.Split(raw, bypassSeparator)
}

// Contains reports whether any entry equals item once both are trimmed,
// ignoring case.
func (l *BypassList) Contains(item string) bool {
	for _, existing := range l.items {
		if sameEntry(existing, item) {
			return true
		}
	}
	return false
}

// Add appends item verbatim unless an equal entry already exists.
func (l *BypassList) Add(item string) error {
	if l.Contains(item) {
		return fmt.Errorf("%w: %q", ErrAlreadyExists, item)
	}
	l.items = append(l.items, item)
	return nil
}

// Remove drops every entry matching item. Empty segments between consecutive
// separators are discarded as part of a successful remove, and are never
// themselves removable. The list is left untouched when nothing matches.
func (l *BypassList) Remove(item string) error {
	var filtered []string
	for _, existing := range l.items {
		if existing != "" {
			filtered = append(filtered, existing)
		}
	}

	remaining := make([]string, 0, len(filtered))
	for _, existing := range filtered {
		if !sameEntry(existing, item) {
			remaining = append(remaining, existing)
		}
	}
	if len(remaining) == len(filtered) {
		return fmt.Errorf("%w: %q", ErrNotFound, item)
	}

	l.items = remaining
	return nil
}

// Clear empties the list.
func (l *BypassList) Clear() {
	l.items = nil
}

// Serialize joins the entries with ';'. An empty result means the persisted
// value must be deleted rather than written.
func (l *BypassList) Serialize() string {
	return strings.Join(l.items, bypassSeparator)
}

// Count is the number of entries in the unfiltered split, empty segments
// included.
func (l *BypassList) Count() int {
	return len(l.items)
}

// Items returns a copy of the unfiltered split.
func (l *BypassList) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// IsEmpty reports whether the serialized form carries nothing worth storing.
func (l *BypassList) IsEmpty() bool {
	return strings.TrimSpace(l.Serialize()) == ""
}

func sameEntry(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
