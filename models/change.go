package models

import (
	"database/sql"
	"time"
)

const (
	ChangeActionSet    = "set"
	ChangeActionDelete = "delete"
)

// SettingChange is one journal entry: a single field written or deleted.
type SettingChange struct {
	ID        string         `json:"id"`
	Field     string         `json:"field"`
	Action    string         `json:"action"`
	OldValue  sql.NullString `json:"-"`
	NewValue  sql.NullString `json:"-"`
	Backend   string         `json:"backend"`
	ChangedAt time.Time      `json:"changed_at"`
}

// SettingChangeResponse is the API view of a SettingChange.
type SettingChangeResponse struct {
	ID        string    `json:"id"`
	Field     string    `json:"field"`
	Action    string    `json:"action"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
	Backend   string    `json:"backend"`
	ChangedAt time.Time `json:"changed_at"`
}

func (c SettingChange) Response() SettingChangeResponse {
	return SettingChangeResponse{
		ID:        c.ID,
		Field:     c.Field,
		Action:    c.Action,
		OldValue:  NullStringPtr(c.OldValue),
		NewValue:  NullStringPtr(c.NewValue),
		Backend:   c.Backend,
		ChangedAt: c.ChangedAt,
	}
}
