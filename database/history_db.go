package database

import (
	"fmt"
	"time"

	"proxyctl/models"

	"github.com/google/uuid"
)

// RecordChange appends an entry to the proxy_history journal. ID and
// ChangedAt are filled in when empty.
func (d *DB) RecordChange(change models.SettingChange) (models.SettingChange, error) {
	if change.ID == "" {
		change.ID = uuid.New().String()
	}
	if change.ChangedAt.IsZero() {
		change.ChangedAt = time.Now().UTC()
	}

	_, err := d.conn.Exec(`INSERT INTO proxy_history (id, field, action, old_value, new_value, backend, changed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		change.ID, change.Field, change.Action, change.OldValue, change.NewValue, change.Backend, change.ChangedAt)
	if err != nil {
		return models.SettingChange{}, fmt.Errorf("failed to record change for '%s': %w", change.Field, err)
	}
	return change, nil
}

// ListChanges returns the most recent journal entries first. A limit of zero
// or less returns everything.
func (d *DB) ListChanges(limit int) ([]models.SettingChange, error) {
	query := `SELECT id, field, action, old_value, new_value, backend, changed_at
              FROM proxy_history
              ORDER BY changed_at DESC, rowid DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying proxy history: %w", err)
	}
	defer rows.Close()

	changes := []models.SettingChange{}
	for rows.Next() {
		var c models.SettingChange
		if err := rows.Scan(&c.ID, &c.Field, &c.Action, &c.OldValue, &c.NewValue, &c.Backend, &c.ChangedAt); err != nil {
			return nil, fmt.Errorf("scanning proxy history row: %w", err)
		}
		changes = append(changes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proxy history rows: %w", err)
	}
	return changes, nil
}
