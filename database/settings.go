package database

import (
	"database/sql"
	"errors"
	"fmt"

	"proxyctl/core"
)

// Get retrieves a proxy field from the proxy_settings table. A missing row
// reports ok=false.
func (d *DB) Get(field core.Field) (string, bool, error) {
	var value string
	err := d.conn.QueryRow("SELECT value FROM proxy_settings WHERE field = ?", string(field)).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: failed to get setting '%s': %v", core.ErrStoreUnavailable, field, err)
	}
	return value, true, nil
}

// Set saves or updates a proxy field.
func (d *DB) Set(field core.Field, value string) error {
	stmt, err := d.conn.Prepare(`INSERT INTO proxy_settings (field, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(field) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare set setting statement for '%s': %v", core.ErrStoreUnavailable, field, err)
	}
	defer stmt.Close()

	if _, err = stmt.Exec(string(field), value); err != nil {
		return fmt.Errorf("%w: failed to execute set setting for '%s': %v", core.ErrStoreUnavailable, field, err)
	}
	return nil
}

// Delete removes a proxy field. A missing row is not an error.
func (d *DB) Delete(field core.Field) error {
	if _, err := d.conn.Exec("DELETE FROM proxy_settings WHERE field = ?", string(field)); err != nil {
		return fmt.Errorf("%w: failed to delete setting '%s': %v", core.ErrStoreUnavailable, field, err)
	}
	return nil
}
