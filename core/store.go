package core

// Field names one persisted proxy setting. The values match the registry
// value names under the per-user Internet Settings key.
type Field string

const (
	FieldEnabled Field = "ProxyEnable"
	FieldServer  Field = "ProxyServer"
	FieldBypass  Field = "ProxyOverride"
)

// Fields lists every field a SettingsStore must handle.
var Fields = []Field{FieldEnabled, FieldServer, FieldBypass}

// SettingsStore persists the proxy fields one at a time. Writes to different
// fields are independent; there is no cross-field transaction.
//
// The enabled flag travels as "1" or "0". Implementations that keep it in a
// typed slot (a registry DWORD) convert at their boundary.
type SettingsStore interface {
	// Get returns the stored value and whether the field is present at all.
	Get(field Field) (string, bool, error)

	// Set writes a single field.
	Set(field Field, value string) error

	// Delete removes a field. Deleting an absent field is not an error.
	Delete(field Field) error
}

const (
	enabledOn  = "1"
	enabledOff = "0"
)
