package models

import "database/sql"

// OptionalString converts a (value, present) pair into sql.NullString. Unlike
// a plain emptiness check it keeps a present empty string valid.
func OptionalString(s string, ok bool) sql.NullString {
	return sql.NullString{String: s, Valid: ok}
}

// NullStringPtr converts sql.NullString to a *string for JSON responses.
func NullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
