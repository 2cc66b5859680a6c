// Package formutil provides helpers for reading typed values out of
// multipart form submissions from the admin dashboard.
//
// The dashboard sends scalars as strings and list fields as JSON-encoded
// strings (e.g. tags=["go","web"]), so every accessor here is forgiving:
// a missing or malformed value yields the zero value rather than an error.
package formutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// MissingValues returns, in order, the names whose trimmed form values
// are empty. Used for required-field validation on create.
func MissingValues(r *http.Request, names ...string) []string {
	var missing []string
	for _, name := range names {
		if Trimmed(r, name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Has reports whether the form contains the named field at all.
// Use this to distinguish "absent" from "present but empty" on updates.
func Has(r *http.Request, name string) bool {
	if r.Form == nil {
		return false
	}
	_, ok := r.Form[name]
	return ok
}

// Trimmed returns the form value with surrounding whitespace removed.
func Trimmed(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// Bool parses a checkbox-style boolean ("true", "1", "on").
func Bool(r *http.Request, name string) bool {
	switch strings.ToLower(Trimmed(r, name)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// Int parses an integer field; malformed values yield 0.
func Int(r *http.Request, name string) int {
	n, _ := strconv.Atoi(Trimmed(r, name))
	return n
}

// Float parses a float field; malformed values yield 0.
func Float(r *http.Request, name string) float64 {
	f, _ := strconv.ParseFloat(Trimmed(r, name), 64)
	return f
}

// StringList parses a field sent as a JSON array string. A plain
// comma-separated value is accepted as a fallback; empty input yields
// an empty (non-nil) slice.
func StringList(r *http.Request, name string) []string {
	raw := Trimmed(r, name)
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	parts := strings.Split(raw, ",")
	list = make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
