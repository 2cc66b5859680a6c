// Package httpapi provides the JSON response envelope used by the API.
//
// Most routes respond with {success, data} on success and
// {success:false, error} on failure. A handful of legacy routes return
// bare documents; those use Raw directly.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard response wrapper.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Raw writes v as JSON with the given status, with no envelope.
func Raw(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 success envelope around data.
func OK(w http.ResponseWriter, data interface{}) {
	Raw(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 success envelope around data.
func Created(w http.ResponseWriter, data interface{}) {
	Raw(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Fail writes a failure envelope with the given status and message.
func Fail(w http.ResponseWriter, status int, msg string) {
	Raw(w, status, Envelope{Success: false, Error: msg})
}

// Decode reads the request body as JSON into dst.
func Decode(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
