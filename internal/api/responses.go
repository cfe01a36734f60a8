// Package api defines response envelopes shared across HTTP handlers.
package api

// ErrorResponse is the JSON body returned on failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WarningResponse is the JSON body returned when a request succeeds but
// yields no usable data.
type WarningResponse struct {
	Warning string `json:"warning"`
}
