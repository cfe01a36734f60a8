// Package dto defines data transfer objects for the Alpha Vantage API responses.
package dto

// Bar is one time bucket of a time-series response. Alpha Vantage prefixes
// field names with ordinal numbers and encodes every value as a string.
type Bar struct {
	Open  string `json:"1. open"`
	High  string `json:"2. high"`
	Low   string `json:"3. low"`
	Close string `json:"4. close"`
}
