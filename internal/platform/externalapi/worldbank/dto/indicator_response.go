// Package dto defines data transfer objects for the World Bank API responses.
package dto

// Record is one dated observation from the World Bank indicator
// endpoint. Value is null for dates without data. The full response is
// a two-element JSON array [metadata, records]; only the records are
// modeled here since the metadata element is never used.
type Record struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}
