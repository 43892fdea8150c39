// Package dto defines data transfer objects for the catalog HTTP API.
package dto

// IndicatorItem represents one catalog indicator in the API response.
// It contains only the public-facing fields needed by clients.
type IndicatorItem struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
