// Package dto defines data transfer objects for the FRED API responses.
package dto

// ObservationsResponse represents the JSON response from the FRED
// series/observations endpoint. Values arrive as strings; missing
// observations are represented by ".".
type ObservationsResponse struct {
	ErrorCode    int    `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}
