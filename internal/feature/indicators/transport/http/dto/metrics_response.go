// Package dto defines data transfer objects for the indicators HTTP API.
package dto

import "econ_backend/internal/feature/indicators/domain/entity"

// ChangeDTO is the JSON shape of a directional classification.
// Magnitude is omitted when the underlying delta is absent.
type ChangeDTO struct {
	Direction string   `json:"direction"`
	Magnitude *float64 `json:"magnitude,omitempty"`
}

// MetricsResponse is the JSON shape of one indicator's metrics.
// Available is false when the engine produced no data for the
// indicator; the numeric fields are omitted in that case.
type MetricsResponse struct {
	Country   string    `json:"country"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
	Current   *float64  `json:"current,omitempty"`
	Previous  *float64  `json:"previous,omitempty"`
	YearAgo   *float64  `json:"year_ago,omitempty"`
	MoMChange *float64  `json:"mom_change,omitempty"`
	MoMPct    *float64  `json:"mom_pct,omitempty"`
	YoYChange *float64  `json:"yoy_change,omitempty"`
	YoYPct    *float64  `json:"yoy_pct,omitempty"`
	MoM       ChangeDTO `json:"mom"`
	YoY       ChangeDTO `json:"yoy"`
}

// FromIndicatorMetrics converts the engine output into the API response shape.
func FromIndicatorMetrics(m entity.IndicatorMetrics) MetricsResponse {
	out := MetricsResponse{
		Country: m.Country,
		Code:    m.Code,
		Name:    m.Name,
		MoM:     ChangeDTO{Direction: string(m.MoM.Direction), Magnitude: m.MoM.Magnitude},
		YoY:     ChangeDTO{Direction: string(m.YoY.Direction), Magnitude: m.YoY.Magnitude},
	}
	if m.Metrics == nil {
		return out
	}
	out.Available = true
	current := m.Metrics.Current
	out.Current = &current
	out.Previous = m.Metrics.Previous
	out.YearAgo = m.Metrics.YearAgo
	out.MoMChange = m.Metrics.MoMChange
	out.MoMPct = m.Metrics.MoMPct
	out.YoYChange = m.Metrics.YoYChange
	out.YoYPct = m.Metrics.YoYPct
	return out
}
