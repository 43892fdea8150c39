// Package entity defines the domain models for the indicators feature.
package entity

import "time"

// SeriesKind identifies the structural shape of an upstream payload.
// The two supported providers deliver observations in incompatible
// layouts, and the comparison rules differ per layout, so the shape
// travels with the data instead of being erased during normalization.
type SeriesKind string

const (
	// KindSeries is a dense ordered numeric series, most recent last
	// (FRED-style series APIs).
	KindSeries SeriesKind = "series"
	// KindPoints is a list of dated records in provider-native order,
	// commonly most recent first, possibly containing null values
	// (World Bank-style point-list APIs).
	KindPoints SeriesKind = "points"
)

// RawPoint is a single dated observation as delivered by a provider.
// Value is nil when the provider reported no value for the date.
type RawPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// RawSeries is the provider-shaped payload returned by an adapter.
// It is JSON-serializable so fetch results can be cached as-is.
type RawSeries struct {
	Kind   SeriesKind `json:"kind"`
	Points []RawPoint `json:"points"`
}

// Empty reports whether the payload carries no observations at all.
// Adapters degrade every upstream failure to an empty payload, so an
// empty RawSeries is a normal, handled state rather than an error.
func (r RawSeries) Empty() bool { return len(r.Points) == 0 }

// Observation is one canonical (timestamp, value) pair.
type Observation struct {
	Time  time.Time
	Value float64
}

// Series is the canonical, provider-agnostic time-series
// representation: observations strictly ordered most-recent-first,
// null and non-finite values excluded, no duplicate timestamps.
// It is never mutated after construction.
type Series struct {
	Kind SeriesKind
	// HeadMissing is set for points-shaped input when the provider's
	// newest record carried no usable value. "current" is defined
	// strictly as the record at native index 0, so a missing head makes
	// the whole metrics record unavailable even when older records
	// still hold values.
	HeadMissing  bool
	Observations []Observation
}
