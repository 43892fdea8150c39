package entity

// Metrics is the derived comparison record for one indicator.
// Pointer fields are nil when their reference point is unavailable.
// Percentages against a zero reference are defined as exactly 0 so the
// record stays well-formed (never Inf or NaN).
type Metrics struct {
	Current   float64
	Previous  *float64
	YearAgo   *float64
	MoMChange *float64
	MoMPct    *float64
	YoYChange *float64
	YoYPct    *float64
}

// Direction classifies the sign of a delta for display.
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionFlat    Direction = "flat"
	DirectionUnknown Direction = "unknown"
)

// Change is a directional classification of a signed delta.
// Magnitude is the absolute delta, nil when the delta itself is absent.
type Change struct {
	Direction Direction
	Magnitude *float64
}

// IndicatorMetrics is the engine's output for one (country, indicator)
// pair, handed to the presentation layer. Metrics is nil when no data
// is available; the MoM/YoY classifications are always populated
// (direction "unknown" when the underlying delta is absent).
type IndicatorMetrics struct {
	Country string
	Code    string
	Name    string
	Metrics *Metrics
	MoM     Change
	YoY     Change
}
