package usecase

import (
	"math"
	"reflect"
	"testing"
	"time"

	"econ_backend/internal/feature/indicators/domain/entity"
)

// fp はテスト用にfloat64のポインタを返すヘルパーです。
func fp(v float64) *float64 { return &v }

// TestNormalize_SeriesReversed は系列型入力が最新先頭の順序に並べ替えられることを検証します。
func TestNormalize_SeriesReversed(t *testing.T) {
	t.Parallel()

	raw := entity.RawSeries{
		Kind: entity.KindSeries,
		Points: []entity.RawPoint{
			{Date: "2024-03-01", Value: fp(100)},
			{Date: "2024-04-01", Value: fp(102)},
			{Date: "2024-05-01", Value: fp(105)},
		},
	}

	s := Normalize(raw)

	if s.Kind != entity.KindSeries {
		t.Errorf("expected kind %q, got %q", entity.KindSeries, s.Kind)
	}
	if s.HeadMissing {
		t.Error("HeadMissing should not be set for series input")
	}
	if len(s.Observations) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(s.Observations))
	}
	if s.Observations[0].Value != 105 {
		t.Errorf("expected most recent value 105 first, got %f", s.Observations[0].Value)
	}
	if s.Observations[2].Value != 100 {
		t.Errorf("expected oldest value 100 last, got %f", s.Observations[2].Value)
	}
	if !s.Observations[0].Time.After(s.Observations[1].Time) {
		t.Error("observations should be ordered most-recent-first")
	}
}

// TestNormalize_PointsSkipsNulls はレコードリスト型入力で欠損値が除外され、
// 先頭レコードの欠損がHeadMissingとして記録されることを検証します。
func TestNormalize_PointsSkipsNulls(t *testing.T) {
	t.Parallel()

	raw := entity.RawSeries{
		Kind: entity.KindPoints,
		Points: []entity.RawPoint{
			{Date: "2024-06", Value: nil},
			{Date: "2024-05", Value: fp(50)},
			{Date: "2023-05", Value: fp(45)},
		},
	}

	s := Normalize(raw)

	if !s.HeadMissing {
		t.Error("expected HeadMissing when the newest record has no value")
	}
	if len(s.Observations) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(s.Observations))
	}
	if s.Observations[0].Value != 50 || s.Observations[1].Value != 45 {
		t.Errorf("unexpected observations: %+v", s.Observations)
	}
}

// TestNormalize_EmptyAndAllNull は空入力と全欠損入力が空の正規系列になることを検証します。
func TestNormalize_EmptyAndAllNull(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         entity.RawSeries
		headMissing bool
	}{
		{
			name: "empty series input",
			raw:  entity.RawSeries{Kind: entity.KindSeries},
		},
		{
			name: "empty point-list input",
			raw:  entity.RawSeries{Kind: entity.KindPoints},
		},
		{
			name: "fully-null point-list input",
			raw: entity.RawSeries{
				Kind: entity.KindPoints,
				Points: []entity.RawPoint{
					{Date: "2024", Value: nil},
					{Date: "2023", Value: nil},
				},
			},
			headMissing: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := Normalize(tt.raw)
			if len(s.Observations) != 0 {
				t.Errorf("expected empty canonical series, got %d observations", len(s.Observations))
			}
			if s.HeadMissing != tt.headMissing {
				t.Errorf("expected HeadMissing=%v, got %v", tt.headMissing, s.HeadMissing)
			}
		})
	}
}

// TestNormalize_Idempotent は同じ入力に対するNormalizeが同一の結果を返し、
// 入力を変更しないことを検証します。
func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	raw := entity.RawSeries{
		Kind: entity.KindPoints,
		Points: []entity.RawPoint{
			{Date: "2024", Value: fp(3.5)},
			{Date: "2023", Value: nil},
			{Date: "2022", Value: fp(6.1)},
		},
	}
	original := entity.RawSeries{
		Kind: entity.KindPoints,
		Points: []entity.RawPoint{
			{Date: "2024", Value: fp(3.5)},
			{Date: "2023", Value: nil},
			{Date: "2022", Value: fp(6.1)},
		},
	}

	first := Normalize(raw)
	second := Normalize(raw)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Normalize returned different results:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if !reflect.DeepEqual(raw.Kind, original.Kind) || len(raw.Points) != len(original.Points) {
		t.Error("Normalize mutated its input")
	}
	for i := range raw.Points {
		if raw.Points[i].Date != original.Points[i].Date {
			t.Error("Normalize mutated input dates")
		}
		if (raw.Points[i].Value == nil) != (original.Points[i].Value == nil) {
			t.Error("Normalize mutated input values")
		}
	}
}

// TestNormalize_DuplicateTimestamps は同一タイムスタンプの観測が1つに畳まれることを検証します。
func TestNormalize_DuplicateTimestamps(t *testing.T) {
	t.Parallel()

	raw := entity.RawSeries{
		Kind: entity.KindPoints,
		Points: []entity.RawPoint{
			{Date: "2024-05", Value: fp(50)},
			{Date: "2024-05", Value: fp(51)},
			{Date: "2024-04", Value: fp(49)},
		},
	}

	s := Normalize(raw)

	if len(s.Observations) != 2 {
		t.Fatalf("expected 2 observations after deduplication, got %d", len(s.Observations))
	}
	if s.Observations[0].Value != 50 {
		t.Errorf("expected first occurrence to win, got %f", s.Observations[0].Value)
	}
}

// TestNormalize_DateLayouts は年次・月次・日次の日付表現がすべてパースできることを検証します。
func TestNormalize_DateLayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date     string
		expected time.Time
	}{
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2023", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.date, func(t *testing.T) {
			t.Parallel()

			raw := entity.RawSeries{
				Kind:   entity.KindPoints,
				Points: []entity.RawPoint{{Date: tt.date, Value: fp(1)}},
			}
			s := Normalize(raw)
			if len(s.Observations) != 1 {
				t.Fatalf("expected 1 observation, got %d", len(s.Observations))
			}
			if !s.Observations[0].Time.Equal(tt.expected) {
				t.Errorf("expected time %v, got %v", tt.expected, s.Observations[0].Time)
			}
		})
	}
}

// TestNormalize_DropsUnusableRecords は非有限値や日付不明のレコードが除外されることを検証します。
func TestNormalize_DropsUnusableRecords(t *testing.T) {
	t.Parallel()

	raw := entity.RawSeries{
		Kind: entity.KindPoints,
		Points: []entity.RawPoint{
			{Date: "2024-05", Value: fp(50)},
			{Date: "2024-04", Value: fp(math.NaN())},
			{Date: "2024-03", Value: fp(math.Inf(1))},
			{Date: "not-a-date", Value: fp(42)},
		},
	}

	s := Normalize(raw)

	if len(s.Observations) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(s.Observations))
	}
	if s.Observations[0].Value != 50 {
		t.Errorf("expected 50, got %f", s.Observations[0].Value)
	}
}
