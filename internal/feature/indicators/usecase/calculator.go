package usecase

import (
	"econ_backend/internal/feature/indicators/domain/entity"
)

// yearAgoIndex は系列型入力で「約1年前」とみなす添字です（12番目に新しい観測）。
const yearAgoIndex = 11

// Compute は正規系列からMoM/YoYの比較メトリクスを導出します。
// 系列が空、または最新値が欠損している場合はnil（データなし）を返します。
//
// 参照点の選び方は入力形状ごとに異なります:
//   - 系列型: 位置ベース。1期前は添字1、約1年前は添字11（観測が12件以上ある場合のみ）。
//   - レコードリスト型: 欠損スキップベース。currentは先頭レコードに固定し、
//     previousは先頭より後で最初に値を持つ観測、year_agoは先頭から走査して
//     最初に値を持つ観測。
//
// 2つのプロバイダのサンプリング保証が異なるため、この非対称は仕様であり
// 1つのルールに統合してはいけません。
func Compute(s entity.Series) *entity.Metrics {
	if len(s.Observations) == 0 || s.HeadMissing {
		return nil
	}

	current := s.Observations[0].Value
	m := &entity.Metrics{Current: current}

	var previous, yearAgo *float64
	switch s.Kind {
	case entity.KindSeries:
		if len(s.Observations) >= 2 {
			v := s.Observations[1].Value
			previous = &v
		}
		if len(s.Observations) > yearAgoIndex {
			v := s.Observations[yearAgoIndex].Value
			yearAgo = &v
		}
	default:
		// 正規化で欠損は除外済みなので、添字1が「先頭より後で最初に値を持つ観測」になる
		if len(s.Observations) >= 2 {
			v := s.Observations[1].Value
			previous = &v
		}
		v := s.Observations[0].Value
		yearAgo = &v
	}

	if previous != nil {
		m.Previous = previous
		change := current - *previous
		pct := pctChange(current, *previous)
		m.MoMChange = &change
		m.MoMPct = &pct
	}
	if yearAgo != nil {
		m.YearAgo = yearAgo
		change := current - *yearAgo
		pct := pctChange(current, *yearAgo)
		m.YoYChange = &change
		m.YoYPct = &pct
	}

	return m
}

// pctChange は参照値に対する変化率（%）を返します。
// 参照値が0のときは未定義（Inf/NaN）にせず、明示的に0%と定義します。
func pctChange(current, ref float64) float64 {
	if ref == 0 {
		return 0
	}
	return (current - ref) / ref * 100
}
