// Package usecase は経済指標メトリクスエンジンのビジネスロジックを実装します。
package usecase

import (
	"math"
	"time"

	"econ_backend/internal/feature/indicators/domain/entity"
)

// dateLayouts は上流プロバイダが返す日付表現のバリエーションです。
// FREDは日次粒度（"2024-05-01"）、世界銀行は年次（"2023"）または
// 月次（"2024M05"相当の"2024-05"）で返します。
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// parseDate は既知のレイアウトで日付文字列のパースを試みます。
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Normalize はプロバイダ形状の生データを正規系列に変換します。
// 系列型の入力は逆順（最新が先頭）に並べ替え、レコードリスト型の入力は
// プロバイダの並び順を保ちます。欠損値・非有限値・日付不明・重複タイム
// スタンプの観測は除外されます。空または全欠損の入力は空の正規系列に
// なり、これはエラーではなく正常な状態です。入力は変更されません。
func Normalize(raw entity.RawSeries) entity.Series {
	s := entity.Series{Kind: raw.Kind}
	if raw.Empty() {
		return s
	}

	seen := make(map[time.Time]struct{}, len(raw.Points))

	// keep は1レコードを検証して正規系列に追加します。除外した場合はfalseを返します。
	keep := func(p entity.RawPoint) bool {
		if p.Value == nil {
			return false
		}
		v := *p.Value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		t, ok := parseDate(p.Date)
		if !ok {
			return false
		}
		if _, dup := seen[t]; dup {
			return false
		}
		seen[t] = struct{}{}
		s.Observations = append(s.Observations, entity.Observation{Time: t, Value: v})
		return true
	}

	switch raw.Kind {
	case entity.KindSeries:
		// 最新が末尾で届くため、逆順に読んで最新を先頭にする
		for i := len(raw.Points) - 1; i >= 0; i-- {
			keep(raw.Points[i])
		}
	default:
		// プロバイダの並び順（通常は最新が先頭）をそのまま保つ。
		// 先頭レコードが値を持たない場合はcurrent候補の欠損として記録する。
		for i, p := range raw.Points {
			if kept := keep(p); i == 0 && !kept {
				s.HeadMissing = true
			}
		}
	}

	return s
}
