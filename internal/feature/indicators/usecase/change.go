package usecase

import (
	"math"

	"econ_backend/internal/feature/indicators/domain/entity"
)

// Classify は符号付きの変化量を表示向けの方向分類に写像します。
// deltaがnilのときはunknown、ちょうど0のときはflat、それ以外は符号に
// 応じてup/downになります。純粋な全域関数であり、失敗しません。
func Classify(delta *float64) entity.Change {
	if delta == nil {
		return entity.Change{Direction: entity.DirectionUnknown}
	}

	mag := math.Abs(*delta)
	switch {
	case *delta > 0:
		return entity.Change{Direction: entity.DirectionUp, Magnitude: &mag}
	case *delta < 0:
		return entity.Change{Direction: entity.DirectionDown, Magnitude: &mag}
	default:
		return entity.Change{Direction: entity.DirectionFlat, Magnitude: &mag}
	}
}
