package usecase

import (
	"context"
	"log/slog"

	catalogentity "econ_backend/internal/feature/catalog/domain/entity"
	"econ_backend/internal/feature/indicators/domain/entity"
	"econ_backend/internal/shared/ratelimiter"
)

// IndicatorMetricsGetter は1指標分のメトリクス計算を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type IndicatorMetricsGetter interface {
	GetMetrics(ctx context.Context, ind catalogentity.Indicator) entity.IndicatorMetrics
}

// RefreshUsecase はカタログ全指標のキャッシュを温めるユースケースを定義します。
// 上流APIのレートリミットを考慮して、リクエスト間に適切な待機時間を設けます。
type RefreshUsecase struct {
	metrics     IndicatorMetricsGetter
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewRefreshUsecase は新しい RefreshUsecase を作成します。
func NewRefreshUsecase(metrics IndicatorMetricsGetter, rl ratelimiter.RateLimiterInterface) *RefreshUsecase {
	return &RefreshUsecase{metrics: metrics, rateLimiter: rl}
}

// RefreshAll は指定された全指標のメトリクスを順に計算し、取得結果を
// キャッシュに載せます。1つの指標でデータが得られなくても処理を止めず、
// ログに出力して次の指標へ進みます。
func (ru *RefreshUsecase) RefreshAll(ctx context.Context, inds []catalogentity.Indicator) {
	for _, ind := range inds {
		ru.rateLimiter.WaitIfNeeded()

		res := ru.metrics.GetMetrics(ctx, ind)
		if res.Metrics == nil {
			slog.Warn("no data for indicator", "country", ind.Country, "indicator", ind.Code)
			continue
		}
		slog.Info("refreshed indicator",
			"country", ind.Country, "indicator", ind.Code, "current", res.Metrics.Current)
	}
}
