package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	catalogentity "econ_backend/internal/feature/catalog/domain/entity"
	"econ_backend/internal/feature/indicators/domain/entity"
)

// DefaultYearsBack は系列型プロバイダへ問い合わせるデフォルトの遡及年数です。
const DefaultYearsBack = 3

// SeriesSource は順序付き数値系列型のプロバイダ（FREDなど）を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesSource interface {
	FetchSeries(ctx context.Context, seriesID string, start, end time.Time) (entity.RawSeries, error)
}

// PointSource は{date, value}レコードリスト型のプロバイダ（世界銀行など）を抽象化します。
type PointSource interface {
	FetchPoints(ctx context.Context, countryCode, indicatorCode string) (entity.RawSeries, error)
}

// FetchCache は取得結果のメモ化を抽象化します。fetchは能力として渡される
// ため、キャッシュ自体は特定のプロバイダに依存せず独立にテストできます。
type FetchCache interface {
	GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (entity.RawSeries, error)) (entity.RawSeries, error)
}

// MetricsUsecase は指標メトリクス計算のユースケースを定義します。
// 1指標あたりのパイプラインは 取得 → 正規化 → 算出 → 分類 の直列処理です。
type MetricsUsecase struct {
	series    SeriesSource
	points    PointSource
	cache     FetchCache
	yearsBack int
	now       func() time.Time
}

// NewMetricsUsecase はMetricsUsecaseの新しいインスタンスを生成します。
// yearsBackが0以下の場合はDefaultYearsBackを使用します。
func NewMetricsUsecase(series SeriesSource, points PointSource, cache FetchCache, yearsBack int) *MetricsUsecase {
	if yearsBack <= 0 {
		yearsBack = DefaultYearsBack
	}
	return &MetricsUsecase{
		series:    series,
		points:    points,
		cache:     cache,
		yearsBack: yearsBack,
		now:       time.Now,
	}
}

// GetMetrics は1つの指標のメトリクスを計算します。
// 上流の失敗（タイムアウト、不正ステータス、不正ペイロード、未設定の資格
// 情報）はすべて「データなし」に縮退させ、エラーとしては返しません。
// 1つの指標の欠落が他の指標の計算を妨げてはならないためです。
func (u *MetricsUsecase) GetMetrics(ctx context.Context, ind catalogentity.Indicator) entity.IndicatorMetrics {
	raw, err := u.cache.GetOrFetch(ctx, u.cacheKey(ind), func(ctx context.Context) (entity.RawSeries, error) {
		return u.fetch(ctx, ind)
	})
	if err != nil {
		slog.Warn("indicator fetch failed",
			"country", ind.Country, "indicator", ind.Code, "error", err)
		raw = entity.RawSeries{}
	}

	out := entity.IndicatorMetrics{
		Country: ind.Country,
		Code:    ind.Code,
		Name:    ind.Name,
		Metrics: Compute(Normalize(raw)),
	}
	if out.Metrics != nil {
		out.MoM = Classify(out.Metrics.MoMChange)
		out.YoY = Classify(out.Metrics.YoYChange)
	} else {
		out.MoM = Classify(nil)
		out.YoY = Classify(nil)
	}
	return out
}

// GetBatch は複数指標のメトリクスを並列に計算します。
// 各指標は自身のキャッシュエントリにのみ書き込むため共有可変状態はなく、
// 1つの指標の失敗が他をブロックしたり壊したりすることはありません。
func (u *MetricsUsecase) GetBatch(ctx context.Context, inds []catalogentity.Indicator) []entity.IndicatorMetrics {
	out := make([]entity.IndicatorMetrics, len(inds))
	var wg sync.WaitGroup
	for i, ind := range inds {
		wg.Add(1)
		go func(i int, ind catalogentity.Indicator) {
			defer wg.Done()
			out[i] = u.GetMetrics(ctx, ind)
		}(i, ind)
	}
	wg.Wait()
	return out
}

// fetch はプロバイダ種別に応じたアダプタに取得を委譲します。
func (u *MetricsUsecase) fetch(ctx context.Context, ind catalogentity.Indicator) (entity.RawSeries, error) {
	switch ind.Provider {
	case catalogentity.ProviderSeriesAPI:
		end := u.now()
		start := end.AddDate(-u.yearsBack, 0, 0)
		return u.series.FetchSeries(ctx, ind.SeriesID, start, end)
	case catalogentity.ProviderPointListAPI:
		return u.points.FetchPoints(ctx, ind.CountryCode, ind.IndicatorID)
	default:
		return entity.RawSeries{}, fmt.Errorf("unknown provider kind %q", ind.Provider)
	}
}

// cacheKey はリクエストの同一性（プロバイダ種別, 識別子, 取得範囲）から
// キャッシュキーを生成します。
func (u *MetricsUsecase) cacheKey(ind catalogentity.Indicator) string {
	switch ind.Provider {
	case catalogentity.ProviderSeriesAPI:
		end := u.now()
		start := end.AddDate(-u.yearsBack, 0, 0)
		return fmt.Sprintf("%s:%s:%s:%s",
			ind.Provider, ind.SeriesID,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	case catalogentity.ProviderPointListAPI:
		return fmt.Sprintf("%s:%s:%s", ind.Provider, ind.CountryCode, ind.IndicatorID)
	default:
		return fmt.Sprintf("%s:%s:%s", ind.Provider, ind.Country, ind.Code)
	}
}
