// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"econ_backend/internal/feature/indicators/usecase"
	"econ_backend/internal/platform/cache"
	"econ_backend/internal/platform/externalapi/fred"
	"econ_backend/internal/platform/externalapi/worldbank"
	infrahttp "econ_backend/internal/platform/http"
)

// NewSeriesSource creates a fully configured FRED client with HTTP client.
func NewSeriesSource() *fred.FredSeries {
	cfg := fred.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return fred.NewFredSeries(cfg, httpClient)
}

// NewPointSource creates a fully configured World Bank client with HTTP client.
func NewPointSource() *worldbank.WorldBankPoints {
	cfg := worldbank.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return worldbank.NewWorldBankPoints(cfg, httpClient)
}

// NewMetricsUsecase wires the metrics pipeline with its series cache.
// rdb may be nil, in which case the cache falls back to an in-process map.
func NewMetricsUsecase(rdb *redis.Client) *usecase.MetricsUsecase {
	seriesCache := cache.NewSeriesCache(rdb, time.Hour, "indicators")
	return usecase.NewMetricsUsecase(NewSeriesSource(), NewPointSource(), seriesCache, usecase.DefaultYearsBack)
}
