package router

import (
	cataloghandler "econ_backend/internal/feature/catalog/transport/handler"
	indicatorshandler "econ_backend/internal/feature/indicators/transport/handler"
	"econ_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter はすべてのHTTPルートを登録したginエンジンを返します。
func NewRouter(catalog *cataloghandler.CatalogHandler, metrics *indicatorshandler.MetricsHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		// カタログ参照
		api.GET("/countries", catalog.ListCountries)
		api.GET("/countries/:country/indicators", catalog.ListIndicators)

		// メトリクス
		api.GET("/countries/:country/metrics", metrics.GetCountryMetrics)
		api.GET("/countries/:country/metrics/:code", metrics.GetIndicatorMetrics)
		api.GET("/countries/:country/export", metrics.ExportCSV)
	}

	return r
}
