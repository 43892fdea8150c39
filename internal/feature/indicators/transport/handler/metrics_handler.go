// Package handler はindicatorsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	catalogentity "econ_backend/internal/feature/catalog/domain/entity"
	catalogusecase "econ_backend/internal/feature/catalog/usecase"
	"econ_backend/internal/feature/indicators/domain/entity"
	"econ_backend/internal/feature/indicators/transport/http/dto"
)

// MetricsUsecase はメトリクス計算ユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MetricsUsecase interface {
	GetMetrics(ctx context.Context, ind catalogentity.Indicator) entity.IndicatorMetrics
	GetBatch(ctx context.Context, inds []catalogentity.Indicator) []entity.IndicatorMetrics
}

// CatalogUsecase はメトリクスAPIが必要とするカタログ参照のインターフェースです。
type CatalogUsecase interface {
	ListByCountry(ctx context.Context, country string) ([]catalogentity.Indicator, error)
	Find(ctx context.Context, country, code string) (catalogentity.Indicator, error)
}

// MetricsHandler は指標メトリクスに関するHTTPリクエストを処理します。
type MetricsHandler struct {
	metrics MetricsUsecase
	catalog CatalogUsecase
	now     func() time.Time
}

// NewMetricsHandler は新しい MetricsHandler を作成します。
func NewMetricsHandler(metrics MetricsUsecase, catalog CatalogUsecase) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, catalog: catalog, now: time.Now}
}

// GetCountryMetrics は指定された国の全指標メトリクスを取得するAPIです。
// 指標ごとの上流障害はレスポンス内で available=false として表現され、
// リクエスト全体は失敗しません。
func (h *MetricsHandler) GetCountryMetrics(c *gin.Context) {
	country := c.Param("country")

	inds, err := h.catalog.ListByCountry(c.Request.Context(), country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(inds) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown country: " + country})
		return
	}

	results := h.metrics.GetBatch(c.Request.Context(), inds)
	out := make([]dto.MetricsResponse, 0, len(results))
	for _, m := range results {
		out = append(out, dto.FromIndicatorMetrics(m))
	}
	c.JSON(http.StatusOK, out)
}

// GetIndicatorMetrics は1つの(国, 指標)のメトリクスを取得するAPIです。
func (h *MetricsHandler) GetIndicatorMetrics(c *gin.Context) {
	country := c.Param("country")
	code := c.Param("code")

	ind, err := h.catalog.Find(c.Request.Context(), country, code)
	if err != nil {
		if errors.Is(err, catalogusecase.ErrIndicatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown indicator: " + country + "/" + code})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromIndicatorMetrics(h.metrics.GetMetrics(c.Request.Context(), ind)))
}

// csvHeader はエクスポートの列構成です。列順はダウンストリームの
// スプレッドシート利用者と合意済みのため変更しないこと。
var csvHeader = []string{
	"Indicator", "Current", "Previous", "MoM Change", "MoM %",
	"Year Ago", "YoY Change", "YoY %",
}

// ExportCSV は指定された国の全指標メトリクスをCSVファイルとして返すAPIです。
// データのない指標は値列が "N/A" の行になります。
func (h *MetricsHandler) ExportCSV(c *gin.Context) {
	country := c.Param("country")

	inds, err := h.catalog.ListByCountry(c.Request.Context(), country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(inds) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown country: " + country})
		return
	}

	results := h.metrics.GetBatch(c.Request.Context(), inds)

	filename := fmt.Sprintf("%s_economic_data_%s.csv", country, h.now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(csvHeader)
	for _, m := range results {
		_ = w.Write(csvRow(m))
	}
	w.Flush()
}

// csvRow は1指標分のメトリクスをCSV行に変換します。
func csvRow(m entity.IndicatorMetrics) []string {
	if m.Metrics == nil {
		return []string{m.Name, "N/A", "N/A", "N/A", "N/A", "N/A", "N/A", "N/A"}
	}
	return []string{
		m.Name,
		fmt.Sprintf("%.2f", m.Metrics.Current),
		formatCSV(m.Metrics.Previous),
		formatCSV(m.Metrics.MoMChange),
		formatCSV(m.Metrics.MoMPct),
		formatCSV(m.Metrics.YearAgo),
		formatCSV(m.Metrics.YoYChange),
		formatCSV(m.Metrics.YoYPct),
	}
}

func formatCSV(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}
