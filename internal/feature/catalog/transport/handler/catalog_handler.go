// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"econ_backend/internal/feature/catalog/domain/entity"
	"econ_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase はカタログ参照ユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	ListCountries(ctx context.Context) ([]string, error)
	ListByCountry(ctx context.Context, country string) ([]entity.Indicator, error)
}

// CatalogHandler はカタログに関するHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCountries はアクティブな指標を持つ国の一覧を取得するAPIです。
func (h *CatalogHandler) ListCountries(c *gin.Context) {
	countries, err := h.uc.ListCountries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// ListIndicators は指定された国のアクティブな指標一覧を取得するAPIです。
// 未知の国は空ではなく404を返します。
func (h *CatalogHandler) ListIndicators(c *gin.Context) {
	country := c.Param("country")

	indicators, err := h.uc.ListByCountry(c.Request.Context(), country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(indicators) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown country: " + country})
		return
	}

	out := make([]dto.IndicatorItem, 0, len(indicators))
	for _, ind := range indicators {
		out = append(out, dto.IndicatorItem{Code: ind.Code, Name: ind.Name, Provider: string(ind.Provider)})
	}
	c.JSON(http.StatusOK, out)
}
