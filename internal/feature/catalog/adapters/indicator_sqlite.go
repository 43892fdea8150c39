// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"econ_backend/internal/feature/catalog/domain/entity"
	"econ_backend/internal/feature/catalog/usecase"
)

// indicatorSQLite はIndicatorRepositoryインターフェースのSQLite実装です。
type indicatorSQLite struct {
	db *gorm.DB
}

var _ usecase.IndicatorRepository = (*indicatorSQLite)(nil)

// NewIndicatorRepository は指定されたDB接続でindicatorSQLiteリポジトリの新しいインスタンスを生成します。
func NewIndicatorRepository(db *gorm.DB) *indicatorSQLite {
	return &indicatorSQLite{db: db}
}

// ListActive はsort_key順にすべてのアクティブな指標を返します。
func (r *indicatorSQLite) ListActive(ctx context.Context) ([]entity.Indicator, error) {
	var indicators []entity.Indicator
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&indicators).Error; err != nil {
		return nil, err
	}
	return indicators, nil
}

// ListActiveByCountry は指定された国のアクティブな指標をsort_key順に返します。
func (r *indicatorSQLite) ListActiveByCountry(ctx context.Context, country string) ([]entity.Indicator, error) {
	var indicators []entity.Indicator
	if err := r.db.WithContext(ctx).
		Where("country = ? AND is_active = ?", country, true).
		Order("sort_key ASC").
		Find(&indicators).Error; err != nil {
		return nil, err
	}
	return indicators, nil
}

// ListCountries はアクティブな指標を持つ国名を重複なしで返します。
// 表示順はカタログの並び（各国の最小sort_key）に従います。
func (r *indicatorSQLite) ListCountries(ctx context.Context) ([]string, error) {
	var countries []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Indicator{}).
		Where("is_active = ?", true).
		Group("country").
		Order("MIN(sort_key) ASC").
		Pluck("country", &countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// FindActive は(国, 指標コード)に一致するアクティブな指標を1件返します。
// 見つからない場合はErrIndicatorNotFoundを返します。
func (r *indicatorSQLite) FindActive(ctx context.Context, country, code string) (entity.Indicator, error) {
	var indicator entity.Indicator
	err := r.db.WithContext(ctx).
		Where("country = ? AND code = ? AND is_active = ?", country, code, true).
		First(&indicator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Indicator{}, usecase.ErrIndicatorNotFound
		}
		return entity.Indicator{}, err
	}
	return indicator, nil
}
