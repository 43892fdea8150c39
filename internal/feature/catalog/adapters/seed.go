package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"econ_backend/internal/feature/catalog/domain/entity"
)

// seedEntry は指標定義ファイルの1エントリです。
type seedEntry struct {
	Country     string `yaml:"country"`
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Provider    string `yaml:"provider"`
	SeriesID    string `yaml:"series_id"`
	CountryCode string `yaml:"country_code"`
	IndicatorID string `yaml:"indicator_id"`
	SortKey     int    `yaml:"sort_key"`
}

type seedFile struct {
	Indicators []seedEntry `yaml:"indicators"`
}

// LoadSeedFile はYAMLの指標定義ファイルを読み込んで検証します。
func LoadSeedFile(path string) ([]entity.Indicator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	indicators := make([]entity.Indicator, 0, len(file.Indicators))
	for i, e := range file.Indicators {
		kind := entity.ProviderKind(e.Provider)
		if !kind.Valid() {
			return nil, fmt.Errorf("seed entry %d (%s/%s): unknown provider kind %q", i, e.Country, e.Code, e.Provider)
		}
		if e.Country == "" || e.Code == "" {
			return nil, fmt.Errorf("seed entry %d: country and code are required", i)
		}
		indicators = append(indicators, entity.Indicator{
			Country:     e.Country,
			Code:        e.Code,
			Name:        e.Name,
			Provider:    kind,
			SeriesID:    e.SeriesID,
			CountryCode: e.CountryCode,
			IndicatorID: e.IndicatorID,
			IsActive:    true,
			SortKey:     e.SortKey,
		})
	}
	return indicators, nil
}

// SeedIfEmpty はカタログが空の場合のみ指標定義を投入します。
// 既にデータがある場合は何もしません（運用中の編集を上書きしないため）。
func SeedIfEmpty(ctx context.Context, db *gorm.DB, indicators []entity.Indicator) error {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Indicator{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("catalog already seeded", "existing", count)
		return nil
	}
	if len(indicators) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Create(&indicators).Error; err != nil {
		return err
	}
	slog.Info("catalog seeded", "indicators", len(indicators))
	return nil
}
