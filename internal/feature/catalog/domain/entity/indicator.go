// Package entity defines the domain models for the catalog feature.
package entity

import "time"

// ProviderKind は上流データプロバイダの種別です。種別ごとに取得方法と
// 比較メトリクスの参照ルールが異なります。
type ProviderKind string

const (
	// ProviderSeriesAPI は順序付き数値系列を返すプロバイダです（FREDなど）。
	ProviderSeriesAPI ProviderKind = "series-api"
	// ProviderPointListAPI は{date, value}レコードのリストを返すプロバイダです（世界銀行など）。
	ProviderPointListAPI ProviderKind = "point-list-api"
)

// Valid は既知のプロバイダ種別かどうかを返します。
func (k ProviderKind) Valid() bool {
	return k == ProviderSeriesAPI || k == ProviderPointListAPI
}

// Indicator は1つの（国, 指標）に対応する静的な設定エントリです。
// 起動時に一度だけロードされ、以後変更されません。
type Indicator struct {
	ID          uint         `gorm:"primaryKey"`
	Country     string       `gorm:"size:20;not null;uniqueIndex:idx_country_code"` // 表示上の国・地域名（例: "US", "Europe"）
	Code        string       `gorm:"size:50;not null;uniqueIndex:idx_country_code"` // 指標コード（例: "cpi"）
	Name        string       `gorm:"size:255;not null"`                             // 人間向けのラベル（例: "Consumer Price Index"）
	Provider    ProviderKind `gorm:"size:20;not null"`
	SeriesID    string       `gorm:"size:50"` // series-api用の系列ID（例: "CPIAUCSL"）
	CountryCode string       `gorm:"size:10"` // point-list-api用の国コード（例: "IND"）
	IndicatorID string       `gorm:"size:50"` // point-list-api用の指標コード（例: "FP.CPI.TOTL.ZG"）
	IsActive    bool         `gorm:"not null;default:true"`
	SortKey     int          `gorm:"not null;default:0"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime"`
}
