// Package db は指標カタログ用のGORM接続を提供します。
package db

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"econ_backend/internal/feature/catalog/domain/entity"
)

// DefaultDBPath はCATALOG_DB_PATH未設定時のSQLiteファイルです。
const DefaultDBPath = "econ.db"

// OpenDB はカタログDBを開き、マイグレーションを実行します。
// カタログはプロセスローカルな参照データなのでSQLiteで十分です。
func OpenDB() *gorm.DB {
	path := os.Getenv("CATALOG_DB_PATH")
	if path == "" {
		path = DefaultDBPath
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB open failed: %v", err)
	}

	// マイグレーション（Indicator）
	if err := db.AutoMigrate(&entity.Indicator{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
