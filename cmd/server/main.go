package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"econ_backend/internal/app/di"
	"econ_backend/internal/app/router"
	catalogadapters "econ_backend/internal/feature/catalog/adapters"
	cataloghandler "econ_backend/internal/feature/catalog/transport/handler"
	catalogusecase "econ_backend/internal/feature/catalog/usecase"
	indicatorshandler "econ_backend/internal/feature/indicators/transport/handler"
	infradb "econ_backend/internal/platform/db"
	infraredis "econ_backend/internal/platform/redis"
)

func main() {
	// .envは開発時のみ存在する
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis（キャッシュ専用。接続できない場合はプロセス内キャッシュで継続）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, using in-process cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// カタログ投入（初回起動時のみ）
	seedPath := os.Getenv("CATALOG_SEED_PATH")
	if seedPath == "" {
		seedPath = "config/indicators.yaml"
	}
	if indicators, err := catalogadapters.LoadSeedFile(seedPath); err != nil {
		slog.Warn("catalog seed file not loaded", "path", seedPath, "error", err)
	} else if err := catalogadapters.SeedIfEmpty(context.Background(), db, indicators); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	// Repository
	indicatorRepo := catalogadapters.NewIndicatorRepository(db)

	// Usecase
	catalogUC := catalogusecase.NewCatalogUsecase(indicatorRepo)
	metricsUC := di.NewMetricsUsecase(rdb)

	// Handler
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	metricsH := indicatorshandler.NewMetricsHandler(metricsUC, catalogUC)

	// ルータ生成
	r := router.NewRouter(catalogH, metricsH)

	// FRED_API_KEYチェック（開発中の注意喚起。無くても起動はする）
	if os.Getenv("FRED_API_KEY") == "" {
		slog.Warn("FRED_API_KEY is not set, series-api indicators will report no data")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
