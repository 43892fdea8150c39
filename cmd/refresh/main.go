package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"econ_backend/internal/app/di"
	catalogadapters "econ_backend/internal/feature/catalog/adapters"
	"econ_backend/internal/feature/indicators/usecase"
	infradb "econ_backend/internal/platform/db"
	infraredis "econ_backend/internal/platform/redis"
	"econ_backend/internal/shared/ratelimiter"
)

// refreshはカタログ全指標のメトリクスを順に計算し、共有キャッシュを温める
// バッチです。Redisなしでも動きますが、その場合キャッシュはプロセス内に
// 閉じるため温め効果はありません。
func main() {
	_ = godotenv.Load()

	db := infradb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable, refresh will not populate a shared cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	indicatorRepo := catalogadapters.NewIndicatorRepository(db)
	metricsUC := di.NewMetricsUsecase(rdb)
	rl := ratelimiter.NewRateLimiter(60, time.Minute)
	uc := usecase.NewRefreshUsecase(metricsUC, rl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	indicators, err := indicatorRepo.ListActive(ctx)
	if err != nil {
		log.Fatal("failed to load indicators:", err)
	}

	uc.RefreshAll(ctx, indicators)
	log.Println("refresh ok")
}
