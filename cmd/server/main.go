package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_charts/internal/app/di"
	"stock_charts/internal/app/router"
	charthandler "stock_charts/internal/feature/chart/transport/handler"
	chartusecase "stock_charts/internal/feature/chart/usecase"
	symbollistadapters "stock_charts/internal/feature/symbollist/adapters"
	symbollisthandler "stock_charts/internal/feature/symbollist/transport/handler"
	symbollistusecase "stock_charts/internal/feature/symbollist/usecase"
	"stock_charts/internal/platform/cache"
	infraredis "stock_charts/internal/platform/redis"
)

func main() {
	// .envがあれば読み込む（なくてもエラーにしない）
	_ = godotenv.Load()

	// APIキーチェック（開発中の注意喚起）
	if os.Getenv("ALPHA_VANTAGE_API_KEY") == "" {
		log.Println("[WARN] ALPHA_VANTAGE_API_KEY is not set. Remote fetches will fail.")
	}

	// Redis（任意。使えない場合はキャッシュなしで動作する）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	market := di.NewMarket()
	csvPath := os.Getenv("SYMBOLS_CSV")
	if csvPath == "" {
		csvPath = "stocks.csv"
	}
	symbolRepo := symbollistadapters.NewSymbolRepository(csvPath)

	// Redisキャッシュでラップ
	cachedMarket := cache.NewCachingMarketRepository(rdb, 0, market, "timeseries")

	// Usecase
	chartUC := chartusecase.NewChartUsecase(cachedMarket)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)

	// Handler
	chartH := charthandler.NewChartHandler(chartUC)
	symbolH := symbollisthandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	router := router.NewRouter(chartH, symbolH)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
