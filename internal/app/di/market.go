// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"stock_charts/internal/platform/externalapi/alphavantage"
	infrahttp "stock_charts/internal/platform/http"
	"stock_charts/internal/shared/ratelimiter"
)

// Alpha Vantageの無料プランは1分あたり5リクエストまで。
const (
	requestsPerWindow = 5
	limiterWindow     = time.Minute
)

// NewMarket creates a fully configured AlphaVantageMarket with HTTP client
// and a client-side rate limiter sized for the free API tier.
func NewMarket() *alphavantage.AlphaVantageMarket {
	cfg := alphavantage.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(requestsPerWindow, limiterWindow)
	return alphavantage.NewAlphaVantageMarket(cfg, httpClient, limiter)
}
