package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiterは、外部API呼び出しの頻度を固定ウィンドウで制限します。
// 複数のHTTPリクエストから同一インスタンスが共有されるため、
// 内部状態はミューテックスで保護します。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // intervalあたりの上限回数
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeededはレートリミットの上限に達しているかを確認し、必要であれば
// ウィンドウが切り替わるまで待機します。待機中はロックを手放し、
// 起床後に再判定します。
func (rl *RateLimiter) WaitIfNeeded() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for {
		now := time.Now()
		// interval を過ぎたらカウントリセット
		if now.Sub(rl.lastReset) >= rl.interval {
			rl.count = 0
			rl.lastReset = now
		}

		if rl.count < rl.limit {
			rl.count++
			return
		}

		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep <= 0 {
			continue
		}
		slog.Info("rate limit reached, sleeping", "limit", rl.limit, "sleep", sleep)
		rl.mu.Unlock()
		time.Sleep(sleep)
		rl.mu.Lock()
	}
}
