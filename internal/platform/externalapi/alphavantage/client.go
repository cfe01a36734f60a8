package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stock_charts/internal/feature/chart/domain/entity"
	"stock_charts/internal/feature/chart/usecase"
	"stock_charts/internal/platform/externalapi/alphavantage/dto"
	"stock_charts/internal/shared/ratelimiter"
)

// AlphaVantageMarket はAlpha Vantage外部APIから株価時系列データを取得するMarketRepository実装です。
type AlphaVantageMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// AlphaVantageMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*AlphaVantageMarket)(nil)

// NewAlphaVantageMarket は指定された設定とHTTPクライアントでAlphaVantageMarketの新しいインスタンスを生成します。
// limiterがnilの場合はレートリミットなしで動作します。
func NewAlphaVantageMarket(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *AlphaVantageMarket {
	return &AlphaVantageMarket{cfg: cfg, client: client, limiter: limiter}
}

// FetchTimeSeries はAlpha Vantage APIから時系列株価データを取得し、
// シリーズキーごとのRawSeriesとして返します。レスポンスにエラーメッセージまたは
// レートリミット通知のセンチネルキーが含まれる場合は失敗として扱います。
func (a *AlphaVantageMarket) FetchTimeSeries(ctx context.Context, symbol string, g entity.Granularity) (entity.RawResponse, error) {
	// 無料プランの呼び出し回数制限を超えないように必要に応じて待機
	if a.limiter != nil {
		a.limiter.WaitIfNeeded()
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("function", g.Function())
	q.Set("symbol", symbol)
	q.Set("apikey", a.cfg.APIKey)
	// 全履歴（最大20年分）を取得
	q.Set("outputsize", "full")
	// イントラデイのみ固定のintervalパラメータが必要
	if iv := g.Interval(); iv != "" {
		q.Set("interval", iv)
	}

	// URLを生成
	u := fmt.Sprintf("%s/query?%s", a.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	// トップレベルキーごとに生のJSONとしてデコード
	var body map[string]json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	// APIはエラーでも200を返すため、センチネルキーで判定する
	if raw, ok := body["Error Message"]; ok {
		return nil, fmt.Errorf("alphavantage: %s", sentinelText(raw))
	}
	if raw, ok := body["Note"]; ok {
		return nil, fmt.Errorf("alphavantage note: %s", sentinelText(raw))
	}

	// 既知のシリーズキーのみを取り出す（"Meta Data"などは無視する）
	out := entity.RawResponse{}
	for _, gr := range entity.Granularities() {
		raw, ok := body[gr.SeriesKey()]
		if !ok {
			continue
		}
		var series map[string]dto.Bar
		if err := json.Unmarshal(raw, &series); err != nil {
			return nil, fmt.Errorf("decode %q: %w", gr.SeriesKey(), err)
		}
		rs := make(entity.RawSeries, len(series))
		for ts, b := range series {
			rs[ts] = entity.RawBar{Open: b.Open, High: b.High, Low: b.Low, Close: b.Close}
		}
		out[gr.SeriesKey()] = rs
	}
	return out, nil
}

// sentinelText はセンチネルキーの値を文字列として取り出します。
func sentinelText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}
