// Package usecase はチャート生成のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"

	"stock_charts/internal/feature/chart/domain/entity"
)

// ChartKindBar はバーチャートを示すフォーム値です。それ以外の値はラインチャートになります。
const ChartKindBar = 1

// MarketRepository は外部APIから株価時系列データを取得するリポジトリのインターフェイスです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	FetchTimeSeries(ctx context.Context, symbol string, g entity.Granularity) (entity.RawResponse, error)
}

// ChartQuery はフォームから送信されたチャート生成リクエストです。
type ChartQuery struct {
	Symbol      string
	ChartKind   int
	Granularity entity.Granularity
	StartDate   string
	EndDate     string
}

// chartUsecase はチャート生成のユースケースを定義します。
type chartUsecase struct {
	market MarketRepository
}

// NewChartUsecase はchartUsecaseの新しいインスタンスを生成します。
func NewChartUsecase(market MarketRepository) *chartUsecase {
	return &chartUsecase{market: market}
}

// BuildChart は入力を検証し、外部APIから時系列データを取得して日付範囲で絞り込み、
// チャート仕様を生成します。検証エラーの場合はネットワーク呼び出しを行いません。
// 範囲内にデータが1件もない場合はErrNoDataを返します（取得失敗とは区別されます）。
func (cu *chartUsecase) BuildChart(ctx context.Context, q ChartQuery) (*entity.ChartSpec, error) {
	// 銘柄コードは大文字に正規化する
	symbol := strings.ToUpper(strings.TrimSpace(q.Symbol))
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	if !q.Granularity.Valid() {
		return nil, ErrInvalidGranularity
	}
	startDate := strings.TrimSpace(q.StartDate)
	endDate := strings.TrimSpace(q.EndDate)
	if startDate == "" || endDate == "" {
		return nil, ErrDatesRequired
	}

	start, err := entity.ParseDate(startDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := entity.ParseDate(endDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	r, err := entity.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	raw, err := cu.market.FetchTimeSeries(ctx, symbol, q.Granularity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	series, err := Process(raw, q.Granularity, r)
	if err != nil {
		// ペイロード不正も取得失敗として扱う
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if series.IsEmpty() {
		return nil, ErrNoData
	}

	chart := Render(series, symbol, q.ChartKind, startDate, endDate)
	if chart == nil {
		// 非空データから仕様を生成できないのは防御的な分岐で、通常は到達しません
		return nil, ErrRenderFailed
	}
	return chart, nil
}
