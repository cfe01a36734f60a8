// Package handler はchartフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_charts/internal/api"
	"stock_charts/internal/feature/chart/domain/entity"
	"stock_charts/internal/feature/chart/transport/http/dto"
	"stock_charts/internal/feature/chart/usecase"
)

// ChartUsecase はチャート生成のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartUsecase interface {
	BuildChart(ctx context.Context, q usecase.ChartQuery) (*entity.ChartSpec, error)
}

// ChartHandler はチャート生成のHTTPリクエストを処理します。
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler は指定されたusecaseでChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// validationErrs は400として具体的なメッセージ付きで返す検証エラーの一覧です。
var validationErrs = []error{
	usecase.ErrSymbolRequired,
	usecase.ErrDatesRequired,
	usecase.ErrInvalidDateFormat,
	usecase.ErrInvalidGranularity,
	entity.ErrEndBeforeStart,
}

// BuildChartHandler はフォーム入力を受け取り、チャート仕様をJSONで返します。
//
// エンドポイント例:
// POST /chart (symbol, chart_type, time_series, start_date, end_date)
//
// ステータスコード:
//   - 400 入力検証エラー（具体的なメッセージ付き、ネットワーク呼び出しなし）
//   - 404 範囲内にデータなし（銘柄と範囲を含む警告）
//   - 502 外部APIからの取得失敗（原因はログのみ）
func (h *ChartHandler) BuildChartHandler(c *gin.Context) {
	var req dto.ChartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	// 銘柄コードはここで一度だけ大文字に正規化し、以降はq.Symbolを使う
	q := usecase.ChartQuery{
		Symbol:      strings.ToUpper(strings.TrimSpace(req.Symbol)),
		ChartKind:   req.ChartType,
		Granularity: entity.Granularity(req.TimeSeries),
		StartDate:   strings.TrimSpace(req.StartDate),
		EndDate:     strings.TrimSpace(req.EndDate),
	}

	chart, err := h.uc.BuildChart(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, q, err)
		return
	}

	points := len(chart.Data.Labels)
	c.JSON(http.StatusOK, dto.ChartResponse{
		Message: fmt.Sprintf("Successfully generated chart for %s with %d data points.", q.Symbol, points),
		Points:  points,
		Chart:   chart,
	})
}

// writeError はユースケースのエラーをHTTPステータスとメッセージに対応付けます。
func (h *ChartHandler) writeError(c *gin.Context, q usecase.ChartQuery, err error) {
	for _, ve := range validationErrs {
		if errors.Is(err, ve) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: ve.Error()})
			return
		}
	}
	if errors.Is(err, usecase.ErrNoData) {
		// 取得は成功したが範囲内にデータがない場合は、エラーではなく警告として扱う
		c.JSON(http.StatusNotFound, api.WarningResponse{
			Warning: fmt.Sprintf("No data found for %s in the date range %s to %s.",
				q.Symbol, q.StartDate, q.EndDate),
		})
		return
	}
	if errors.Is(err, usecase.ErrRenderFailed) {
		slog.Error("chart rendering failed", "symbol", q.Symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: usecase.ErrRenderFailed.Error()})
		return
	}
	// 外部APIの失敗。詳細はログに残し、ユーザーには汎用メッセージのみ返す
	slog.Warn("stock data fetch failed", "symbol", q.Symbol, "error", err)
	c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to fetch stock data, please check the symbol and try again"})
}
