package router

import (
	charthandler "stock_charts/internal/feature/chart/transport/handler"
	symbollisthandler "stock_charts/internal/feature/symbollist/transport/handler"
	"stock_charts/internal/interface/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(chart *charthandler.ChartHandler, symbol *symbollisthandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)
	// チャートフォームで選択可能な銘柄一覧
	r.GET("/symbols", symbol.List)
	// フォーム送信からチャート仕様を生成
	r.POST("/chart", chart.BuildChartHandler)

	return r
}
