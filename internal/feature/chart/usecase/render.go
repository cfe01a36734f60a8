package usecase

import (
	"fmt"

	"stock_charts/internal/feature/chart/domain/entity"
)

// datasetColors はOHLCデータセットごとの固定色です（Chart.jsのRGBA表記）。
var datasetColors = []struct {
	label  string
	border string
	fill   string
}{
	{"Open", "rgba(255,99,132,1)", "rgba(255,99,132,0.25)"},
	{"High", "rgba(54,162,235,1)", "rgba(54,162,235,0.25)"},
	{"Low", "rgba(75,192,192,1)", "rgba(75,192,192,0.25)"},
	{"Close", "rgba(255,206,86,1)", "rgba(255,206,86,0.25)"},
}

// Render はFormattedSeriesからクライアント側チャートライブラリ向けの宣言的な
// チャート仕様を生成します。シリーズが空の場合はnilを返します。
// この関数は純粋な変換であり、描画は行いません。
func Render(series entity.FormattedSeries, symbol string, chartKind int, startLabel, endLabel string) *entity.ChartSpec {
	if series.IsEmpty() {
		return nil
	}

	chartType := "line"
	if chartKind == ChartKindBar {
		chartType = "bar"
	}

	// OHLCの4フィールドに対して1データセットずつ生成する
	values := [][]float64{series.Opens, series.Highs, series.Lows, series.Closes}
	datasets := make([]entity.Dataset, 0, len(datasetColors))
	for i, c := range datasetColors {
		datasets = append(datasets, entity.Dataset{
			Label:           c.label,
			Data:            values[i],
			BorderColor:     c.border,
			BackgroundColor: c.fill,
			Fill:            false,
		})
	}

	return &entity.ChartSpec{
		Type: chartType,
		Data: entity.ChartData{Labels: series.Dates, Datasets: datasets},
		Options: entity.ChartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
			Scales: entity.ChartScales{
				Y: entity.ValueAxis{
					BeginAtZero: false,
					Title:       entity.AxisTitle{Display: true, Text: "Price ($)"},
				},
				X: entity.CategoryAxis{
					Title: entity.AxisTitle{Display: true, Text: "Date"},
					Ticks: entity.AxisTicks{MaxRotation: 45, MinRotation: 45},
				},
			},
			Plugins: entity.ChartPlugins{
				Legend: entity.ChartLegend{Display: true, Position: "top"},
				Title: entity.ChartTitle{
					Display: true,
					Text:    fmt.Sprintf("Stock Data for %s: %s to %s", symbol, startLabel, endLabel),
				},
			},
		},
	}
}
