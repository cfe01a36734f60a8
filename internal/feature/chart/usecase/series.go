package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"stock_charts/internal/feature/chart/domain/entity"
)

// Process は生の時系列レスポンスから指定された粒度のシリーズを選択し、日付範囲
// （両端を含む）で絞り込み、日付昇順に並べ替えて平行配列に分解します。
// シリーズキーがレスポンスに存在しない場合や範囲内に1件も残らない場合は
// 空のFormattedSeriesを返します（エラーではありません）。
func Process(raw entity.RawResponse, g entity.Granularity, r entity.DateRange) (entity.FormattedSeries, error) {
	series, ok := raw[g.SeriesKey()]
	if !ok {
		return entity.FormattedSeries{}, nil
	}

	// 範囲内のタイムスタンプを収集する。
	// イントラデイのタイムスタンプは日付部分のみで比較する（時刻は無視）。
	keep := make([]string, 0, len(series))
	for ts := range series {
		d, err := entity.ParseDate(datePart(ts))
		if err != nil {
			return entity.FormattedSeries{}, fmt.Errorf("parse timestamp %q: %w", ts, err)
		}
		if r.Contains(d) {
			keep = append(keep, ts)
		}
	}

	// YYYY-MM-DD形式は辞書順がそのまま時系列順になる
	sort.Strings(keep)

	out := entity.FormattedSeries{
		Dates:  make([]string, 0, len(keep)),
		Opens:  make([]float64, 0, len(keep)),
		Highs:  make([]float64, 0, len(keep)),
		Lows:   make([]float64, 0, len(keep)),
		Closes: make([]float64, 0, len(keep)),
	}
	for _, ts := range keep {
		bar := series[ts]
		// 始値をパース
		o, err := strconv.ParseFloat(bar.Open, 64)
		if err != nil {
			return entity.FormattedSeries{}, fmt.Errorf("parse open %q: %w", bar.Open, err)
		}
		// 高値をパース
		h, err := strconv.ParseFloat(bar.High, 64)
		if err != nil {
			return entity.FormattedSeries{}, fmt.Errorf("parse high %q: %w", bar.High, err)
		}
		// 安値をパース
		l, err := strconv.ParseFloat(bar.Low, 64)
		if err != nil {
			return entity.FormattedSeries{}, fmt.Errorf("parse low %q: %w", bar.Low, err)
		}
		// 終値をパース
		c, err := strconv.ParseFloat(bar.Close, 64)
		if err != nil {
			return entity.FormattedSeries{}, fmt.Errorf("parse close %q: %w", bar.Close, err)
		}

		// ラベルには日付部分のみを使用する
		out.Dates = append(out.Dates, datePart(ts))
		out.Opens = append(out.Opens, o)
		out.Highs = append(out.Highs, h)
		out.Lows = append(out.Lows, l)
		out.Closes = append(out.Closes, c)
	}
	return out, nil
}

// datePart はタイムスタンプから日付部分のみを取り出します。
func datePart(ts string) string {
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[:i]
	}
	return ts
}
