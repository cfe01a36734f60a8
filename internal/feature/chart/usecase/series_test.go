package usecase_test

import (
	"testing"
	"time"

	"stock_charts/internal/feature/chart/domain/entity"
	"stock_charts/internal/feature/chart/usecase"
)

// mustRange はテスト用のDateRangeを生成します。
func mustRange(t *testing.T, start, end string) entity.DateRange {
	t.Helper()
	s, err := entity.ParseDate(start)
	if err != nil {
		t.Fatalf("parse start %q: %v", start, err)
	}
	e, err := entity.ParseDate(end)
	if err != nil {
		t.Fatalf("parse end %q: %v", end, err)
	}
	r, err := entity.NewDateRange(s, e)
	if err != nil {
		t.Fatalf("new range: %v", err)
	}
	return r
}

// bar は固定の4値を持つテスト用RawBarを生成します。
func bar(o, h, l, c string) entity.RawBar {
	return entity.RawBar{Open: o, High: h, Low: l, Close: c}
}

// TestProcess_FilterInclusiveBounds は日付範囲の両端が含まれることを検証します。
func TestProcess_FilterInclusiveBounds(t *testing.T) {
	raw := entity.RawResponse{
		"Time Series (Daily)": {
			"2023-12-31": bar("1", "2", "0.5", "1.5"),
			"2024-01-01": bar("2", "3", "1.5", "2.5"),
			"2024-01-02": bar("3", "4", "2.5", "3.5"),
			"2024-01-03": bar("4", "5", "3.5", "4.5"),
			"2024-01-04": bar("5", "6", "4.5", "5.5"),
		},
	}

	out, err := usecase.Process(raw, entity.GranularityDaily, mustRange(t, "2024-01-01", "2024-01-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 境界日（開始日・終了日）を含む3件が残る
	wantDates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if len(out.Dates) != len(wantDates) {
		t.Fatalf("expected %d entries, got %d", len(wantDates), len(out.Dates))
	}
	for i, d := range wantDates {
		if out.Dates[i] != d {
			t.Errorf("position %d: got %q, want %q", i, out.Dates[i], d)
		}
	}
}

// TestProcess_SortedAscending は順不同のシリーズが日付昇順に並べ替えられることを検証します。
func TestProcess_SortedAscending(t *testing.T) {
	raw := entity.RawResponse{
		"Monthly Time Series": {
			"2024-03-29": bar("3", "3", "3", "3"),
			"2024-01-31": bar("1", "1", "1", "1"),
			"2024-02-29": bar("2", "2", "2", "2"),
		},
	}

	out, err := usecase.Process(raw, entity.GranularityMonthly, mustRange(t, "2024-01-01", "2024-12-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 辞書順ソートが時系列順と一致する
	prev := time.Time{}
	for i, d := range out.Dates {
		parsed, err := entity.ParseDate(d)
		if err != nil {
			t.Fatalf("parse %q: %v", d, err)
		}
		if parsed.Before(prev) {
			t.Errorf("dates not ascending at position %d: %v", i, out.Dates)
		}
		prev = parsed
	}
	if out.Opens[0] != 1 || out.Opens[1] != 2 || out.Opens[2] != 3 {
		t.Errorf("values not aligned with sorted dates: %v", out.Opens)
	}
}

// TestProcess_ParallelLengths は4つの出力配列が常に同じ長さになることを検証します。
func TestProcess_ParallelLengths(t *testing.T) {
	raw := entity.RawResponse{
		"Weekly Time Series": {
			"2024-01-05": bar("1.1", "2.2", "0.9", "1.8"),
			"2024-01-12": bar("1.8", "2.5", "1.6", "2.1"),
		},
	}

	out, err := usecase.Process(raw, entity.GranularityWeekly, mustRange(t, "2024-01-01", "2024-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := len(out.Dates)
	if n != 2 {
		t.Fatalf("expected 2 retained entries, got %d", n)
	}
	if len(out.Opens) != n || len(out.Highs) != n || len(out.Lows) != n || len(out.Closes) != n {
		t.Errorf("sequences have unequal lengths: dates=%d opens=%d highs=%d lows=%d closes=%d",
			n, len(out.Opens), len(out.Highs), len(out.Lows), len(out.Closes))
	}
}

// TestProcess_IntradayDateOnly はイントラデイのタイムスタンプが日付部分のみで
// 比較され、ラベルにも日付部分のみが使われることを検証します。
func TestProcess_IntradayDateOnly(t *testing.T) {
	raw := entity.RawResponse{
		"Time Series (60min)": {
			"2024-01-02 09:30:00": bar("10", "11", "9", "10.5"),
			"2024-01-02 10:30:00": bar("10.5", "12", "10", "11"),
			"2024-01-05 09:30:00": bar("13", "14", "12", "13.5"),
		},
	}

	out, err := usecase.Process(raw, entity.GranularityIntraday, mustRange(t, "2024-01-01", "2024-01-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Dates) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out.Dates))
	}
	for _, d := range out.Dates {
		if d != "2024-01-02" {
			t.Errorf("label should keep only the date part, got %q", d)
		}
	}
	// 同一日の2本は元のタイムスタンプ文字列の辞書順（=時刻順）
	if out.Opens[0] != 10 || out.Opens[1] != 10.5 {
		t.Errorf("intraday bars out of order: %v", out.Opens)
	}
}

// TestProcess_MissingSeriesKey はシリーズキーがレスポンスにない場合に
// エラーではなく空の結果になることを検証します。
func TestProcess_MissingSeriesKey(t *testing.T) {
	raw := entity.RawResponse{
		"Time Series (Daily)": {
			"2024-01-02": bar("1", "2", "0.5", "1.5"),
		},
	}

	out, err := usecase.Process(raw, entity.GranularityWeekly, mustRange(t, "2024-01-01", "2024-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("expected empty result for missing series key, got %d entries", len(out.Dates))
	}
}

// TestProcess_NoEntriesInRange は範囲外のデータのみの場合に空の結果になることを検証します。
func TestProcess_NoEntriesInRange(t *testing.T) {
	raw := entity.RawResponse{
		"Time Series (Daily)": {
			"2024-01-02": bar("1", "2", "0.5", "1.5"),
			"2024-01-05": bar("2", "3", "1.5", "2.5"),
		},
	}

	out, err := usecase.Process(raw, entity.GranularityDaily, mustRange(t, "2023-06-01", "2023-06-30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("expected empty result, got %d entries", len(out.Dates))
	}
}

// TestProcess_ScenarioRangeSelection は範囲[2024-01-01, 2024-01-03]で
// 2024-01-02のエントリだけが残るシナリオを検証します。
func TestProcess_ScenarioRangeSelection(t *testing.T) {
	raw := entity.RawResponse{
		"Time Series (Daily)": {
			"2024-01-02": bar("1", "2", "0.5", "1.5"),
			"2024-01-05": bar("2", "3", "1.5", "2.5"),
		},
	}

	out, err := usecase.Process(raw, entity.GranularityDaily, mustRange(t, "2024-01-01", "2024-01-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Dates) != 1 || out.Dates[0] != "2024-01-02" {
		t.Fatalf("expected only the 2024-01-02 entry, got %v", out.Dates)
	}
	if out.Opens[0] != 1 || out.Highs[0] != 2 || out.Lows[0] != 0.5 || out.Closes[0] != 1.5 {
		t.Errorf("unexpected OHLC values: %v %v %v %v", out.Opens[0], out.Highs[0], out.Lows[0], out.Closes[0])
	}
}

// TestProcess_MalformedValues は数値やタイムスタンプが不正な場合にエラーになることを検証します。
func TestProcess_MalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		series entity.RawSeries
	}{
		{"invalid open", entity.RawSeries{"2024-01-02": bar("abc", "2", "0.5", "1.5")}},
		{"invalid high", entity.RawSeries{"2024-01-02": bar("1", "xyz", "0.5", "1.5")}},
		{"invalid low", entity.RawSeries{"2024-01-02": bar("1", "2", "bad", "1.5")}},
		{"invalid close", entity.RawSeries{"2024-01-02": bar("1", "2", "0.5", "bad")}},
		{"invalid timestamp", entity.RawSeries{"not-a-date": bar("1", "2", "0.5", "1.5")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := entity.RawResponse{"Time Series (Daily)": tt.series}
			_, err := usecase.Process(raw, entity.GranularityDaily, mustRange(t, "2024-01-01", "2024-01-31"))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
