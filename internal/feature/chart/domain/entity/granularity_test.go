package entity

import "testing"

func TestGranularity_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		g         Granularity
		function  string
		seriesKey string
		interval  string
	}{
		{GranularityIntraday, "TIME_SERIES_INTRADAY", "Time Series (60min)", "60min"},
		{GranularityDaily, "TIME_SERIES_DAILY", "Time Series (Daily)", ""},
		{GranularityWeekly, "TIME_SERIES_WEEKLY", "Weekly Time Series", ""},
		{GranularityMonthly, "TIME_SERIES_MONTHLY", "Monthly Time Series", ""},
	}
	for _, tt := range tests {
		if !tt.g.Valid() {
			t.Errorf("granularity %d should be valid", tt.g)
		}
		if got := tt.g.Function(); got != tt.function {
			t.Errorf("granularity %d: function %q, want %q", tt.g, got, tt.function)
		}
		if got := tt.g.SeriesKey(); got != tt.seriesKey {
			t.Errorf("granularity %d: series key %q, want %q", tt.g, got, tt.seriesKey)
		}
		if got := tt.g.Interval(); got != tt.interval {
			t.Errorf("granularity %d: interval %q, want %q", tt.g, got, tt.interval)
		}
	}
}

func TestGranularity_Invalid(t *testing.T) {
	t.Parallel()

	for _, g := range []Granularity{0, 5, -1, 100} {
		if g.Valid() {
			t.Errorf("granularity %d should be invalid", g)
		}
	}
}

func TestGranularities_Order(t *testing.T) {
	t.Parallel()

	gs := Granularities()
	if len(gs) != 4 {
		t.Fatalf("expected 4 granularities, got %d", len(gs))
	}
	for i, g := range gs {
		if int(g) != i+1 {
			t.Errorf("position %d: got code %d, want %d", i, g, i+1)
		}
	}
}
