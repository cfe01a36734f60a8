package entity

// RawBar holds the four price fields of one time bucket as received from the
// remote API. Values stay numeric-as-string until decomposition.
type RawBar struct {
	Open  string
	High  string
	Low   string
	Close string
}

// RawSeries maps a timestamp string ("YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS")
// to its price bar. Unordered as received.
type RawSeries map[string]RawBar

// RawResponse maps a series key name (e.g. "Time Series (Daily)") to the
// series nested under it in the remote payload.
type RawResponse map[string]RawSeries

// FormattedSeries holds chart-ready OHLC data as four value sequences
// aligned by index with Dates, sorted ascending by date. All five slices
// always share the same length.
type FormattedSeries struct {
	Dates  []string
	Opens  []float64
	Highs  []float64
	Lows   []float64
	Closes []float64
}

// IsEmpty reports whether no entries survived date filtering.
func (s FormattedSeries) IsEmpty() bool { return len(s.Dates) == 0 }
