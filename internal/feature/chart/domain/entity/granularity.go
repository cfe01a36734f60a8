// Package entity defines the domain models for the chart feature.
package entity

// Granularity identifies the sampling frequency of a requested time series.
// Values match the numeric codes submitted by the chart form:
// 1=Intraday, 2=Daily, 3=Weekly, 4=Monthly.
type Granularity int

const (
	GranularityIntraday Granularity = iota + 1
	GranularityDaily
	GranularityWeekly
	GranularityMonthly
)

// granularityParams ties a granularity to its remote API function name, the
// response key under which the API nests the series, and the interval
// parameter that intraday requests additionally require.
type granularityParams struct {
	Function  string
	SeriesKey string
	Interval  string
}

var granularityTable = map[Granularity]granularityParams{
	GranularityIntraday: {Function: "TIME_SERIES_INTRADAY", SeriesKey: "Time Series (60min)", Interval: "60min"},
	GranularityDaily:    {Function: "TIME_SERIES_DAILY", SeriesKey: "Time Series (Daily)"},
	GranularityWeekly:   {Function: "TIME_SERIES_WEEKLY", SeriesKey: "Weekly Time Series"},
	GranularityMonthly:  {Function: "TIME_SERIES_MONTHLY", SeriesKey: "Monthly Time Series"},
}

// Valid reports whether g is one of the four supported codes.
func (g Granularity) Valid() bool {
	_, ok := granularityTable[g]
	return ok
}

// Function returns the remote API function name for g.
func (g Granularity) Function() string { return granularityTable[g].Function }

// SeriesKey returns the response key under which the remote API nests the
// time series for g.
func (g Granularity) SeriesKey() string { return granularityTable[g].SeriesKey }

// Interval returns the fixed interval parameter for g, or "" when the
// granularity does not require one.
func (g Granularity) Interval() string { return granularityTable[g].Interval }

// Granularities returns the four supported codes in ascending order.
func Granularities() []Granularity {
	return []Granularity{GranularityIntraday, GranularityDaily, GranularityWeekly, GranularityMonthly}
}
