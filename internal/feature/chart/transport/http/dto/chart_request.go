// Package dto defines request and response DTOs for the chart feature.
package dto

// ChartRequest binds the chart form fields.
//
// ChartType: 1 = bar, anything else = line.
// TimeSeries: 1=Intraday, 2=Daily, 3=Weekly, 4=Monthly.
type ChartRequest struct {
	Symbol     string `form:"symbol"`
	ChartType  int    `form:"chart_type,default=2"`
	TimeSeries int    `form:"time_series,default=2"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}
