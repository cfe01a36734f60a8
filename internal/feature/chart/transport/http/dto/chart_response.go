package dto

import "stock_charts/internal/feature/chart/domain/entity"

// ChartResponse wraps a generated chart specification with a status message
// and the number of plotted data points.
type ChartResponse struct {
	Message string            `json:"message"`
	Points  int               `json:"points"`
	Chart   *entity.ChartSpec `json:"chart"`
}
