package entity

// ChartSpec is a declarative chart description consumable by a client-side
// charting library (Chart.js). Building it draws nothing; it is pure data.
type ChartSpec struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// ChartData carries the category labels and the plotted datasets.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one plotted series (one OHLC field).
type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Fill            bool      `json:"fill"`
}

// ChartOptions holds the display options for the rendered chart.
type ChartOptions struct {
	Responsive          bool         `json:"responsive"`
	MaintainAspectRatio bool         `json:"maintainAspectRatio"`
	Scales              ChartScales  `json:"scales"`
	Plugins             ChartPlugins `json:"plugins"`
}

// ChartScales describes the value (y) and category (x) axes.
type ChartScales struct {
	Y ValueAxis    `json:"y"`
	X CategoryAxis `json:"x"`
}

// ValueAxis is the currency-denominated price axis.
type ValueAxis struct {
	BeginAtZero bool      `json:"beginAtZero"`
	Title       AxisTitle `json:"title"`
}

// CategoryAxis is the date axis with rotated tick labels.
type CategoryAxis struct {
	Title AxisTitle `json:"title"`
	Ticks AxisTicks `json:"ticks"`
}

// AxisTitle is a titled axis label.
type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// AxisTicks pins tick label rotation so long date runs stay readable.
type AxisTicks struct {
	MaxRotation int `json:"maxRotation"`
	MinRotation int `json:"minRotation"`
}

// ChartPlugins holds legend and title display settings.
type ChartPlugins struct {
	Legend ChartLegend `json:"legend"`
	Title  ChartTitle  `json:"title"`
}

// ChartLegend controls legend visibility and placement.
type ChartLegend struct {
	Display  bool   `json:"display"`
	Position string `json:"position"`
}

// ChartTitle is the chart title embedding the symbol and date range.
type ChartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}
