package usecase

import "errors"

var (
	// ErrSymbolRequired is returned when the form submits no stock symbol.
	ErrSymbolRequired = errors.New("symbol is required")

	// ErrDatesRequired is returned when either date field is missing.
	ErrDatesRequired = errors.New("both start and end dates are required")

	// ErrInvalidDateFormat is returned when a date is not a valid YYYY-MM-DD calendar date.
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

	// ErrInvalidGranularity is returned when the time series code is outside 1-4.
	ErrInvalidGranularity = errors.New("time series code must be between 1 and 4")

	// ErrFetchFailed wraps any remote fetch failure. The underlying cause is
	// logged by the handler, never shown to the user.
	ErrFetchFailed = errors.New("failed to fetch stock data")

	// ErrNoData is returned when a valid fetch yields zero entries inside the
	// requested date range. This is a warning-level outcome, distinct from
	// ErrFetchFailed.
	ErrNoData = errors.New("no data found in the requested date range")

	// ErrRenderFailed is returned when a chart specification could not be
	// produced from non-empty data.
	ErrRenderFailed = errors.New("failed to generate chart")
)
