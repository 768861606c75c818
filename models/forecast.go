package models

// ForecastResult is the outcome of a forecast lookup: either Forecast or
// *LookupError.
type ForecastResult interface {
	isForecastResult()
}

// ForecastEntry is a single 3-hour forecast step
type ForecastEntry struct {
	Timestamp   string  `json:"timestamp"`   // upstream dt_txt, e.g. "2024-05-01 12:00:00"
	Temperature float64 `json:"temperature"` // in Celsius
	Humidity    int     `json:"humidity"`    // percentage
	WindSpeed   float64 `json:"windSpeed"`   // in m/s
	Description string  `json:"description"` // short text description
}

// Forecast represents the forecast entries returned for a city, in upstream order
type Forecast struct {
	City    string          `json:"city"`
	Entries []ForecastEntry `json:"entries"`
}

func (Forecast) isForecastResult() {}

// ForecastSeries holds parallel timestamp labels and temperatures for charting
type ForecastSeries struct {
	Timestamps   []string
	Temperatures []float64
}

const (
	// MinForecastDays and MaxForecastDays bound the forecast length a user can request
	MinForecastDays = 1
	MaxForecastDays = 5

	// EntriesPerDay is the number of 3-hour steps in one forecast day
	EntriesPerDay = 8
)
