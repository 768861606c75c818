package models

import "fmt"

// WeatherResult is the outcome of a current weather lookup: either
// CurrentWeather or *LookupError.
type WeatherResult interface {
	isWeatherResult()
}

// CurrentWeather represents the current conditions reported for a city
type CurrentWeather struct {
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Temperature float64 `json:"temperature"` // in Celsius
	TempMin     float64 `json:"tempMin"`     // in Celsius
	TempMax     float64 `json:"tempMax"`     // in Celsius
	FeelsLike   float64 `json:"feelsLike"`   // in Celsius
	Humidity    int     `json:"humidity"`    // percentage
	WindSpeed   float64 `json:"windSpeed"`   // in m/s
	WindDeg     int     `json:"windDeg"`     // wind direction in degrees
	SeaLevel    int     `json:"seaLevel"`    // in hPa
	Pressure    int     `json:"pressure"`    // in hPa
}

func (CurrentWeather) isWeatherResult() {}

// LookupError is the error variant of both WeatherResult and ForecastResult.
// It is returned when the upstream service answers with a non-200 status.
type LookupError struct {
	City       string
	StatusCode int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("City \"%s\" not found. Status code: %d", e.City, e.StatusCode)
}

func (*LookupError) isWeatherResult()  {}
func (*LookupError) isForecastResult() {}
