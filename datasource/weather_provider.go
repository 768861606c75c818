package datasource

import (
	"context"

	"weather-app/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a city. A non-200 upstream status is
	// reported as a *models.LookupError result, not as an error; the error return
	// is reserved for transport and decoding failures.
	GetWeather(ctx context.Context, city string) (models.WeatherResult, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches a forecast for a city for the specified number of days
	FetchForecast(ctx context.Context, city string, days int) (models.ForecastResult, error)

	// Name returns the source's name
	Name() string
}

// Provider is implemented by services offering both current weather and forecasts
type Provider interface {
	WeatherProvider
	ForecastSource
}
