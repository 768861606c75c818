package datasource

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration, read from the environment
// once at startup and passed to the components that need it.
type Config struct {
	// OpenWeatherMap access. A missing key is not rejected here; the upstream
	// service answers with 401 on the first request.
	APIKey      string `envconfig:"API_KEY"`
	BaseURL     string `envconfig:"BASE_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	ForecastURL string `envconfig:"FORECAST_URL" default:"https://api.openweathermap.org/data/2.5/forecast"`

	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	RateLimitRPS   float64       `envconfig:"RATE_LIMIT_RPS" default:"1"`
	RateLimitBurst int           `envconfig:"RATE_LIMIT_BURST" default:"5"`

	FavoritesFile string `envconfig:"FAVORITES_FILE" default:"favorites.json"`
	ChartFile     string `envconfig:"CHART_FILE" default:"forecast_chart.html"`
	LogFile       string `envconfig:"LOG_FILE" default:"logs/weather.log"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	// A zero burst would make every limiter wait fail
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set, got %d", cfg.RateLimitBurst)
	}
	return &cfg, nil
}
