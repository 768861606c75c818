package datasource

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"API_KEY", "BASE_URL", "FORECAST_URL", "FAVORITES_FILE", "CHART_FILE",
		"LOG_FILE", "HTTP_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		// Setenv restores the variable after the test; envconfig only
		// applies defaults to variables that are unset
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://api.openweathermap.org/data/2.5/weather" {
		t.Errorf("unexpected base URL %s", cfg.BaseURL)
	}
	if cfg.ForecastURL != "https://api.openweathermap.org/data/2.5/forecast" {
		t.Errorf("unexpected forecast URL %s", cfg.ForecastURL)
	}
	if cfg.FavoritesFile != "favorites.json" {
		t.Errorf("expected favorites.json, got %s", cfg.FavoritesFile)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.RateLimitRPS != 1 || cfg.RateLimitBurst != 5 {
		t.Errorf("expected 1 req/s burst 5, got %v burst %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("API_KEY", "abc123")
	t.Setenv("BASE_URL", "http://localhost:9000/weather")
	t.Setenv("FORECAST_URL", "http://localhost:9000/forecast")
	t.Setenv("FAVORITES_FILE", "/tmp/favs.json")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.APIKey != "abc123" {
		t.Errorf("expected abc123, got %s", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:9000/weather" || cfg.ForecastURL != "http://localhost:9000/forecast" {
		t.Errorf("unexpected endpoints %s, %s", cfg.BaseURL, cfg.ForecastURL)
	}
	if cfg.FavoritesFile != "/tmp/favs.json" {
		t.Errorf("expected /tmp/favs.json, got %s", cfg.FavoritesFile)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %s", cfg.HTTPTimeout)
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Errorf("expected 0.5, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for an invalid duration")
	}
}

func TestLoadConfigRejectsZeroBurst(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "2")
	t.Setenv("RATE_LIMIT_BURST", "0")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for a zero burst with rate limiting enabled")
	}
}

func TestLoadConfigZeroBurstWithoutRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("RATE_LIMIT_BURST", "0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.RateLimitRPS != 0 {
		t.Errorf("expected rate limiting off, got %v", cfg.RateLimitRPS)
	}
}
