package datasource

import (
	"context"
	"sync"
	"testing"
	"time"

	"weather-app/models"
)

// countingProvider counts calls and answers with fixed results
type countingProvider struct {
	mutex     sync.Mutex
	weather   int
	forecasts int
}

func (c *countingProvider) GetWeather(ctx context.Context, city string) (models.WeatherResult, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.weather++
	return models.CurrentWeather{Location: city}, nil
}

func (c *countingProvider) FetchForecast(ctx context.Context, city string, days int) (models.ForecastResult, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.forecasts++
	return models.Forecast{City: city}, nil
}

func (c *countingProvider) Name() string {
	return "Counting"
}

func TestRateLimitedProvider_Forwards(t *testing.T) {
	inner := &countingProvider{}
	p := NewRateLimitedProvider(inner, 100, 10)

	if p.Name() != "Counting [Rate Limited]" {
		t.Errorf("unexpected name %q", p.Name())
	}

	result, err := p.GetWeather(context.Background(), "Oslo")
	if err != nil {
		t.Fatalf("GetWeather failed: %v", err)
	}
	if got := result.(models.CurrentWeather).Location; got != "Oslo" {
		t.Errorf("expected Oslo, got %s", got)
	}

	if _, err := p.FetchForecast(context.Background(), "Oslo", 2); err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}

	if inner.weather != 1 || inner.forecasts != 1 {
		t.Errorf("expected 1 weather and 1 forecast call, got %d and %d", inner.weather, inner.forecasts)
	}
}

func TestRateLimitedProvider_CanceledWait(t *testing.T) {
	inner := &countingProvider{}
	// One token per hour and a burst of one: the second call must wait
	p := NewRateLimitedProvider(inner, 1.0/3600, 1)

	if _, err := p.GetWeather(context.Background(), "Oslo"); err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.FetchForecast(ctx, "Oslo", 1)
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	if inner.forecasts != 0 {
		t.Errorf("expected the forecast call to be blocked, got %d calls", inner.forecasts)
	}
}
