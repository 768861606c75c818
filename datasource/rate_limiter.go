package datasource

import (
	"context"
	"fmt"
	"log"

	"weather-app/models"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with rate limiting. Current weather and
// forecast requests share one limiter since the upstream quota is per API key.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider wraps provider with a single limiter shared by the
// current weather and forecast lookups. It admits rps requests per second on
// average and up to burst requests at once; burst must be at least 1.
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather fetches weather data, respecting rate limits
func (r *RateLimitedProvider) GetWeather(ctx context.Context, city string) (models.WeatherResult, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetWeather(ctx, city)
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, city string, days int) (models.ForecastResult, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.FetchForecast(ctx, city, days)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

func (r *RateLimitedProvider) wait(ctx context.Context) error {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		log.Printf("%s: rate limit wait canceled: %v", r.name, err)
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return nil
}

var _ Provider = (*RateLimitedProvider)(nil)
