package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"weather-app/models"
)

// ErrIncompleteResponse is returned when a 200 response lacks an object or
// field the result is built from.
var ErrIncompleteResponse = errors.New("incomplete response")

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	apiKey      string
	weatherURL  string
	forecastURL string
	httpClient  *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(cfg *Config) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:      cfg.APIKey,
		weatherURL:  cfg.BaseURL,
		forecastURL: cfg.ForecastURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// GetWeather fetches current weather for a city
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, city string) (models.WeatherResult, error) {
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", "metric")
	params.Add("lang", "en")

	status, body, err := p.get(ctx, p.weatherURL, params)
	if err != nil {
		return nil, err
	}
	log.Printf("%s current weather for %q: status %d", p.Name(), city, status)

	if status != http.StatusOK {
		return &models.LookupError{City: city, StatusCode: status}, nil
	}

	var response struct {
		Name    *string `json:"name"`
		Weather []struct {
			Description *string `json:"description"`
		} `json:"weather"`
		Main *struct {
			Temp      *float64 `json:"temp"`
			TempMin   *float64 `json:"temp_min"`
			TempMax   *float64 `json:"temp_max"`
			FeelsLike *float64 `json:"feels_like"`
			Humidity  *int     `json:"humidity"`
			Pressure  *int     `json:"pressure"`
			SeaLevel  *int     `json:"sea_level"`
		} `json:"main"`
		Wind *struct {
			Speed *float64 `json:"speed"`
			Deg   *int     `json:"deg"`
		} `json:"wind"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	switch {
	case response.Main == nil:
		return nil, fmt.Errorf("%w: missing \"main\"", ErrIncompleteResponse)
	case response.Wind == nil:
		return nil, fmt.Errorf("%w: missing \"wind\"", ErrIncompleteResponse)
	case len(response.Weather) == 0:
		return nil, fmt.Errorf("%w: missing \"weather\"", ErrIncompleteResponse)
	}

	conditions, wind := response.Main, response.Wind
	if err := requireFields(
		requiredField{"name", response.Name != nil},
		requiredField{"weather[0].description", response.Weather[0].Description != nil},
		requiredField{"main.temp", conditions.Temp != nil},
		requiredField{"main.temp_min", conditions.TempMin != nil},
		requiredField{"main.temp_max", conditions.TempMax != nil},
		requiredField{"main.feels_like", conditions.FeelsLike != nil},
		requiredField{"main.humidity", conditions.Humidity != nil},
		requiredField{"wind.speed", wind.Speed != nil},
		requiredField{"wind.deg", wind.Deg != nil},
		requiredField{"main.sea_level", conditions.SeaLevel != nil},
		requiredField{"main.pressure", conditions.Pressure != nil},
	); err != nil {
		return nil, err
	}

	return models.CurrentWeather{
		Location:    *response.Name,
		Description: *response.Weather[0].Description,
		Temperature: *conditions.Temp,
		TempMin:     *conditions.TempMin,
		TempMax:     *conditions.TempMax,
		FeelsLike:   *conditions.FeelsLike,
		Humidity:    *conditions.Humidity,
		WindSpeed:   *wind.Speed,
		WindDeg:     *wind.Deg,
		SeaLevel:    *conditions.SeaLevel,
		Pressure:    *conditions.Pressure,
	}, nil
}

// FetchForecast fetches forecast for a city for the specified number of days
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, city string, days int) (models.ForecastResult, error) {
	if days < models.MinForecastDays || days > models.MaxForecastDays {
		return nil, fmt.Errorf("days must be within %d-%d, got %d", models.MinForecastDays, models.MaxForecastDays, days)
	}

	// The 5-day forecast endpoint returns data in 3-hour steps
	maxEntries := days * models.EntriesPerDay

	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("cnt", strconv.Itoa(maxEntries))
	params.Add("units", "metric")
	params.Add("lang", "en")

	status, body, err := p.get(ctx, p.forecastURL, params)
	if err != nil {
		return nil, err
	}
	log.Printf("%s %d-day forecast for %q: status %d", p.Name(), days, city, status)

	if status != http.StatusOK {
		return &models.LookupError{City: city, StatusCode: status}, nil
	}

	var response struct {
		City *struct {
			Name *string `json:"name"`
		} `json:"city"`
		List []struct {
			Main *struct {
				Temp     *float64 `json:"temp"`
				Humidity *int     `json:"humidity"`
			} `json:"main"`
			Wind *struct {
				Speed *float64 `json:"speed"`
			} `json:"wind"`
			Weather []struct {
				Description *string `json:"description"`
			} `json:"weather"`
			DtTxt *string `json:"dt_txt"`
		} `json:"list"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if response.City == nil || response.City.Name == nil {
		return nil, fmt.Errorf("%w: missing \"city.name\"", ErrIncompleteResponse)
	}
	if response.List == nil {
		return nil, fmt.Errorf("%w: missing \"list\"", ErrIncompleteResponse)
	}

	if maxEntries > len(response.List) {
		maxEntries = len(response.List)
	}

	forecast := models.Forecast{
		City:    *response.City.Name,
		Entries: make([]models.ForecastEntry, 0, maxEntries),
	}

	for i := 0; i < maxEntries; i++ {
		item := response.List[i]
		prefix := fmt.Sprintf("list[%d].", i)

		switch {
		case item.Main == nil:
			return nil, fmt.Errorf("%w: missing \"%smain\"", ErrIncompleteResponse, prefix)
		case item.Wind == nil:
			return nil, fmt.Errorf("%w: missing \"%swind\"", ErrIncompleteResponse, prefix)
		case len(item.Weather) == 0:
			return nil, fmt.Errorf("%w: missing \"%sweather\"", ErrIncompleteResponse, prefix)
		}

		if err := requireFields(
			requiredField{prefix + "dt_txt", item.DtTxt != nil},
			requiredField{prefix + "main.temp", item.Main.Temp != nil},
			requiredField{prefix + "main.humidity", item.Main.Humidity != nil},
			requiredField{prefix + "wind.speed", item.Wind.Speed != nil},
			requiredField{prefix + "weather[0].description", item.Weather[0].Description != nil},
		); err != nil {
			return nil, err
		}

		forecast.Entries = append(forecast.Entries, models.ForecastEntry{
			Timestamp:   *item.DtTxt,
			Temperature: *item.Main.Temp,
			Humidity:    *item.Main.Humidity,
			WindSpeed:   *item.Wind.Speed,
			Description: *item.Weather[0].Description,
		})
	}

	return forecast, nil
}

// requiredField names a response field and whether it was present
type requiredField struct {
	name    string
	present bool
}

// requireFields reports the first absent field as ErrIncompleteResponse
func requireFields(fields ...requiredField) error {
	for _, f := range fields {
		if !f.present {
			return fmt.Errorf("%w: missing %q", ErrIncompleteResponse, f.name)
		}
	}
	return nil
}

// get issues a GET request and returns the status code. The body is only read
// for 200 responses.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint string, params url.Values) (int, []byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	query := u.Query()
	for key, values := range params {
		query[key] = values
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// The URL in a *url.Error carries the API key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return 0, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}

// Verify that the provider implements the required interfaces
var (
	_ WeatherProvider = (*OpenWeatherMapProvider)(nil)
	_ ForecastSource  = (*OpenWeatherMapProvider)(nil)
)
