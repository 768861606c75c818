// Package display renders weather results as console text.
package display

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"weather-app/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CurrentWeather writes the current conditions block, or the lookup error
// message for an error result.
func CurrentWeather(w io.Writer, result models.WeatherResult) {
	switch r := result.(type) {
	case *models.LookupError:
		fmt.Fprintln(w, r.Error())

	case models.CurrentWeather:
		fmt.Fprintf(w, "\n--- Weather in %s ---\n", Capitalize(r.Location))
		fmt.Fprintf(w, "Description: %s\n", Capitalize(r.Description))
		fmt.Fprintf(w, "Temperature: %s°C\n", number(r.Temperature))
		fmt.Fprintf(w, "Temperature min: %s°C\n", number(r.TempMin))
		fmt.Fprintf(w, "Temperature max: %s°C\n", number(r.TempMax))
		fmt.Fprintf(w, "Feels like: %s°C\n", number(r.FeelsLike))
		fmt.Fprintf(w, "Humidity: %d%%\n", r.Humidity)
		fmt.Fprintf(w, "Wind Speed: %s m/s\n", number(r.WindSpeed))
		fmt.Fprintf(w, "Wind deg: %d°\n", r.WindDeg)
		fmt.Fprintf(w, "Sea level: %d hPa\n", r.SeaLevel)
		fmt.Fprintf(w, "Pressure: %d hPa\n", r.Pressure)
	}
}

// Forecast writes a header followed by one line per forecast entry, or the
// lookup error message followed by a blank line for an error result.
func Forecast(w io.Writer, result models.ForecastResult, days int) {
	switch r := result.(type) {
	case *models.LookupError:
		fmt.Fprintf(w, "%s \n\n", r.Error())

	case models.Forecast:
		fmt.Fprintf(w, "\n--- %d-Day Forecast for %s---\n", days, Capitalize(r.City))
		for _, entry := range r.Entries {
			fmt.Fprintf(w, "%s: %s°C, %d%%, %s m/s, %s\n",
				entry.Timestamp,
				number(entry.Temperature),
				entry.Humidity,
				number(entry.WindSpeed),
				Capitalize(entry.Description))
		}
	}
}

// Series projects a forecast onto parallel timestamp and temperature slices
func Series(forecast models.Forecast) models.ForecastSeries {
	series := models.ForecastSeries{
		Timestamps:   make([]string, 0, len(forecast.Entries)),
		Temperatures: make([]float64, 0, len(forecast.Entries)),
	}
	for _, entry := range forecast.Entries {
		series.Timestamps = append(series.Timestamps, entry.Timestamp)
		series.Temperatures = append(series.Temperatures, entry.Temperature)
	}
	return series
}

// Capitalize upper-cases the first letter of s and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.English).String(s[:size]) + cases.Lower(language.English).String(s[size:])
}

// number formats v with the fewest digits that represent it exactly
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
