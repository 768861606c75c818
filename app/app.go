// Package app runs the interactive weather menu.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"weather-app/datasource"
	"weather-app/display"
	"weather-app/favorites"
	"weather-app/models"
	"weather-app/prompt"
)

const menu = `Menu.
1. Get current weather for city
2. Get future weather for city
3. Show weather in favorite cities
4. Add city to favorites
5. Remove city from favorites
6. Exit`

// Plotter renders a forecast temperature series and returns where it was written
type Plotter interface {
	Plot(city string, series models.ForecastSeries) (string, error)
}

// App holds the session state of the interactive menu. It is not safe for
// concurrent use.
type App struct {
	provider      datasource.Provider
	plotter       Plotter
	prompt        *prompt.Prompter
	out           io.Writer
	favoritesPath string
	favorites     []string
}

// New creates an App reading answers from in and writing to out. Favorites
// are loaded from and saved to favoritesPath.
func New(provider datasource.Provider, plotter Plotter, in io.Reader, out io.Writer, favoritesPath string) *App {
	return &App{
		provider:      provider,
		plotter:       plotter,
		prompt:        prompt.New(in, out),
		out:           out,
		favoritesPath: favoritesPath,
	}
}

// Favorites returns a copy of the current favorites list
func (a *App) Favorites() []string {
	return slices.Clone(a.favorites)
}

// Run loads the favorites, serves the menu until the user exits or the input
// ends, then saves the favorites.
func (a *App) Run(ctx context.Context) error {
	cities, err := favorites.Load(a.favoritesPath)
	if err != nil {
		return err
	}
	a.favorites = cities

	if err := a.loop(ctx); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if err := favorites.Save(a.favorites, a.favoritesPath, a.out); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exiting...")
	return nil
}

func (a *App) loop(ctx context.Context) error {
	if _, err := a.prompt.Line(" === Weather App === "); err != nil {
		return err
	}

	// The menu is shown once; it is not repeated after each action
	fmt.Fprintln(a.out, menu)

	for {
		choice, err := a.prompt.Line("\nYour choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.currentWeather(ctx)
		case "2":
			err = a.futureWeather(ctx)
		case "3":
			a.favoritesWeather(ctx)
		case "4":
			err = a.addFavorite(ctx)
		case "5":
			err = a.removeFavorite()
		case "6":
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice, please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) currentWeather(ctx context.Context) error {
	city, err := a.prompt.City("Enter city: ")
	if err != nil {
		return err
	}

	result, err := a.provider.GetWeather(ctx, city)
	if err != nil {
		a.requestFailed(city, err)
		return nil
	}
	display.CurrentWeather(a.out, result)
	return nil
}

func (a *App) futureWeather(ctx context.Context) error {
	city, err := a.prompt.City("Enter city: ")
	if err != nil {
		return err
	}
	days, err := a.prompt.Days()
	if err != nil {
		return err
	}

	result, err := a.provider.FetchForecast(ctx, city, days)
	if err != nil {
		a.requestFailed(city, err)
		return nil
	}
	display.Forecast(a.out, result, days)

	forecast, ok := result.(models.Forecast)
	if !ok {
		return nil
	}

	plot, err := a.prompt.Confirm("\nWould you like to see a graphical temperature chart (Y/N)? ")
	if err != nil || !plot {
		return err
	}

	path, err := a.plotter.Plot(forecast.City, display.Series(forecast))
	if err != nil {
		log.Printf("Chart for %q failed: %v", city, err)
		fmt.Fprintf(a.out, "Could not draw the chart: %v\n", err)
		return nil
	}
	fmt.Fprintf(a.out, "Temperature chart saved to %s\n", path)
	return nil
}

func (a *App) favoritesWeather(ctx context.Context) {
	if len(a.favorites) == 0 {
		fmt.Fprintln(a.out, "No favorite places found.")
		return
	}

	for _, city := range a.favorites {
		result, err := a.provider.GetWeather(ctx, city)
		if err != nil {
			a.requestFailed(city, err)
			continue
		}
		display.CurrentWeather(a.out, result)
	}
}

func (a *App) addFavorite(ctx context.Context) error {
	city, err := a.prompt.City("Enter your favorite place: ")
	if err != nil {
		return err
	}

	if slices.Contains(a.favorites, city) {
		fmt.Fprintf(a.out, "City \"%s\" is already in your favorites list.\n", city)
		return nil
	}

	result, err := a.provider.GetWeather(ctx, city)
	if err != nil {
		a.requestFailed(city, err)
		return nil
	}
	if _, failed := result.(*models.LookupError); failed {
		fmt.Fprintf(a.out, "Favorite city \"%s\" not found, try again.\n", city)
		return nil
	}

	a.favorites = append(a.favorites, city)
	fmt.Fprintf(a.out, "City \"%s\" added to favorites.\n", city)
	return nil
}

func (a *App) removeFavorite() error {
	city, err := a.prompt.City("Enter your favorite location to delete: ")
	if err != nil {
		return err
	}

	i := slices.Index(a.favorites, city)
	if i < 0 {
		fmt.Fprintf(a.out, "City \"%s\" is not in the favorites list.\n", city)
		return nil
	}

	a.favorites = slices.Delete(a.favorites, i, i+1)
	fmt.Fprintf(a.out, "City \"%s\" has been removed from favorites.\n", city)
	return nil
}

// requestFailed reports a transport or decoding failure. The session goes on.
func (a *App) requestFailed(city string, err error) {
	log.Printf("Request for %q via %s failed: %v", city, a.provider.Name(), err)
	fmt.Fprintf(a.out, "Request failed: %v\n", err)
}
