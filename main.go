package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"weather-app/app"
	"weather-app/chart"
	"weather-app/datasource"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	config, err := datasource.LoadConfig()
	if err != nil {
		return err
	}

	// Diagnostics go to a rotated file so they never mix with the menu
	logger := &lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
	defer logger.Close()
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lshortfile)
	log.SetOutput(logger)

	if envErr != nil {
		log.Printf("Warning: Error loading .env file: %v", envErr)
	}
	if config.APIKey == "" {
		log.Println("Warning: API_KEY is not set, requests will be rejected upstream")
	}

	var provider datasource.Provider = datasource.NewOpenWeatherMapProvider(config)
	if config.RateLimitRPS > 0 {
		provider = datasource.NewRateLimitedProvider(provider, config.RateLimitRPS, config.RateLimitBurst)
		log.Printf("Applied rate limiting to %s provider (%.2f req/s, burst %d)",
			provider.Name(), config.RateLimitRPS, config.RateLimitBurst)
	}

	application := app.New(provider, chart.NewHTMLPlotter(config.ChartFile), os.Stdin, os.Stdout, config.FavoritesFile)

	log.Println("Session started")
	if err := application.Run(context.Background()); err != nil {
		log.Printf("Session ended with error: %v", err)
		return err
	}
	log.Println("Session ended")
	return nil
}
