package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/raexp917/weather-app/internal/api"
	"github.com/raexp917/weather-app/internal/app"
	"github.com/raexp917/weather-app/internal/location"
	"github.com/raexp917/weather-app/internal/owm"
	"github.com/raexp917/weather-app/internal/repo"
	"github.com/raexp917/weather-app/internal/sensor"
)

var cli struct {
	APIKey string `name:"api-key" env:"OWM_API_KEY" help:"OpenWeatherMap API key."`
	Port   string `env:"PORT" default:"8080" help:"HTTP server port."`

	City string  `env:"WEATHER_CITY" help:"City fetched at startup; coordinates are used when empty."`
	Lat  float64 `env:"WEATHER_LAT" default:"37.9838" help:"Location-fix latitude."`
	Lon  float64 `env:"WEATHER_LON" default:"23.7275" help:"Location-fix longitude."`

	NoFetch bool `help:"Skip the startup fetch (server only, for local dev)."`

	SensorInterval time.Duration `env:"SENSOR_INTERVAL" default:"5s" help:"Simulated barometer reading interval."`
	SensorPressure float64       `env:"SENSOR_PRESSURE" default:"1013.25" help:"Simulated barometer base pressure in hPa."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("weather-app"),
		kong.Description("Current weather and 5-day forecast service backed by OpenWeatherMap."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	if cli.APIKey == "" {
		// A missing key is fatal to each fetch, not to the app: every fetch
		// will publish a configuration error instead.
		log.Println("warning: no API key configured, fetches will fail until OWM_API_KEY is set")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := owm.NewClient(cli.APIKey)
	coord := app.New(repo.New(client))
	locator := location.NewStatic(cli.Lat, cli.Lon)

	barometer := sensor.NewSimulated(cli.SensorPressure, cli.SensorInterval)
	defer barometer.Close()
	monitor := sensor.NewMonitor()
	go monitor.Run(ctx, barometer)

	// Log fetch outcomes as they are published.
	states, unsubscribe := coord.Subscribe()
	defer unsubscribe()
	go func() {
		for st := range states {
			switch {
			case st.Loading:
				log.Println("fetch started")
			case st.Err.IsError():
				log.Printf("fetch failed: %s (%s)", st.Err.Message, st.Err.Kind)
			case st.Snapshot != nil:
				log.Printf("weather updated: %s, %d forecast days", st.Snapshot.City, len(st.Forecast))
			}
		}
	}()

	if !cli.NoFetch {
		if cli.City != "" {
			coord.FetchByCity(ctx, cli.City)
		} else if fix, err := locator.CurrentFix(ctx); err == nil {
			coord.FetchByCoords(ctx, fix.Latitude, fix.Longitude)
		}
	}

	server := api.NewServer(coord, monitor, locator, cli.Port)
	log.Printf("starting server on :%s", cli.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
