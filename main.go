package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/svarj/WeatherMe/internal/config"
	"github.com/svarj/WeatherMe/internal/lookup"
	"github.com/svarj/WeatherMe/internal/observability"
	"github.com/svarj/WeatherMe/internal/ui"
	"github.com/svarj/WeatherMe/internal/weather"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.svarj.weatherme"
	AppName = "WeatherMe"

	WindowWidth  = 420
	WindowHeight = 640

	shutdownTimeout = 5 * time.Second
)

//go:embed weatherme.yaml
var defaultConfig []byte

func main() {
	logger, err := observability.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewWeatherTheme())
	myApp.SetIcon(ui.LoadLogoResource())

	// The key comes from the environment, the embedded YAML filled in at
	// build time, or the stored preference, in that order.
	cfg, err := config.Load(defaultConfig, config.NewSettings(myApp).GetAPIKey())
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	if cfgLogger, err := observability.NewLogger(cfg.LogLevel); err == nil {
		_ = logger.Sync()
		logger = cfgLogger
	}

	logger.Info("weatherme starting",
		zap.String("version", version),
		zap.String("weather_api_url", cfg.WeatherAPIURL),
		zap.Duration("weather_api_timeout", cfg.WeatherAPITimeout),
	)

	client, err := weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherAPIURL,
		weather.WithTimeout(cfg.WeatherAPITimeout),
		weather.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("weather client", zap.Error(err))
	}
	lookupSvc := lookup.NewService(client, logger)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewWeatherView(myWindow, myApp, lookupSvc, logger)

	myWindow.ShowAndRun()

	lookupSvc.Wait()
	if snapshot, err := observability.Snapshot(); err == nil {
		logger.Info("weatherme stopped", zap.Any("metrics", snapshot))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = observability.Flush(ctx, logger)
}
