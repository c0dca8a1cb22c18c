package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultWeatherAPIURL is the OpenWeatherMap current conditions endpoint
const DefaultWeatherAPIURL = "http://api.openweathermap.org/data/2.5/weather"

// Config holds application configuration loaded from YAML and env.
type Config struct {
	WeatherAPIKey     string
	WeatherAPIURL     string
	WeatherAPITimeout time.Duration // zero keeps the transport default

	LogLevel string
}

type fileConfig struct {
	WeatherAPI struct {
		URL     string `yaml:"url"`
		Key     string `yaml:"key"`
		Timeout string `yaml:"timeout"`
	} `yaml:"weather_api"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load parses data and applies WEATHER_API_KEY, WEATHER_API_URL and
// LOG_LEVEL from the environment on top of it. fallbackKey is used when
// neither the environment nor data provides an API key.
func Load(data []byte, fallbackKey string) (*Config, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(os.Getenv("WEATHER_API_KEY")); v != "" {
		cfg.WeatherAPIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("WEATHER_API_URL")); v != "" {
		cfg.WeatherAPIURL = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if cfg.WeatherAPIKey == "" {
		cfg.WeatherAPIKey = strings.TrimSpace(fallbackKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg := &Config{
		WeatherAPIKey: strings.TrimSpace(fc.WeatherAPI.Key),
		WeatherAPIURL: strings.TrimSpace(fc.WeatherAPI.URL),
		LogLevel:      strings.TrimSpace(fc.Log.Level),
	}
	if cfg.WeatherAPIURL == "" {
		cfg.WeatherAPIURL = DefaultWeatherAPIURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	timeout, err := parseDuration(fc.WeatherAPI.Timeout)
	if err != nil {
		return nil, fmt.Errorf("weather_api.timeout: %w", err)
	}
	cfg.WeatherAPITimeout = timeout

	return cfg, nil
}

// Validate checks that required values are present.
func (c *Config) Validate() error {
	if c.WeatherAPIKey == "" {
		return fmt.Errorf("WEATHER_API_KEY required (set env, weather_api.key or the %s preference)", KeyAPIKey)
	}
	if !strings.HasPrefix(c.WeatherAPIURL, "http://") && !strings.HasPrefix(c.WeatherAPIURL, "https://") {
		return fmt.Errorf("weather_api.url must start with http:// or https://, got %q", c.WeatherAPIURL)
	}
	if c.WeatherAPITimeout < 0 {
		return fmt.Errorf("weather_api.timeout must not be negative")
	}
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
