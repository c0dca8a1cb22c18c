package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/svarj/WeatherMe/internal/model"
	"github.com/svarj/WeatherMe/internal/observability"
)

// Fetcher is implemented by anything that can look up the weather for a city.
type Fetcher interface {
	FetchWeather(ctx context.Context, city string) (*model.WeatherRecord, error)
}

var (
	// ErrNotFound means the provider answered with a cod other than 200.
	ErrNotFound = errors.New("place not found")
	// ErrMalformed means the body was not valid JSON or lacked a required field.
	ErrMalformed = errors.New("malformed response")
	// ErrTransport means the request could not be built, sent or read.
	ErrTransport = errors.New("transport failure")
)

// APIKeyHeader carries the static API key.
const APIKeyHeader = "x-api-key"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets an overall request timeout. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = observability.OrNop(logger)
	}
}

// NewClient creates a client bound to apiKey and apiURL.
func NewClient(apiKey, apiURL string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("weather client: API key is required")
	}
	if _, err := url.Parse(apiURL); err != nil {
		return nil, fmt.Errorf("weather client: invalid API URL: %w", err)
	}

	c := &Client{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{},
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchWeather performs one GET for city and returns the decoded record.
// On any failure the record is nil and the error wraps ErrNotFound,
// ErrMalformed or ErrTransport.
func (c *Client) FetchWeather(ctx context.Context, city string) (*model.WeatherRecord, error) {
	start := c.now()
	record, err := c.fetch(ctx, city)
	elapsed := c.now().Sub(start)

	outcome := outcomeOf(err)
	observability.RecordAPICall(outcome, elapsed.Seconds())

	if err != nil {
		c.logger.Warn("weather lookup failed",
			zap.String("city", city),
			zap.String("outcome", outcome),
			zap.Duration("duration", elapsed),
			zap.Error(err))
		return nil, err
	}

	c.logger.Debug("weather lookup succeeded",
		zap.String("city", city),
		zap.String("name", record.CityName),
		zap.Int("condition_id", record.ConditionID),
		zap.Duration("duration", elapsed))
	return record, nil
}

func (c *Client) fetch(ctx context.Context, city string) (*model.WeatherRecord, error) {
	req, err := c.buildRequest(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http request failed: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", ErrTransport, err)
	}

	return parseResponse(body)
}

func (c *Client) buildRequest(ctx context.Context, city string) (*http.Request, error) {
	baseURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	params := baseURL.Query()
	params.Set("q", city)
	params.Set("units", "metric")
	baseURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// parseResponse decodes body into a record. The cod field decides success,
// not the HTTP status line.
func parseResponse(body []byte) (*model.WeatherRecord, error) {
	var apiResp openWeatherResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrMalformed, err)
	}

	if !apiResp.Cod.set {
		return nil, fmt.Errorf("%w: missing field cod", ErrMalformed)
	}
	if apiResp.Cod.value != 200 {
		if apiResp.Message != "" {
			return nil, fmt.Errorf("%w: cod %v: %s", ErrNotFound, apiResp.Cod.value, apiResp.Message)
		}
		return nil, fmt.Errorf("%w: cod %v", ErrNotFound, apiResp.Cod.value)
	}

	if field := apiResp.missingField(); field != "" {
		return nil, fmt.Errorf("%w: missing field %s", ErrMalformed, field)
	}

	return mapResponse(&apiResp), nil
}

func mapResponse(r *openWeatherResponse) *model.WeatherRecord {
	return &model.WeatherRecord{
		CityName:           *r.Name,
		CountryCode:        *r.Sys.Country,
		ConditionID:        *r.Weather[0].ID,
		Description:        *r.Weather[0].Description,
		Humidity:           r.Main.Humidity.value,
		Pressure:           r.Main.Pressure.value,
		TemperatureCelsius: *r.Main.Temp,
		ObservedAt:         *r.Dt,
		SunriseMillis:      *r.Sys.Sunrise * 1000,
		SunsetMillis:       *r.Sys.Sunset * 1000,
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeFound
	case errors.Is(err, ErrNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, ErrMalformed):
		return observability.OutcomeMalformed
	default:
		return observability.OutcomeTransport
	}
}
