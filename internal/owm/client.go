// Package owm is a thin read-only client for the OpenWeatherMap REST API:
// current conditions and the 5-day/3-hour forecast, addressable by city name
// or by coordinates. Failures are reported through a small typed taxonomy
// (ConfigError, NetworkError, APIError, RequestError) so callers can classify
// them without string matching.
package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/raexp917/weather-app/internal/httputil"
	"github.com/raexp917/weather-app/internal/metrics"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  httputil.NewClient(),
	}
}

// SetBaseURL overrides the upstream base URL (used by tests).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// CurrentByCity fetches current conditions for a city name.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*CurrentResponse, error) {
	params := url.Values{}
	params.Set("q", city)
	var out CurrentResponse
	if err := c.get(ctx, "weather", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentByCoords fetches current conditions for a latitude/longitude pair.
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64) (*CurrentResponse, error) {
	var out CurrentResponse
	if err := c.get(ctx, "weather", coordParams(lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForecastByCity fetches the 5-day/3-hour forecast for a city name.
func (c *Client) ForecastByCity(ctx context.Context, city string) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("q", city)
	var out ForecastResponse
	if err := c.get(ctx, "forecast", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForecastByCoords fetches the 5-day/3-hour forecast for a coordinate pair.
func (c *Client) ForecastByCoords(ctx context.Context, lat, lon float64) (*ForecastResponse, error) {
	var out ForecastResponse
	if err := c.get(ctx, "forecast", coordParams(lat, lon), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return params
}

// get performs a single request attempt. No retries, no caching.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.apiKey == "" {
		return &ConfigError{Reason: "missing OpenWeatherMap API key"}
	}

	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &RequestError{Operation: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APICallsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return &NetworkError{Operation: endpoint, Err: err}
	}
	defer resp.Body.Close()

	metrics.APICallsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Operation: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: upstreamMessage(body, resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// upstreamMessage extracts the message from a structured error body, falling
// back to a generic description when the body is not decodable.
func upstreamMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(status)
}
