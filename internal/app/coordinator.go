// Package app holds the application state coordinator: a single-writer state
// container that runs current-weather and forecast fetches, classifies their
// failures, and fans the resulting AppState out to subscribers.
package app

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/raexp917/weather-app/internal/forecast"
	"github.com/raexp917/weather-app/internal/metrics"
	"github.com/raexp917/weather-app/internal/models"
	"github.com/raexp917/weather-app/internal/owm"
	"github.com/raexp917/weather-app/internal/repo"
)

// forecastSuccessCod is the forecast endpoint's success marker; the endpoint
// reports its status as a string, unlike the current-conditions endpoint.
const forecastSuccessCod = "200"

type Coordinator struct {
	fetcher repo.Fetcher

	mu      sync.Mutex
	state   models.AppState
	subs    map[int]chan models.AppState
	nextSub int

	// Generation counters per fetch kind. A response arriving for a
	// superseded generation is discarded, so a stale fetch can never
	// overwrite a newer one.
	currentGen  uint64
	forecastGen uint64
}

func New(fetcher repo.Fetcher) *Coordinator {
	return &Coordinator{
		fetcher: fetcher,
		state:   models.AppState{Forecast: []models.DayBucket{}},
		subs:    make(map[int]chan models.AppState),
	}
}

// State returns the last published state.
func (c *Coordinator) State() models.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers a listener for every published state. The channel is
// buffered; a subscriber that falls behind skips intermediate states rather
// than blocking the publisher. The returned func cancels the subscription.
func (c *Coordinator) Subscribe() (<-chan models.AppState, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan models.AppState, 16)
	c.subs[id] = ch

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// FetchByCity starts a current-weather fetch and a forecast fetch for a city
// name. Prior snapshot and forecast are cleared before the calls are issued.
func (c *Coordinator) FetchByCity(ctx context.Context, city string) {
	curGen, fcGen := c.begin()
	go c.runCurrent(curGen, func() repo.Result[*owm.CurrentResponse] {
		return c.fetcher.CurrentByCity(ctx, city)
	})
	go c.runForecast(fcGen, func() repo.Result[*owm.ForecastResponse] {
		return c.fetcher.ForecastByCity(ctx, city)
	})
}

// FetchByCoords is FetchByCity for a latitude/longitude pair.
func (c *Coordinator) FetchByCoords(ctx context.Context, lat, lon float64) {
	curGen, fcGen := c.begin()
	go c.runCurrent(curGen, func() repo.Result[*owm.CurrentResponse] {
		return c.fetcher.CurrentByCoords(ctx, lat, lon)
	})
	go c.runForecast(fcGen, func() repo.Result[*owm.ForecastResponse] {
		return c.fetcher.ForecastByCoords(ctx, lat, lon)
	})
}

// begin resets the published state for a new fetch pair and bumps both
// generations so in-flight responses from older fetches are discarded.
func (c *Coordinator) begin() (curGen, fcGen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentGen++
	c.forecastGen++
	c.state = models.AppState{
		Loading:  true,
		Forecast: []models.DayBucket{},
	}
	c.publishLocked()
	return c.currentGen, c.forecastGen
}

func (c *Coordinator) runCurrent(gen uint64, fetch func() repo.Result[*owm.CurrentResponse]) {
	res := fetch()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.currentGen {
		metrics.FetchesTotal.WithLabelValues("current", "stale").Inc()
		return
	}

	// Loading tracks the current-weather fetch only; the forecast fetch may
	// still be in flight after this clears.
	c.state.Loading = false

	switch {
	case !res.OK():
		c.state.Snapshot = nil
		c.state.Err = Classify(res.Err)
		metrics.FetchesTotal.WithLabelValues("current", "error").Inc()
	default:
		snap := res.Value.Snapshot()
		if snap.Cod == 200 {
			c.state.Snapshot = &snap
			c.state.Err = models.FetchError{}
			metrics.FetchesTotal.WithLabelValues("current", "success").Inc()
		} else {
			// Soft API error: the 2xx body itself reports a failure status.
			c.state.Snapshot = nil
			c.state.Err = models.FetchError{
				Kind:    models.ErrAPI,
				Status:  snap.Cod,
				Message: softMessage(snap.Message, snap.Cod),
			}
			metrics.FetchesTotal.WithLabelValues("current", "soft_error").Inc()
		}
	}
	c.publishLocked()
}

func (c *Coordinator) runForecast(gen uint64, fetch func() repo.Result[*owm.ForecastResponse]) {
	res := fetch()

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.forecastGen {
		metrics.FetchesTotal.WithLabelValues("forecast", "stale").Inc()
		return
	}

	switch {
	case !res.OK():
		// Never show stale buckets next to an error. The current snapshot,
		// if already displayed, stays.
		c.state.Forecast = []models.DayBucket{}
		c.state.Err = Classify(res.Err)
		metrics.FetchesTotal.WithLabelValues("forecast", "error").Inc()
	case res.Value.Cod == forecastSuccessCod && res.Value.List != nil:
		c.state.Forecast = forecast.Group(res.Value.Samples(), res.Value.City.Timezone)
		metrics.FetchesTotal.WithLabelValues("forecast", "success").Inc()
	default:
		status, _ := strconv.Atoi(res.Value.Cod)
		c.state.Forecast = []models.DayBucket{}
		c.state.Err = models.FetchError{
			Kind:    models.ErrAPI,
			Status:  status,
			Message: softMessage(messageString(res.Value.Message), status),
		}
		metrics.FetchesTotal.WithLabelValues("forecast", "soft_error").Inc()
	}
	c.publishLocked()
}

// publishLocked replaces the published state as a single value and offers it
// to every subscriber. Callers hold c.mu.
func (c *Coordinator) publishLocked() {
	for _, ch := range c.subs {
		select {
		case ch <- c.state:
		default:
		}
	}
}

// Classify maps a repository failure onto the FetchError taxonomy.
func Classify(err error) models.FetchError {
	var cfgErr *owm.ConfigError
	var apiErr *owm.APIError
	var netErr *owm.NetworkError
	var reqErr *owm.RequestError

	switch {
	case errors.As(err, &cfgErr):
		return models.FetchError{Kind: models.ErrConfig, Message: cfgErr.Reason}
	case errors.As(err, &apiErr):
		return models.FetchError{Kind: models.ErrAPI, Status: apiErr.Status, Message: apiErr.Message}
	case errors.As(err, &netErr):
		return models.FetchError{Kind: models.ErrNetwork, Message: err.Error()}
	case errors.As(err, &reqErr):
		return models.FetchError{Kind: models.ErrRequest, Message: err.Error()}
	default:
		return models.FetchError{Kind: models.ErrGeneric, Message: err.Error()}
	}
}

func softMessage(msg string, status int) string {
	if msg != "" {
		return msg
	}
	return "upstream reported status " + strconv.Itoa(status)
}

// messageString normalizes the forecast endpoint's message field, which is a
// number on success and a string on failure.
func messageString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
