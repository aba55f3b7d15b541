// Package repo wraps the weather client so callers get explicit success or
// failure values instead of error returns. Nothing raised by the client
// propagates past this boundary.
package repo

import (
	"context"

	"github.com/raexp917/weather-app/internal/owm"
)

// Result is a two-variant value: either Value is valid or Err is non-nil.
type Result[T any] struct {
	Value T
	Err   error
}

func Success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// OK reports whether the result is the success variant.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Fetcher is the coordinator-facing surface of the repository.
type Fetcher interface {
	CurrentByCity(ctx context.Context, city string) Result[*owm.CurrentResponse]
	CurrentByCoords(ctx context.Context, lat, lon float64) Result[*owm.CurrentResponse]
	ForecastByCity(ctx context.Context, city string) Result[*owm.ForecastResponse]
	ForecastByCoords(ctx context.Context, lat, lon float64) Result[*owm.ForecastResponse]
}

// Repository mirrors each client operation one-to-one as a Result.
type Repository struct {
	client *owm.Client
}

func New(client *owm.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) CurrentByCity(ctx context.Context, city string) Result[*owm.CurrentResponse] {
	return wrap(r.client.CurrentByCity(ctx, city))
}

func (r *Repository) CurrentByCoords(ctx context.Context, lat, lon float64) Result[*owm.CurrentResponse] {
	return wrap(r.client.CurrentByCoords(ctx, lat, lon))
}

func (r *Repository) ForecastByCity(ctx context.Context, city string) Result[*owm.ForecastResponse] {
	return wrap(r.client.ForecastByCity(ctx, city))
}

func (r *Repository) ForecastByCoords(ctx context.Context, lat, lon float64) Result[*owm.ForecastResponse] {
	return wrap(r.client.ForecastByCoords(ctx, lat, lon))
}

func wrap[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}
