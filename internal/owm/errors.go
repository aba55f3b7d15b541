package owm

import "fmt"

// ConfigError means the API credential is missing or empty. The request is
// never attempted.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// APIError is a non-2xx (or soft-error) response from OpenWeatherMap, carrying
// the HTTP status and the best available upstream message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

// NetworkError is a transport-level failure: no route, DNS failure, timeout.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RequestError is a failure to construct the outgoing request itself. It is a
// separate path from APIError: nothing ever reached the upstream service.
type RequestError struct {
	Operation string
	Err       error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request error during %s: %v", e.Operation, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
