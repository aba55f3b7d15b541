// Package httputil holds the shared outbound HTTP client configuration.
package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every upstream call; there is no per-request retry
// policy on top of it.
const DefaultTimeout = 30 * time.Second

// NewClient returns an HTTP client with the standard timeout applied.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
	}
}
