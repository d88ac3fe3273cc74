package http

import (
	"net/http"
	"time"
)

// UserAgent is sent with every request unless overridden by an explicit
// header.
const UserAgent = "w3r/1.0"

// Defaults applied when the caller does not say otherwise.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryDelay = time.Second
)

// backoffMultiplier doubles the wait on every retry.
const backoffMultiplier = 2

// Policy controls how many times a request is attempted and how long the
// engine waits between attempts.
type Policy struct {
	// Retries is the number of retries after the first attempt; the engine
	// makes Retries+1 attempts in total.
	Retries int

	// BaseDelay is the wait before the second attempt. Each further wait
	// doubles the previous one.
	BaseDelay time.Duration

	// MaxDelay caps the backoff wait when greater than zero. The zero value
	// keeps the exponential growth unbounded.
	MaxDelay time.Duration
}

// Backoff returns the wait inserted before attempt n+1, where n is the
// number of attempts already made (1-based).
func (p Policy) Backoff(n int) time.Duration {
	d := p.BaseDelay
	for i := 1; i < n; i++ {
		d *= backoffMultiplier
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

// retryableStatus reports whether a status code signals a transient
// server-side condition: any 5xx, 429 Too Many Requests, or 408 Request
// Timeout. Every other status is terminal, whatever its class.
func retryableStatus(code int) bool {
	if code >= 500 && code <= 599 {
		return true
	}
	return code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}
