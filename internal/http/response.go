package http

import (
	"net/http"
	"time"
)

// Timing captures the three measurement windows for one completed request:
// time to the terminal attempt's status line, time to read the body, and
// total wall clock from the start of the very first attempt.
type Timing struct {
	Response time.Duration
	BodyRead time.Duration
	Total    time.Duration
}

// Response records the terminal outcome of the retry loop with its body
// fully read into memory.
type Response struct {
	StatusCode int
	Status     string
	Proto      string
	Headers    http.Header
	Timing     Timing

	body []byte
}

// Body returns the raw response body bytes.
func (r *Response) Body() []byte {
	return r.body
}

// Size returns the response body size in bytes.
func (r *Response) Size() int {
	return len(r.body)
}

// GetHeader returns the value of the named response header.
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// IsSuccess returns true if the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the status code is in the 3xx range.
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the status code is in the 5xx range.
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}
