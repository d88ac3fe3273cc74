package http

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Hooks receives notifications from the retry loop. All fields are
// optional. The retry hooks fire before the backoff wait, so a verbose UI
// can report the transition while the engine sleeps.
type Hooks struct {
	// OnAttempt fires at the start of every attempt after the first; n is
	// the retry number, starting at 1.
	OnAttempt func(n int)

	// OnRetryStatus fires when a retryable status code schedules another
	// attempt.
	OnRetryStatus func(status int, delay time.Duration)

	// OnRetryError fires when a transport error schedules another attempt.
	OnRetryError func(err error, delay time.Duration)
}

// Execute runs the request through the retry loop and returns the terminal
// response with its body read and timed.
//
// The engine makes policy.Retries+1 attempts, one at a time. A transport
// error or a retryable status (any 5xx, 429, 408) schedules another attempt
// after an exponential backoff; every other status is terminal, whatever
// its class. The backoff wait honors ctx cancellation. A transport error on
// the last attempt is returned as-is.
func (c *Client) Execute(ctx context.Context, req *Request, policy Policy, hooks Hooks) (*Response, error) {
	maxAttempts := policy.Retries + 1
	overallStart := time.Now()

	for attempt := 1; ; attempt++ {
		if attempt > 1 && hooks.OnAttempt != nil {
			hooks.OnAttempt(attempt - 1)
		}

		httpReq, err := req.Materialize(ctx)
		if err != nil {
			return nil, err
		}
		for name, values := range c.defaultHeaders {
			if _, ok := httpReq.Header[name]; !ok {
				httpReq.Header[name] = values
			}
		}

		attemptStart := time.Now()
		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if attempt < maxAttempts {
				delay := policy.Backoff(attempt)
				if hooks.OnRetryError != nil {
					hooks.OnRetryError(err, delay)
				}
				if err := wait(ctx, delay); err != nil {
					return nil, err
				}
				continue
			}
			return nil, err
		}

		if retryableStatus(resp.StatusCode) && attempt < maxAttempts {
			resp.Body.Close()
			delay := policy.Backoff(attempt)
			if hooks.OnRetryStatus != nil {
				hooks.OnRetryStatus(resp.StatusCode, delay)
			}
			if err := wait(ctx, delay); err != nil {
				return nil, err
			}
			continue
		}

		// Terminal outcome: capture the status line and headers, then time
		// the body read separately.
		responseTime := time.Since(attemptStart)

		bodyStart := time.Now()
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}

		return &Response{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Proto:      resp.Proto,
			Headers:    resp.Header,
			body:       body,
			Timing: Timing{
				Response: responseTime,
				BodyRead: time.Since(bodyStart),
				Total:    time.Since(overallStart),
			},
		}, nil
	}
}

// wait blocks for the backoff delay or until ctx is done.
func wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
