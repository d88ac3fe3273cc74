package http

import (
	"testing"
	"time"
)

func TestPolicy_BackoffDoubles(t *testing.T) {
	policy := Policy{Retries: 4, BaseDelay: 100 * time.Millisecond}

	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
	}
	for i, expected := range want {
		if got := policy.Backoff(i + 1); got != expected {
			t.Errorf("Backoff(%d) = %v, want %v", i+1, got, expected)
		}
	}
}

func TestPolicy_BackoffCapOptIn(t *testing.T) {
	policy := Policy{BaseDelay: time.Second, MaxDelay: 3 * time.Second}

	if got := policy.Backoff(1); got != time.Second {
		t.Errorf("Backoff(1) = %v, want 1s", got)
	}
	if got := policy.Backoff(4); got != 3*time.Second {
		t.Errorf("Backoff(4) = %v, want capped at 3s", got)
	}

	// No cap by default: growth is unbounded.
	uncapped := Policy{BaseDelay: time.Second}
	if got := uncapped.Backoff(10); got != 512*time.Second {
		t.Errorf("Backoff(10) = %v, want 512s", got)
	}
}

func TestRetryableStatus(t *testing.T) {
	for _, code := range []int{500, 503, 599, 429, 408} {
		if !retryableStatus(code) {
			t.Errorf("retryableStatus(%d) = false, want true", code)
		}
	}
	for _, code := range []int{200, 201, 301, 304, 400, 401, 404, 409, 418, 499, 600} {
		if retryableStatus(code) {
			t.Errorf("retryableStatus(%d) = true, want false", code)
		}
	}
}
