package output

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	w3rhttp "github.com/w3rdev/w3r/internal/http"
)

func TestFormatter_PrintRequest(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	defaults := http.Header{}
	defaults.Set("User-Agent", "w3r/1.0")
	defaults.Set("Accept", "application/json")

	extra := http.Header{}
	extra.Set("Content-Type", "application/json; charset=utf-8")
	// Also present in defaults; must not be printed twice.
	extra.Set("Accept", "application/json")

	f.PrintRequest("POST", "https://example.com/users", defaults, extra)
	got := buf.String()

	if !strings.HasPrefix(got, "> POST https://example.com/users\n") {
		t.Errorf("missing request line:\n%s", got)
	}
	if !strings.Contains(got, "> User-Agent: w3r/1.0\n") {
		t.Errorf("missing default header:\n%s", got)
	}
	if !strings.Contains(got, "> Content-Type: application/json; charset=utf-8\n") {
		t.Errorf("missing request header:\n%s", got)
	}
	if strings.Count(got, "> Accept: application/json\n") != 1 {
		t.Errorf("overlapping header printed more than once:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("trace does not end with a blank line:\n%q", got)
	}
}

func TestFormatter_AuthorizationRedacted(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	extra := http.Header{}
	extra.Set("Authorization", "Basic dXNlcjpwYXNz")

	f.PrintRequest("GET", "https://example.com", http.Header{}, extra)
	got := buf.String()

	if strings.Contains(got, "dXNlcjpwYXNz") {
		t.Errorf("credential leaked into trace:\n%s", got)
	}
	if !strings.Contains(got, "> Authorization: Basic <credentials>\n") {
		t.Errorf("missing redaction placeholder:\n%s", got)
	}
}

func TestFormatter_PrintResponse(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	resp := &w3rhttp.Response{
		StatusCode: 200,
		Status:     "200 OK",
		Proto:      "HTTP/1.1",
		Headers: http.Header{
			"Content-Type": []string{"text/plain"},
		},
	}
	f.PrintResponse(resp)
	got := buf.String()

	if !strings.HasPrefix(got, "< HTTP/1.1 200 OK\n") {
		t.Errorf("missing status line:\n%s", got)
	}
	if !strings.Contains(got, "< Content-Type: text/plain\n") {
		t.Errorf("missing response header:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("trace does not end with a blank line:\n%q", got)
	}
}

func TestFormatter_RetryLines(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	f.PrintAttemptBanner(1)
	f.PrintRetryStatus(503, time.Second)
	f.PrintRetryError(errors.New("connection refused"), time.Second)

	got := buf.String()
	want := "--- Retry Attempt 1 ---\n" +
		"HTTP 503 - retrying after delay...\n" +
		"Request error: connection refused - retrying after delay...\n"
	if got != want {
		t.Errorf("retry lines = %q, want %q", got, want)
	}
}

func TestFormatter_PrintTiming(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	timing := w3rhttp.Timing{
		Response: 120 * time.Millisecond,
		BodyRead: 30 * time.Millisecond,
		Total:    time.Second,
	}
	f.PrintTiming(timing, 2048)
	got := buf.String()

	for _, line := range []string{
		"--- Timing Information ---\n",
		"Response received: 120ms\n",
		"Body read time: 30ms\n",
		"Total time: 1s\n",
		"Response size: 2048 bytes (2.00 KB)\n",
		"Throughput: 2.00 KB/s\n",
	} {
		if !strings.Contains(got, line) {
			t.Errorf("timing report missing %q:\n%s", line, got)
		}
	}
}

func TestFormatter_ThroughputOmittedForEmptyBody(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf, true)

	f.PrintTiming(w3rhttp.Timing{Total: time.Second}, 0)
	got := buf.String()

	if strings.Contains(got, "Throughput") {
		t.Errorf("throughput printed for empty body:\n%s", got)
	}
	if !strings.Contains(got, "Response size: 0 bytes (0.00 KB)\n") {
		t.Errorf("size line missing:\n%s", got)
	}
}
