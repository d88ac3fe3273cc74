package output

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	w3rhttp "github.com/w3rdev/w3r/internal/http"
)

// authPlaceholder replaces Authorization values in the request trace;
// credentials never reach the terminal.
const authPlaceholder = "Basic <credentials>"

// Formatter renders the line-oriented request/response trace, the retry
// transition lines, and the timing report.
type Formatter struct {
	out    io.Writer
	scheme *ColorScheme
}

// NewFormatter creates a formatter writing to out.
func NewFormatter(out io.Writer, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{out: out, scheme: scheme}
}

// PrintRequest writes the "> " trace for an outgoing request: the request
// line, the client's default headers, then any request-level headers the
// defaults do not already cover. Each header appears exactly once.
func (f *Formatter) PrintRequest(method, url string, defaults, extra http.Header) {
	fmt.Fprintf(f.out, "> %s %s\n", f.scheme.Method.Sprint(method), url)

	for _, name := range sortedKeys(defaults) {
		f.printRequestHeader(name, defaults.Get(name))
	}
	for _, name := range sortedKeys(extra) {
		if _, ok := defaults[name]; ok {
			continue
		}
		for _, value := range extra[name] {
			f.printRequestHeader(name, value)
		}
	}
	fmt.Fprintln(f.out)
}

func (f *Formatter) printRequestHeader(name, value string) {
	if http.CanonicalHeaderKey(name) == "Authorization" {
		value = authPlaceholder
	}
	fmt.Fprintf(f.out, "> %s: %s\n", f.scheme.HeaderKey.Sprint(name), value)
}

// PrintResponse writes the "< " trace for a received response: the status
// line followed by every response header.
func (f *Formatter) PrintResponse(resp *w3rhttp.Response) {
	statusColor := f.scheme.StatusError
	switch {
	case resp.IsSuccess():
		statusColor = f.scheme.StatusOK
	case resp.IsRedirect():
		statusColor = f.scheme.StatusWarn
	}
	fmt.Fprintf(f.out, "< %s %s\n", resp.Proto, statusColor.Sprint(resp.Status))

	for _, name := range sortedKeys(resp.Headers) {
		for _, value := range resp.Headers[name] {
			fmt.Fprintf(f.out, "< %s: %s\n", f.scheme.HeaderKey.Sprint(name), value)
		}
	}
	fmt.Fprintln(f.out)
}

// PrintAttemptBanner announces a retry attempt; n is the retry number,
// starting at 1 for the second attempt.
func (f *Formatter) PrintAttemptBanner(n int) {
	fmt.Fprintln(f.out, f.scheme.Section.Sprintf("--- Retry Attempt %d ---", n))
}

// PrintRetryStatus reports a retryable status code before the backoff wait.
func (f *Formatter) PrintRetryStatus(status int, delay time.Duration) {
	fmt.Fprintf(f.out, "HTTP %d - retrying after delay...\n", status)
}

// PrintRetryError reports a transport error before the backoff wait.
func (f *Formatter) PrintRetryError(err error, delay time.Duration) {
	fmt.Fprintf(f.out, "Request error: %v - retrying after delay...\n", err)
}

func sortedKeys(h http.Header) []string {
	keys := make([]string, 0, len(h))
	for name := range h {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
