// Package http implements the request execution engine: a transport-
// configured client built once per invocation, an immutable request
// descriptor that is re-materialized for every attempt, and a retry loop
// with exponential backoff between attempts.
//
// Basic usage:
//
//	client, err := http.NewClient(
//	    http.WithTimeout(30*time.Second),
//	    http.WithHeaders([]string{"Accept: application/json"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req, err := http.NewRequest("GET", "https://api.example.com/users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Execute(ctx, req, http.Policy{
//	    Retries:   3,
//	    BaseDelay: time.Second,
//	}, http.Hooks{})
//
// A transport error or a retryable status (5xx, 429, 408) triggers another
// attempt until the retry budget is spent; the delay before attempt n+1 is
// BaseDelay*2^(n-1). Every other status is terminal on first sight.
package http
