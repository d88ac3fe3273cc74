package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json; charset=utf-8"
)

// ErrUnknownMethod is returned for a method outside the supported set.
var ErrUnknownMethod = errors.New("unknown HTTP method")

// Request is an immutable request descriptor. It carries everything needed
// to materialize a transport-level request, so every retry attempt gets a
// fresh, logically identical *http.Request with its own body reader.
type Request struct {
	Method string
	URL    string
	Header http.Header
	body   []byte
}

// NewRequest builds a request descriptor for the given method and URL. The
// method must be exactly one of GET, POST, PUT, DELETE, HEAD or PATCH.
func NewRequest(method, rawURL string) (*Request, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodDelete, http.MethodHead, http.MethodPatch:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	if _, err := url.Parse(rawURL); err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	return &Request{Method: method, URL: rawURL, Header: http.Header{}}, nil
}

// WithBasicAuth attaches an HTTP Basic credential to the request itself,
// not the proxy.
func (r *Request) WithBasicAuth(user, pass string) *Request {
	credential := base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
	r.Header.Set("Authorization", "Basic "+credential)
	return r
}

// ApplyBody applies the first body variant present, in precedence order:
// raw form data, then form fields, then JSON. At most one variant takes
// effect.
func (r *Request) ApplyBody(formData string, form []string, jsonPayload string) error {
	switch {
	case formData != "":
		r.WithFormData(formData)
	case len(form) > 0:
		r.WithForm(form)
	case jsonPayload != "":
		return r.WithJSON(jsonPayload)
	}
	return nil
}

// WithFormData sets a raw, pre-encoded form body sent verbatim.
func (r *Request) WithFormData(body string) *Request {
	r.Header.Set("Content-Type", contentTypeForm)
	r.body = []byte(body)
	return r
}

// WithForm URL-encodes "key=value" entries into a form body. Entries
// without a '=' are dropped.
func (r *Request) WithForm(fields []string) *Request {
	values := url.Values{}
	for _, field := range fields {
		if key, value, ok := strings.Cut(field, "="); ok {
			values.Add(key, value)
		}
	}
	r.Header.Set("Content-Type", contentTypeForm)
	r.body = []byte(values.Encode())
	return r
}

// WithJSON sets a JSON request body. The payload must be valid JSON.
func (r *Request) WithJSON(payload string) error {
	if !gjson.Valid(payload) {
		return fmt.Errorf("invalid JSON body: %s", payload)
	}
	r.Header.Set("Content-Type", contentTypeJSON)
	r.body = []byte(payload)
	return nil
}

// Body returns the request body bytes, or nil when the request has none.
func (r *Request) Body() []byte {
	return r.body
}

// Materialize builds a fresh transport-level request from the descriptor.
// net/http consumes a request body on send, so the engine calls this once
// per attempt instead of re-sending a spent request.
func (r *Request) Materialize(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}
	for name, values := range r.Header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	return req, nil
}
