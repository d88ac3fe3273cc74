package http

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
)

// Client wraps an *http.Client configured once per invocation. It is
// read-only after construction and shared by every attempt of a request.
type Client struct {
	httpClient     *http.Client
	defaultHeaders http.Header
}

type clientOptions struct {
	timeout   time.Duration
	proxy     *proxyConfig
	targetURL string
	cookies   []string
	headers   []string
}

type proxyConfig struct {
	host, port string
	user, pass string
}

// ClientOption configures a Client under construction.
type ClientOption func(*clientOptions)

// WithTimeout sets the whole-attempt timeout (connect + read).
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithProxy routes requests through an HTTP proxy at host:port. Proxy basic
// auth is attached only when both user and pass are non-empty; a partial
// credential pair is treated as no credential at all.
func WithProxy(host, port, user, pass string) ClientOption {
	return func(o *clientOptions) {
		o.proxy = &proxyConfig{host: host, port: port, user: user, pass: pass}
	}
}

// WithCookies seeds the client's cookie jar with cookie strings bound to
// the target URL's domain. A cookie that fails to parse is dropped.
func WithCookies(targetURL string, cookies []string) ClientOption {
	return func(o *clientOptions) {
		o.targetURL = targetURL
		o.cookies = cookies
	}
}

// WithHeaders adds static default headers from "Name: Value" entries.
// Entries without a colon, or with an invalid header name or value, are
// skipped.
func WithHeaders(entries []string) ClientOption {
	return func(o *clientOptions) {
		o.headers = entries
	}
}

// NewClient builds the HTTP client shared by all attempts of one request,
// along with the canonical set of default headers it attaches.
func NewClient(options ...ClientOption) (*Client, error) {
	opts := &clientOptions{timeout: DefaultTimeout}
	for _, option := range options {
		option(opts)
	}

	httpClient := &http.Client{Timeout: opts.timeout}

	if opts.proxy != nil {
		proxyURL, err := url.Parse(fmt.Sprintf("http://%s:%s", opts.proxy.host, opts.proxy.port))
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		if opts.proxy.user != "" && opts.proxy.pass != "" {
			proxyURL.User = url.UserPassword(opts.proxy.user, opts.proxy.pass)
		}
		httpClient.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	if len(opts.cookies) > 0 {
		target, err := url.Parse(opts.targetURL)
		if err != nil {
			return nil, fmt.Errorf("invalid target URL: %w", err)
		}
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		var parsed []*http.Cookie
		for _, raw := range opts.cookies {
			cookies, err := http.ParseCookie(raw)
			if err != nil {
				// One bad cookie does not abort the request.
				continue
			}
			parsed = append(parsed, cookies...)
		}
		jar.SetCookies(target, parsed)
		httpClient.Jar = jar
	}

	defaults := http.Header{}
	defaults.Set("User-Agent", UserAgent)
	for _, entry := range opts.headers {
		name, value, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !httpguts.ValidHeaderFieldName(name) || !httpguts.ValidHeaderFieldValue(value) {
			continue
		}
		defaults.Set(name, value)
	}

	return &Client{httpClient: httpClient, defaultHeaders: defaults}, nil
}

// DefaultHeaders returns the headers the client silently attaches to every
// request that does not set them itself. Callers rendering a request trace
// use this set to avoid printing the same header twice.
func (c *Client) DefaultHeaders() http.Header {
	return c.defaultHeaders
}
