package config

import "time"

// Built-in defaults, overridden first by a preset and then by explicit
// flags.
const (
	DefaultMethod     = "GET"
	DefaultTimeout    = 30 * time.Second
	DefaultRetry      = 0
	DefaultRetryDelay = time.Second
)

// BasicAuth holds an HTTP Basic credential pair.
type BasicAuth struct {
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
}

// Proxy describes an HTTP proxy target with optional credentials. The
// credentials only take effect when both User and Pass are set.
type Proxy struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
}

// Spec is the fully merged request specification consumed by the engine.
// It is built once per invocation and read-only afterwards.
type Spec struct {
	URL        string   `koanf:"url" validate:"required,url"`
	Method     string   `koanf:"method" validate:"required"`
	Headers    []string `koanf:"headers"`
	Cookies    []string `koanf:"cookies"`
	FormData   string   `koanf:"form_data"`
	Form       []string `koanf:"form"`
	JSON       string   `koanf:"json"`
	JSONFilter string   `koanf:"json_filter"`

	BasicAuth *BasicAuth `koanf:"basic_auth"`
	Proxy     *Proxy     `koanf:"proxy"`

	Timeout       time.Duration `koanf:"timeout" validate:"gt=0"`
	Retry         int           `koanf:"retry" validate:"gte=0"`
	RetryDelay    time.Duration `koanf:"retry_delay" validate:"gte=0"`
	MaxRetryDelay time.Duration `koanf:"max_retry_delay" validate:"gte=0"`

	Output     string `koanf:"output"`
	PrettyJSON bool   `koanf:"pretty_json"`
	Timing     bool   `koanf:"timing"`
	Verbose    bool   `koanf:"verbose"`
	Silent     bool   `koanf:"silent"`
	DryRun     bool   `koanf:"dry_run"`
}

// Default returns a Spec populated with the built-in defaults.
func Default() *Spec {
	return &Spec{
		Method:     DefaultMethod,
		Timeout:    DefaultTimeout,
		Retry:      DefaultRetry,
		RetryDelay: DefaultRetryDelay,
	}
}
