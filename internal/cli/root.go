package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/w3rdev/w3r/internal/config"
	w3rhttp "github.com/w3rdev/w3r/internal/http"
	"github.com/w3rdev/w3r/internal/output"
)

var version = "1.0.0"

// RootCmd is the single w3r command: issue one HTTP request, optionally
// retrying on transient failure, and render the response.
var RootCmd = NewRootCmd()

// NewRootCmd builds the w3r command with its full flag surface.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "w3r [URL]",
		Short:   "A terminal HTTP request tool with retries and JSON filtering",
		Version: version,
		Long: `w3r issues a single HTTP request and renders the response.

Transient failures (connection errors, 5xx, 429, 408) can be retried with
exponential backoff. JSON response bodies can be narrowed with a small path
filter ("items[0].name") and pretty-printed. Requests can be loaded from
named presets in a TOML or YAML config file, with explicit flags taking
precedence over preset values.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}
	addFlags(cmd)
	return cmd
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	presetName, _ := flags.GetString("preset")

	spec := config.Default()
	if configPath != "" {
		loaded, err := config.LoadPreset(configPath, presetName)
		if err != nil {
			return err
		}
		spec = loaded
	} else if presetName != "" {
		return fmt.Errorf("--preset requires --config")
	}

	applyFlags(spec, cmd, args)

	if err := spec.Validate(); err != nil {
		return err
	}
	return execute(cmd, spec)
}

// applyFlags overlays explicitly set flags (and their env fallbacks) on top
// of the preset-merged spec.
func applyFlags(spec *config.Spec, cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	if len(args) > 0 {
		spec.URL = args[0]
	}
	if flags.Changed("method") {
		spec.Method, _ = flags.GetString("method")
	}
	if flags.Changed("headers") {
		spec.Headers, _ = flags.GetStringArray("headers")
	}
	if flags.Changed("cookies") {
		spec.Cookies, _ = flags.GetStringArray("cookies")
	}
	if flags.Changed("form-data") {
		spec.FormData, _ = flags.GetString("form-data")
	}
	if flags.Changed("form") {
		spec.Form, _ = flags.GetStringArray("form")
	}
	if flags.Changed("json") {
		spec.JSON, _ = flags.GetString("json")
	}
	if flags.Changed("json-filter") {
		spec.JSONFilter, _ = flags.GetString("json-filter")
	}
	if flags.Changed("timeout") {
		spec.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("retry") {
		spec.Retry, _ = flags.GetInt("retry")
	}
	if flags.Changed("retry-delay") {
		spec.RetryDelay, _ = flags.GetDuration("retry-delay")
	}
	if flags.Changed("max-retry-delay") {
		spec.MaxRetryDelay, _ = flags.GetDuration("max-retry-delay")
	}
	if flags.Changed("output") {
		spec.Output, _ = flags.GetString("output")
	}
	if flags.Changed("pretty-json") {
		spec.PrettyJSON, _ = flags.GetBool("pretty-json")
	}
	if flags.Changed("timing") {
		spec.Timing, _ = flags.GetBool("timing")
	}
	if flags.Changed("verbose") {
		spec.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("silent") {
		spec.Silent, _ = flags.GetBool("silent")
	}
	if flags.Changed("dry-run") {
		spec.DryRun, _ = flags.GetBool("dry-run")
	}

	// Basic auth and proxy credentials take effect only as complete pairs;
	// a partial pair is treated as absent.
	if user, _ := flags.GetString("basic-user"); user != "" {
		if pass, _ := flags.GetString("basic-pass"); pass != "" {
			spec.BasicAuth = &config.BasicAuth{User: user, Pass: pass}
		}
	}
	if host, _ := flags.GetString("proxy-host"); host != "" {
		if port, _ := flags.GetString("proxy-port"); port != "" {
			proxy := &config.Proxy{Host: host, Port: port}
			if pu, _ := flags.GetString("proxy-user"); pu != "" {
				if pp, _ := flags.GetString("proxy-pass"); pp != "" {
					proxy.User, proxy.Pass = pu, pp
				}
			}
			spec.Proxy = proxy
		}
	}
}

// execute drives the full request lifecycle: build client and request,
// trace, run the retry engine, and route the processed body to its sink.
func execute(cmd *cobra.Command, spec *config.Spec) error {
	flags := cmd.Flags()

	noColor, _ := flags.GetBool("no-color")
	if !noColor {
		if f, ok := cmd.OutOrStdout().(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
			noColor = true
		}
	}
	formatter := output.NewFormatter(cmd.OutOrStdout(), noColor)

	opts := []w3rhttp.ClientOption{w3rhttp.WithTimeout(spec.Timeout)}
	if spec.Proxy != nil {
		opts = append(opts, w3rhttp.WithProxy(spec.Proxy.Host, spec.Proxy.Port, spec.Proxy.User, spec.Proxy.Pass))
	}
	if len(spec.Cookies) > 0 {
		opts = append(opts, w3rhttp.WithCookies(spec.URL, spec.Cookies))
	}
	if len(spec.Headers) > 0 {
		opts = append(opts, w3rhttp.WithHeaders(spec.Headers))
	}
	client, err := w3rhttp.NewClient(opts...)
	if err != nil {
		return err
	}

	req, err := w3rhttp.NewRequest(spec.Method, spec.URL)
	if err != nil {
		return err
	}
	if spec.BasicAuth != nil {
		req.WithBasicAuth(spec.BasicAuth.User, spec.BasicAuth.Pass)
	}
	if err := req.ApplyBody(spec.FormData, spec.Form, spec.JSON); err != nil {
		return err
	}

	if spec.Verbose {
		formatter.PrintRequest(req.Method, req.URL, client.DefaultHeaders(), req.Header)
	}
	if spec.DryRun {
		return nil
	}

	policy := w3rhttp.Policy{
		Retries:   spec.Retry,
		BaseDelay: spec.RetryDelay,
		MaxDelay:  spec.MaxRetryDelay,
	}
	var hooks w3rhttp.Hooks
	if spec.Verbose {
		hooks = w3rhttp.Hooks{
			OnAttempt:     formatter.PrintAttemptBanner,
			OnRetryStatus: formatter.PrintRetryStatus,
			OnRetryError:  formatter.PrintRetryError,
		}
	}

	resp, err := client.Execute(cmd.Context(), req, policy, hooks)
	if err != nil {
		return err
	}

	if spec.Verbose {
		formatter.PrintResponse(resp)
	}
	if spec.Timing {
		formatter.PrintTiming(resp.Timing, resp.Size())
	}

	processed := output.ProcessBody(resp.Body(), spec.JSONFilter, spec.PrettyJSON)
	sink := &output.Sink{Path: spec.Output, Silent: spec.Silent, Stdout: cmd.OutOrStdout()}
	return sink.Write(processed)
}

func addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("method", "m", config.DefaultMethod, "HTTP method (GET, POST, PUT, DELETE, HEAD, PATCH)")
	flags.StringArray("headers", nil, `request header as "Name: Value" (repeatable)`)
	flags.StringArray("cookies", nil, "cookie bound to the target domain (repeatable)")
	flags.StringP("form-data", "f", "", "raw form-encoded request body, sent verbatim")
	flags.StringArray("form", nil, `form field as "key=value" (repeatable)`)
	flags.StringP("json", "j", "", "JSON request body")
	flags.String("json-filter", "", `path filter applied to a JSON response body (e.g. "items[0].name")`)
	flags.String("basic-user", os.Getenv("BASIC_USER"), "basic auth user (env BASIC_USER)")
	flags.String("basic-pass", os.Getenv("BASIC_PASS"), "basic auth password (env BASIC_PASS)")
	flags.String("proxy-host", os.Getenv("PROXY_HOST"), "HTTP proxy host (env PROXY_HOST)")
	flags.String("proxy-port", os.Getenv("PROXY_PORT"), "HTTP proxy port (env PROXY_PORT)")
	flags.String("proxy-user", os.Getenv("PROXY_USER"), "HTTP proxy user (env PROXY_USER)")
	flags.String("proxy-pass", os.Getenv("PROXY_PASS"), "HTTP proxy password (env PROXY_PASS)")
	flags.Int("retry", config.DefaultRetry, "retries after a transport error or retryable status")
	flags.Duration("retry-delay", config.DefaultRetryDelay, "base delay before the first retry; doubles each retry")
	flags.Duration("max-retry-delay", 0, "cap on the backoff delay (0 = unbounded)")
	flags.DurationP("timeout", "t", config.DefaultTimeout, "whole-attempt timeout")
	flags.StringP("output", "o", "", "write the response body to a file instead of stdout")
	flags.Bool("pretty-json", false, "indent JSON response bodies")
	flags.Bool("timing", false, "print the timing report")
	flags.BoolP("verbose", "v", false, "trace request and response headers")
	flags.BoolP("silent", "s", false, "suppress stdout body output")
	flags.Bool("dry-run", false, "build and trace the request without sending it")
	flags.String("config", "", "preset file (TOML, or YAML by extension)")
	flags.String("preset", "", "preset name within the config file")
	flags.Bool("no-color", false, "disable colored output")
}
