package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/hn-tui/internal/app"
	"github.com/atomicstack/hn-tui/internal/hn"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was applied, empty when none was found.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix = "HN_TUI_"
	appDir    = "hn-tui"
	fileName  = "config.yaml"

	defaultLimit   = 30
	defaultWorkers = 8
	defaultTimeout = 15 * time.Second

	// defaultInterval spaces HTTP requests; a thread can take hundreds.
	defaultInterval = 10 * time.Millisecond
)

// UsageError is returned for unparsable command lines. Usage holds what the
// flag package printed, including the option list.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Load parses configuration from CLI arguments, environment variables and
// the config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values are
// taken from flags first, then HN_TUI_* variables, then the YAML file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("hn-tui", flag.ContinueOnError)
	out := new(strings.Builder)
	fs.SetOutput(out)

	configFile := fs.String("config", envOrDefault(env, "config", ""), "path to a YAML config file (default $XDG_CONFIG_HOME/hn-tui/config.yaml)")
	category := fs.String("category", envOrDefault(env, "category", hn.DefaultCategory.ID), "story category shown at startup (front_page, new, best, ask, show, jobs)")
	limit := fs.Int("limit", envOrInt(env, "limit", defaultLimit), "number of stories fetched per category")
	width := fs.Int("width", envOrInt(env, "width", 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, "height", 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, "footer", false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, "trace", false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, "log-file", ""), "path to the log file")
	apiURL := fs.String("api-url", envOrDefault(env, "api-url", hn.DefaultBaseURL), "base URL of the Hacker News API")
	searchURL := fs.String("search-url", envOrDefault(env, "search-url", hn.DefaultSearchURL), "URL of the story search endpoint")
	timeout := fs.Duration("timeout", envOrDuration(env, "timeout", defaultTimeout), "timeout for a single HTTP request")
	workers := fs.Int("workers", envOrInt(env, "workers", defaultWorkers), "concurrent item fetches")
	interval := fs.Duration("interval", envOrDuration(env, "interval", defaultInterval), "minimum spacing between HTTP requests (0 disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, &UsageError{Err: err, Usage: out.String()}
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	path, required := *configFile, *configFile != ""
	if !required {
		path = defaultConfigPath(env)
	}
	values, err := readFile(path, required)
	if err != nil {
		return Config{}, err
	}
	if values == nil {
		path = ""
	}
	for name, value := range values {
		f := fs.Lookup(name)
		if f == nil || name == "config" {
			return Config{}, fmt.Errorf("%s: unknown option %q", path, name)
		}
		if explicit[name] || envSet(env, name) {
			continue
		}
		if err := f.Value.Set(value); err != nil {
			return Config{}, fmt.Errorf("%s: invalid %s: %w", path, name, err)
		}
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	flags := make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) { flags[f.Name] = f.Value.String() })

	cfg := Config{
		App: app.Config{
			Category:   *category,
			Limit:      *limit,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			APIURL:     *apiURL,
			SearchURL:  *searchURL,
			Timeout:    *timeout,
			Workers:    *workers,
			Interval:   *interval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File:  path,
		Flags: flags,
		Args:  append([]string(nil), args...),
	}

	return cfg, nil
}

// readFile loads a flat YAML mapping of option names to values. A missing
// file is only an error when it was asked for explicitly.
func readFile(path string, required bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	values := make(map[string]string, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		values[strings.ReplaceAll(key, "_", "-")] = fmt.Sprint(value)
	}
	return values, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := env["XDG_CONFIG_HOME"]; dir != "" {
		return filepath.Join(dir, appDir, fileName)
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", appDir, fileName)
	}
	return ""
}

// envKey maps a flag name to its environment variable, e.g. log-file to
// HN_TUI_LOG_FILE.
func envKey(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func envSet(env map[string]string, name string) bool {
	v, ok := env[envKey(name)]
	return ok && strings.TrimSpace(v) != ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, name, fallback string) string {
	if v, ok := env[envKey(name)]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, name string, fallback int) int {
	v, ok := env[envKey(name)]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, name string, fallback bool) bool {
	v, ok := env[envKey(name)]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, name string, fallback time.Duration) time.Duration {
	v, ok := env[envKey(name)]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		var usage *UsageError
		if errors.As(err, &usage) {
			fmt.Fprint(os.Stderr, usage.Usage)
			if errors.Is(err, flag.ErrHelp) {
				os.Exit(0)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		}
		os.Exit(2)
	}
	return cfg
}

// Validate rejects configurations the application cannot start with.
func Validate(cfg Config) error {
	if _, err := hn.LookupCategory(cfg.App.Category); err != nil {
		return err
	}
	if cfg.App.Limit <= 0 {
		return fmt.Errorf("limit must be > 0 (got %d)", cfg.App.Limit)
	}
	if cfg.App.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", cfg.App.Workers)
	}
	if cfg.App.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", cfg.App.Timeout)
	}
	if cfg.App.Interval < 0 {
		return fmt.Errorf("interval must be >= 0 (got %s)", cfg.App.Interval)
	}
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		return fmt.Errorf("width and height must be >= 0")
	}
	return nil
}
