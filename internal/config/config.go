package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/timegraph/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth        = "TIMEGRAPH_WIDTH"
	envHeight       = "TIMEGRAPH_HEIGHT"
	envThreads      = "TIMEGRAPH_THREADS"
	envDuration     = "TIMEGRAPH_DURATION"
	envSeed         = "TIMEGRAPH_SEED"
	envLive         = "TIMEGRAPH_LIVE"
	envLiveInterval = "TIMEGRAPH_LIVE_INTERVAL"
	envLayout       = "TIMEGRAPH_LAYOUT"
	envFilter       = "TIMEGRAPH_FILTER"
	envTrace        = "TIMEGRAPH_TRACE"
	envLogFile      = "TIMEGRAPH_LOG_FILE"
)

const (
	defaultThreads      = 8
	defaultDuration     = 2 * time.Second
	defaultSeed         = 1
	defaultLiveInterval = 500 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// the environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("timegraph", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)")
	threads := fs.Int("threads", envOrInt(env, envThreads, defaultThreads), "number of synthetic threads")
	duration := fs.Duration("duration", envOrDuration(env, envDuration, defaultDuration), "length of the synthetic capture")
	seed := fs.Uint64("seed", envOrUint(env, envSeed, defaultSeed), "random seed of the synthetic capture")
	live := fs.Bool("live", envOrBool(env, envLive, false), "grow the capture over time as if still recording")
	liveInterval := fs.Duration("live-interval", envOrDuration(env, envLiveInterval, defaultLiveInterval), "poll interval of a live capture")
	layout := fs.String("layout", envOrDefault(env, envLayout, ""), "YAML file overriding layout constants")
	filter := fs.String("filter", envOrDefault(env, envFilter, ""), "initial track filter")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			Threads:      *threads,
			Duration:     *duration,
			Seed:         *seed,
			Live:         *live,
			LiveInterval: *liveInterval,
			LayoutPath:   *layout,
			Filter:       *filter,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"threads":      strconv.Itoa(*threads),
			"duration":     duration.String(),
			"seed":         strconv.FormatUint(*seed, 10),
			"live":         strconv.FormatBool(*live),
			"liveInterval": liveInterval.String(),
			"layout":       *layout,
			"filter":       *filter,
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrUint(env map[string]string, key string, fallback uint64) uint64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
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
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate reports every invalid setting at once.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width))
	}
	if cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height))
	}
	if cfg.App.Threads <= 0 {
		errs = append(errs, fmt.Errorf("threads must be > 0 (got %d)", cfg.App.Threads))
	}
	if cfg.App.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be > 0 (got %s)", cfg.App.Duration))
	}
	if cfg.App.Live && cfg.App.LiveInterval <= 0 {
		errs = append(errs, fmt.Errorf("live-interval must be > 0 (got %s)", cfg.App.LiveInterval))
	}
	return errors.Join(errs...)
}
