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

	"github.com/atomicstack/wallpicker/internal/app"
	"github.com/atomicstack/wallpicker/internal/logging"
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
	envHome        = "HOME"
	envRoot        = "WALLPICKER_ROOT"
	envTitlePrefix = "WALLPICKER_TITLE_PREFIX"
	envExtension   = "WALLPICKER_EXT"
	envTick        = "WALLPICKER_TICK"
	envWidth       = "WALLPICKER_WIDTH"
	envHeight      = "WALLPICKER_HEIGHT"
	envShowFooter  = "WALLPICKER_FOOTER"
	envVerbose     = "WALLPICKER_VERBOSE"
	envTrace       = "WALLPICKER_TRACE"
	envLogFile     = "WALLPICKER_LOG_FILE"
)

const (
	defaultExtension    = "jpg"
	defaultTickInterval = 250 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	home := env[envHome]

	fs := flag.NewFlagSet("wallpicker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	root := fs.String("root", envOrDefault(env, envRoot, filepath.Join(home, "Pictures", "Wallpaper")), "directory the picker starts in")
	titlePrefix := fs.String("title-prefix", envOrDefault(env, envTitlePrefix, filepath.Join(home, "Pictures")), "path prefix hidden from the title breadcrumb")
	ext := fs.String("ext", envOrDefault(env, envExtension, defaultExtension), "wallpaper file extension (matched case-insensitively)")
	tick := fs.Duration("tick", envOrDuration(env, envTick, defaultTickInterval), "periodic refresh interval")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show a message after a wallpaper is set")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, logging.DefaultFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	rootPath := expandHome(*root, home)
	prefix := expandHome(*titlePrefix, home)
	logPath := expandHome(*logFile, home)

	cfg := Config{
		App: app.Config{
			RootPath:     rootPath,
			TitlePrefix:  prefix,
			Extension:    strings.TrimPrefix(strings.TrimSpace(*ext), "."),
			TickInterval: *tick,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: logPath,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"root":        rootPath,
			"titlePrefix": prefix,
			"ext":         *ext,
			"tick":        tick.String(),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     logPath,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// expandHome replaces a leading "~" path segment with home.
func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	}
	return path
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
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Extension == "" {
		return errors.New("extension must not be empty")
	}
	if a.TickInterval <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", a.TickInterval)
	}
	info, err := os.Stat(a.RootPath)
	if err != nil {
		return fmt.Errorf("root %s: %w", a.RootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", a.RootPath)
	}
	return nil
}
