package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/wallpicker/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=/home/user"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.Config{
		RootPath:     "/home/user/Pictures/Wallpaper",
		TitlePrefix:  "/home/user/Pictures",
		Extension:    "jpg",
		TickInterval: 250 * time.Millisecond,
	}
	if cfg.App != want {
		t.Fatalf("expected %#v, got %#v", want, cfg.App)
	}
	if cfg.Logging.FilePath != "wallpicker.log" || cfg.Logging.Trace {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"HOME=/home/user",
		"WALLPICKER_ROOT=~/walls",
		"WALLPICKER_TITLE_PREFIX=/home",
		"WALLPICKER_EXT=.png",
		"WALLPICKER_TICK=1s",
		"WALLPICKER_WIDTH=100",
		"WALLPICKER_HEIGHT=40",
		"WALLPICKER_FOOTER=true",
		"WALLPICKER_VERBOSE=1",
		"WALLPICKER_TRACE=true",
		"WALLPICKER_LOG_FILE=~/.cache/wallpicker.log",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.Config{
		RootPath:     "/home/user/walls",
		TitlePrefix:  "/home",
		Extension:    "png",
		TickInterval: time.Second,
		Width:        100,
		Height:       40,
		ShowFooter:   true,
		Verbose:      true,
	}
	if cfg.App != want {
		t.Fatalf("expected %#v, got %#v", want, cfg.App)
	}
	if cfg.Logging.FilePath != "/home/user/.cache/wallpicker.log" || !cfg.Logging.Trace {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"HOME=/home/user", "WALLPICKER_EXT=png", "WALLPICKER_WIDTH=100"}
	args := []string{"--ext", "jpeg", "--width", "60", "--root", "/srv/walls"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Extension != "jpeg" || cfg.App.Width != 60 || cfg.App.RootPath != "/srv/walls" {
		t.Fatalf("expected flags to win, got %#v", cfg.App)
	}
	if cfg.Flags["ext"] != "jpeg" || cfg.Flags["width"] != "60" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestInvalidEnvironmentValuesFallBack(t *testing.T) {
	env := []string{"HOME=/home/user", "WALLPICKER_WIDTH=wide", "WALLPICKER_TICK=soon", "WALLPICKER_FOOTER=maybe"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.TickInterval != 250*time.Millisecond || cfg.App.ShowFooter {
		t.Fatalf("expected defaults, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestExpandHome(t *testing.T) {
	cases := []struct {
		path, home, want string
	}{
		{"~", "/home/u", "/home/u"},
		{"~/walls", "/home/u", "/home/u/walls"},
		{"/abs/~/x", "/home/u", "/abs/~/x"},
		{"~other/x", "/home/u", "~other/x"},
		{"~/walls", "", "~/walls"},
	}
	for _, tc := range cases {
		if got := expandHome(tc.path, tc.home); got != tc.want {
			t.Fatalf("expandHome(%q, %q) = %q, want %q", tc.path, tc.home, got, tc.want)
		}
	}
}

func validConfig(t *testing.T) Config {
	t.Helper()
	return Config{App: app.Config{
		RootPath:     t.TempDir(),
		Extension:    "jpg",
		TickInterval: time.Second,
	}}
}

func TestValidate(t *testing.T) {
	if err := Validate(validConfig(t)); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	file := filepath.Join(t.TempDir(), "bg.jpg")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty extension", func(c *Config) { c.App.Extension = "" }, "extension"},
		{"zero tick", func(c *Config) { c.App.TickInterval = 0 }, "tick"},
		{"missing root", func(c *Config) { c.App.RootPath = filepath.Join(c.App.RootPath, "missing") }, "root"},
		{"root is file", func(c *Config) { c.App.RootPath = file }, "not a directory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(&cfg)
			err := Validate(cfg)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
