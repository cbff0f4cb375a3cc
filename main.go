package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/wallpicker/internal/app"
	"github.com/atomicstack/wallpicker/internal/config"
	"github.com/atomicstack/wallpicker/internal/logging"
	"github.com/atomicstack/wallpicker/internal/logging/events"
	uistate "github.com/atomicstack/wallpicker/internal/ui/state"
	"github.com/atomicstack/wallpicker/internal/wallpaper"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	model, err := app.NewModel(runtimeCfg.App)
	if err != nil {
		fail(err)
	}
	events.App.Start(startupTracePayload(runtimeCfg, model.Browser()))

	if err := app.Run(model); err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// startupTracePayload records what the picker is about to browse and which
// command it will hand wallpapers to.
func startupTracePayload(cfg config.Config, browser *uistate.Browser) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     flags,
		"root":      browser.Path,
		"extension": browser.Extension,
		"entries":   browser.Len(),
		"command": map[string]string{
			"executable": wallpaper.DefaultExecutable,
			"output":     wallpaper.DefaultOutput,
		},
		"tty": probeTerminal(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalInfo struct {
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// probeTerminal reports the size of stdout, which Bubble Tea renders to.
func probeTerminal() terminalInfo {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalInfo{}
	}
	info := terminalInfo{Terminal: true}
	width, height, err := term.GetSize(fd)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}
