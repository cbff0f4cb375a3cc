// Package wallpaper hands a chosen image to the external wallpaper command.
package wallpaper

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atomicstack/wallpicker/internal/logging"
)

const (
	DefaultExecutable = "hyprctl"
	DefaultOutput     = "eDP-1"
)

// Runner executes name with args and returns its combined output.
type Runner func(name string, args ...string) ([]byte, error)

// Setter invokes `<Executable> hyprpaper wallpaper <OutputID>,<path>`.
type Setter struct {
	Executable string
	OutputID   string

	run Runner
}

// NewSetter returns a Setter that runs real processes.
func NewSetter(executable, outputID string) *Setter {
	return &Setter{Executable: executable, OutputID: outputID, run: execRunner}
}

// WithRunner replaces the process runner; used by tests.
func (s *Setter) WithRunner(run Runner) *Setter {
	s.run = run
	return s
}

// Args returns the argument list passed to the executable for path.
func (s *Setter) Args(path string) []string {
	return []string{"hyprpaper", "wallpaper", fmt.Sprintf("%s,%s", s.OutputID, path)}
}

// Dispatch runs the wallpaper command for path and waits for it to finish.
// Failures are written to the diagnostic log and returned; they are never
// retried.
func (s *Setter) Dispatch(path string) error {
	run := s.run
	if run == nil {
		run = execRunner
	}
	output, err := run(s.Executable, s.Args(path)...)
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = fmt.Errorf("%s exited with status %d", s.Executable, exitErr.ExitCode())
		if detail := strings.TrimSpace(string(output)); detail != "" {
			err = fmt.Errorf("%w: %s", err, detail)
		}
	} else {
		err = fmt.Errorf("run %s: %w", s.Executable, err)
	}
	logging.Errorf("set wallpaper %s: %w", path, err)
	return err
}

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}
