package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	ErrRendererUnavailable = errors.New("blender executable not found")
	ErrRenderTimeout       = errors.New("render timed out")
	ErrRenderFailed        = errors.New("render failed")
)

// Options configures a Runner.
type Options struct {
	Binary     string
	Script     string
	Format     string
	Timeout    time.Duration
	MaxRetries int
}

// Runner invokes Blender in background mode with the generator script.
type Runner struct {
	opts     Options
	lookPath func(string) (string, error)
}

func NewRunner(opts Options) *Runner {
	if opts.Binary == "" {
		opts.Binary = "blender"
	}
	if opts.Format == "" {
		opts.Format = "glb"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Minute
	}
	return &Runner{opts: opts, lookPath: exec.LookPath}
}

// Available returns the resolved Blender path, if any.
func (r *Runner) Available() (string, bool) {
	path, err := r.lookPath(r.opts.Binary)
	if err != nil {
		return "", false
	}
	return path, true
}

// Args builds the command line for one render. Everything after "--" is
// read by the generator script.
func (r *Runner) Args(s Scene, scenePath, outPath string) []string {
	return []string{
		"-b", "-P", r.opts.Script, "--",
		"--land", strconv.Itoa(int(s.LandCents + 0.5)),
		"--orientation", s.Orientation,
		"--house_type", s.HouseType,
		"--output", outPath,
		"--format", r.opts.Format,
		"--bathrooms", strconv.Itoa(s.Bathrooms),
		"--garden", yesNo(s.Garden),
		"--study_room", yesNo(s.Study),
		"--parking", yesNo(s.Parking),
		"--balcony", yesNo(s.Balcony),
		"--scene", scenePath,
	}
}

// OutputPath returns dir/<name>.<format>.
func (r *Runner) OutputPath(dir, name string) string {
	return filepath.Join(dir, name+"."+r.opts.Format)
}

// Run writes the scene next to outPath and runs Blender, retrying failed
// attempts up to MaxRetries times. Each attempt gets the full timeout.
func (r *Runner) Run(ctx context.Context, s Scene, outPath string) error {
	bin, ok := r.Available()
	if !ok {
		return fmt.Errorf("%w: %s", ErrRendererUnavailable, r.opts.Binary)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	scenePath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".scene.json"
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	if err := os.WriteFile(scenePath, data, 0o644); err != nil {
		return fmt.Errorf("writing scene: %w", err)
	}

	args := r.Args(s, scenePath, outPath)
	var lastErr error
	for attempt := 0; attempt <= r.opts.MaxRetries; attempt++ {
		lastErr = r.attempt(ctx, bin, args)
		if lastErr == nil {
			if _, err := os.Stat(outPath); err != nil {
				return fmt.Errorf("%w: no output written to %s", ErrRenderFailed, outPath)
			}
			return nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	return lastErr
}

func (r *Runner) attempt(ctx context.Context, bin string, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w after %s", ErrRenderTimeout, r.opts.Timeout)
	default:
		return fmt.Errorf("%w: %v: %s", ErrRenderFailed, err, tail(stderr.String(), 400))
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// tail keeps the last n bytes of s.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
