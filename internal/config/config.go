// Package config resolves runtime settings for the housewright CLI:
// built-in defaults, then an optional YAML file, then HOUSEWRIGHT_* env vars.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HomeDir is the per-user directory holding the database, config file and
// render output.
const HomeDir = ".housewright"

// RenderConfig controls the Blender collaborator.
type RenderConfig struct {
	Binary     string `yaml:"binary"`
	Script     string `yaml:"script"`
	Format     string `yaml:"format"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	MaxRetries int    `yaml:"max_retries"`
}

// Config is the resolved configuration.
type Config struct {
	DBPath      string       `yaml:"db_path"`
	CatalogPath string       `yaml:"catalog_path"`
	OutputDir   string       `yaml:"output_dir"`
	LogCalls    bool         `yaml:"log_calls"`
	Render      RenderConfig `yaml:"render"`

	// Source is the config file that was read, empty when none was found.
	Source string `yaml:"-"`
}

// Default returns the configuration used when nothing is overridden.
// Paths are rooted at home.
func Default(home string) Config {
	base := filepath.Join(home, HomeDir)
	return Config{
		DBPath:    filepath.Join(base, "housewright.db"),
		OutputDir: filepath.Join(base, "renders"),
		Render: RenderConfig{
			Binary:     "blender",
			Script:     filepath.Join(base, "scripts", "house_generator.py"),
			Format:     "glb",
			TimeoutMs:  300000,
			MaxRetries: 1,
		},
	}
}

// Load resolves the configuration for the current user.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	path := os.Getenv("HOUSEWRIGHT_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, HomeDir, "config.yaml")
	}
	if err := cfg.mergeFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays the YAML file at path onto c. Keys absent from the
// file keep their current values.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Source = path
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.DBPath, "HOUSEWRIGHT_DB")
	setString(&c.CatalogPath, "HOUSEWRIGHT_CATALOG")
	setString(&c.OutputDir, "HOUSEWRIGHT_OUTPUT_DIR")
	setString(&c.Render.Binary, "HOUSEWRIGHT_BLENDER")
	setString(&c.Render.Script, "HOUSEWRIGHT_BLENDER_SCRIPT")
	setString(&c.Render.Format, "HOUSEWRIGHT_RENDER_FORMAT")
	if v, ok := lookupInt("HOUSEWRIGHT_RENDER_TIMEOUT_MS"); ok && v > 0 {
		c.Render.TimeoutMs = v
	}
	if v, ok := lookupInt("HOUSEWRIGHT_RENDER_MAX_RETRIES"); ok && v >= 0 {
		c.Render.MaxRetries = v
	}
	if v, ok := os.LookupEnv("HOUSEWRIGHT_LOG_CALLS"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.LogCalls = b
		}
	}
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	var errs []error
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	switch c.Render.Format {
	case "glb", "obj", "fbx":
	default:
		errs = append(errs, fmt.Errorf("render.format %q must be glb, obj or fbx", c.Render.Format))
	}
	if c.Render.TimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("render.timeout_ms must be positive, got %d", c.Render.TimeoutMs))
	}
	if c.Render.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("render.max_retries must not be negative, got %d", c.Render.MaxRetries))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func lookupInt(key string) (int, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}
