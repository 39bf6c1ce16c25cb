package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the resolved runtime configuration.
type Config struct {
	Files    []string
	PaddingX int
	PaddingY int
	Refresh  time.Duration
	Colors   Colors
}

// Colors holds lipgloss color strings (ANSI index or hex) for the two pane styles.
type Colors struct {
	TitleFg   string `toml:"title_fg"`
	TitleBg   string `toml:"title_bg"`
	ContentFg string `toml:"content_fg"`
	ContentBg string `toml:"content_bg"`
}

// Overrides carries values given on the command line. Nil fields were not set.
type Overrides struct {
	PaddingX *int
	PaddingY *int
	Refresh  *float64
}

const (
	defaultConfigPath = "~/.config/monigrid/config.toml"
	defaultPaddingX   = 1
	defaultPaddingY   = 0
	defaultRefresh    = 100 * time.Millisecond
)

// DefaultColors renders titles black on white and content white on black.
func DefaultColors() Colors {
	return Colors{TitleFg: "0", TitleBg: "7", ContentFg: "7", ContentBg: "0"}
}

// Default returns the built-in configuration for the given files.
func Default(files []string) Config {
	return Config{
		Files:    files,
		PaddingX: defaultPaddingX,
		PaddingY: defaultPaddingY,
		Refresh:  defaultRefresh,
		Colors:   DefaultColors(),
	}
}

// Load reads the config file at path (the default location when empty) on top
// of the built-in defaults. A missing file is not an error.
func Load(path string, files []string) (Config, error) {
	cfg := Default(files)

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PaddingX       *int     `toml:"padding_x"`
		PaddingY       *int     `toml:"padding_y"`
		RefreshSeconds *float64 `toml:"refresh_seconds"`
		Colors         Colors   `toml:"colors"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Apply(Overrides{PaddingX: raw.PaddingX, PaddingY: raw.PaddingY, Refresh: raw.RefreshSeconds}); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", resolved, err)
	}
	cfg.Colors = mergeColors(cfg.Colors, raw.Colors)
	return cfg, nil
}

// Apply copies every set override into c. Paddings are clamped to zero; a
// refresh interval that is not a positive number of seconds is rejected and
// leaves c unchanged.
func (c *Config) Apply(o Overrides) error {
	if o.Refresh != nil {
		if err := checkRefresh(*o.Refresh); err != nil {
			return err
		}
		c.Refresh = time.Duration(*o.Refresh * float64(time.Second))
	}
	if o.PaddingX != nil {
		c.PaddingX = max(*o.PaddingX, 0)
	}
	if o.PaddingY != nil {
		c.PaddingY = max(*o.PaddingY, 0)
	}
	return nil
}

// Resolve loads the config file and applies command line overrides on top.
func Resolve(path string, files []string, o Overrides) (Config, error) {
	cfg, err := Load(path, files)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Apply(o); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem that makes c unusable.
func (c Config) Validate() error {
	if len(c.Files) == 0 {
		return &ConfigError{Field: "files", Reason: "at least one file is required"}
	}
	for _, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return &ConfigError{Field: "files", Reason: "file path is empty"}
		}
	}
	if c.PaddingX < 0 || c.PaddingY < 0 {
		return &ConfigError{Field: "padding", Reason: "must not be negative"}
	}
	if c.Refresh <= 0 {
		return &ConfigError{Field: "refresh", Reason: "must be positive"}
	}
	return nil
}

func checkRefresh(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return &ConfigError{Field: "refresh", Reason: fmt.Sprintf("must be a positive number of seconds, got %v", seconds)}
	}
	if time.Duration(seconds*float64(time.Second)) <= 0 {
		return &ConfigError{Field: "refresh", Reason: fmt.Sprintf("%v seconds is below the clock resolution", seconds)}
	}
	return nil
}

func mergeColors(base, over Colors) Colors {
	pick := func(b, o string) string {
		if v := strings.TrimSpace(o); v != "" {
			return v
		}
		return b
	}
	return Colors{
		TitleFg:   pick(base.TitleFg, over.TitleFg),
		TitleBg:   pick(base.TitleBg, over.TitleBg),
		ContentFg: pick(base.ContentFg, over.ContentFg),
		ContentBg: pick(base.ContentBg, over.ContentBg),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
