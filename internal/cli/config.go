package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/nutek/nutekcode/internal/q/cascade"
)

// Color modes accepted in Config.Color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config is nutekcode's configuration, loaded (lowest priority first) from defaults, ~/.nutekcode/config.json, the nearest .nutekcode/config.json, and NUTEKCODE_*
// environment variables. Command-line flags override it.
type Config struct {
	// Color is "auto" (color when stdout is a terminal), "always", or "never".
	Color           string             `json:"color"`
	ColorProvidence cascade.Providence `json:"-"`

	// IncludeHidden makes walk list dotfiles.
	IncludeHidden           bool               `json:"include_hidden"`
	IncludeHiddenProvidence cascade.Providence `json:"-"`

	// MaxWidth truncates diff lines to this many columns. 0 disables truncation.
	MaxWidth           int                `json:"max_width"`
	MaxWidthProvidence cascade.Providence `json:"-"`
}

const configDirName = ".nutekcode"

func loadConfig() (Config, error) {
	configFile := filepath.Join(configDirName, "config.json")
	loader := cascade.New().
		WithDefaults(map[string]any{
			"color":          colorAuto,
			"include_hidden": false,
			"max_width":      0,
		}).
		WithJSONFile(filepath.Join("~", configFile)).
		WithNearestJSONFile(configFile, "").
		WithEnv(map[string]string{
			"color":          "NUTEKCODE_COLOR",
			"include_hidden": "NUTEKCODE_HIDDEN",
			"max_width":      "NUTEKCODE_WIDTH",
		})

	var cfg Config
	if err := loader.StrictlyLoad(&cfg); err != nil {
		return Config{}, fmt.Errorf("load configuration: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	switch cfg.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("invalid configuration: color must be %q, %q, or %q (got %q from %s)", colorAuto, colorAlways, colorNever, cfg.Color, cfg.ColorProvidence)
	}
	if cfg.MaxWidth < 0 {
		return fmt.Errorf("invalid configuration: max_width must be >= 0 (got %d from %s)", cfg.MaxWidth, cfg.MaxWidthProvidence)
	}
	return nil
}

// useColor resolves cfg.Color against whether stdout is a terminal.
func (cfg Config) useColor(stdoutIsTerminal bool) bool {
	switch cfg.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return stdoutIsTerminal
	}
}

// writeConfig writes cfg as indented JSON, with a "sources" object naming where each value came from.
func writeConfig(w io.Writer, cfg Config) error {
	type withSources struct {
		Config
		Sources map[string]string `json:"sources"`
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(withSources{
		Config: cfg,
		Sources: map[string]string{
			"color":          cfg.ColorProvidence.String(),
			"include_hidden": cfg.IncludeHiddenProvidence.String(),
			"max_width":      cfg.MaxWidthProvidence.String(),
		},
	})
}
