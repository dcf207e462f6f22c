package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// knownStyles are the output styles the CLI can construct.
var knownStyles = map[string]bool{
	"display": true,
	"plain":   true,
	"export":  true,
	"json":    true,
	"html":    true,
}

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if len(cfg.TimestampLayouts) == 0 {
		return errors.New("timestamp_layouts: at least one layout is required")
	}
	for i, layout := range cfg.TimestampLayouts {
		if err := validateLayout(layout); err != nil {
			return fmt.Errorf("timestamp_layouts[%d] (%s): %w", i, layout, err)
		}
	}

	if len(cfg.Tones) == 0 {
		return errors.New("tones: at least one tone verb is required")
	}
	for i, tone := range cfg.Tones {
		if strings.TrimSpace(tone) == "" {
			return fmt.Errorf("tones[%d]: tone must not be empty", i)
		}
	}

	if !knownStyles[cfg.DefaultStyle] {
		return fmt.Errorf("default_style: invalid style %q (must be display, plain, export, json, or html)", cfg.DefaultStyle)
	}

	if cfg.OutputTimestampLayout == "" {
		return errors.New("output_timestamp_layout is required")
	}

	for action, color := range cfg.ActionColors {
		if !strings.HasPrefix(color, "#") {
			return fmt.Errorf("action_colors[%s]: color %q must be a #rrggbb value", action, color)
		}
	}

	return nil
}

// validateLayout checks that a Go time layout round-trips a reference time.
// A layout that cannot re-parse its own output would silently reject every
// timestamp in the log.
func validateLayout(layout string) error {
	ref := time.Date(2025, 2, 2, 22, 19, 38, 0, time.UTC)
	if _, err := time.Parse(layout, ref.Format(layout)); err != nil {
		return fmt.Errorf("layout does not round-trip: %w", err)
	}
	return nil
}
