package config

import (
	"os"
	"strings"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// Default values for configuration.
const (
	DefaultStyle                 = "display"
	DefaultOutputTimestampLayout = "2006-01-02 15:04:05"
)

// Environment variable names.
const (
	EnvStyle            = "INTERROLOG_STYLE"
	EnvTimestampLayouts = "INTERROLOG_TIMESTAMP_LAYOUTS"
)

// DefaultConfig returns a configuration with sensible defaults: the native
// in-game log layouts and tones, display output.
func DefaultConfig() *Config {
	return &Config{
		TimestampLayouts:      append([]string(nil), transcript.DefaultTimestampLayouts...),
		Tones:                 append([]string(nil), transcript.DefaultTones...),
		DefaultStyle:          DefaultStyle,
		OutputTimestampLayout: DefaultOutputTimestampLayout,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	if style := os.Getenv(EnvStyle); style != "" {
		c.DefaultStyle = style
	}
	if layouts := os.Getenv(EnvTimestampLayouts); layouts != "" {
		c.TimestampLayouts = c.TimestampLayouts[:0]
		for _, l := range strings.Split(layouts, ",") {
			if l = strings.TrimSpace(l); l != "" {
				c.TimestampLayouts = append(c.TimestampLayouts, l)
			}
		}
	}
}

// ParseOptions converts the configuration into core parse options.
func (c *Config) ParseOptions() transcript.Options {
	return transcript.Options{
		TimestampLayouts: c.TimestampLayouts,
		Tones:            c.Tones,
	}
}
