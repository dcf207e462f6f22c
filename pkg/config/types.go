// Package config provides configuration loading and validation for interrolog.
package config

// Config is the root configuration structure loaded from YAML.
// The core packages never read it directly; the CLI shell loads it once and
// passes immutable option values down.
type Config struct {
	// TimestampLayouts are Go time layouts tried in order when parsing
	// timestamp tokens.
	TimestampLayouts []string `yaml:"timestamp_layouts"`

	// Tones are the speaking verbs recognized between a speaker name and
	// the colon separator.
	Tones []string `yaml:"tones"`

	// DefaultStyle is the output style used when none is given on the
	// command line (display, plain, export, json, html).
	DefaultStyle string `yaml:"default_style"`

	// OutputTimestampLayout renders parsed timestamps in formatted output.
	OutputTimestampLayout string `yaml:"output_timestamp_layout"`

	// IncludeDiagnostics appends the diagnostics section to output by default.
	IncludeDiagnostics bool `yaml:"include_diagnostics"`

	// ActionColors maps action categories to colors for the html style.
	ActionColors map[string]string `yaml:"action_colors,omitempty"`
}
