package detector

import "regexp"

// TimestampFormat is a known transcript timestamp format for detection.
type TimestampFormat struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for config output
	Layout     string         // Go time layout for parsing
	Examples   []string       // Example timestamps
	Ambiguous  bool           // True if format has date ordering ambiguity (DD.MM vs MM.DD)
}

// DefaultFormats returns the built-in timestamp formats to detect, ordered
// by specificity (more specific patterns first). All formats are bracketed
// line prefixes, matching how in-game transcript logs mark time.
func DefaultFormats() []*TimestampFormat {
	formats := []*TimestampFormat{
		// Native in-game format, day-first with dots
		{
			Name:       "Bracketed day.month.year",
			PatternStr: `^\[(\d{1,2}\.\d{2}\.\d{4} \d{2}:\d{2}:\d{2})\]`,
			Layout:     "2.01.2006 15:04:05",
			Examples:   []string{"[2.02.2025 22:19:38]", "[15.11.2024 09:05:00]"},
			Ambiguous:  true,
		},
		// ISO 8601 with T separator and zone
		{
			Name:       "Bracketed ISO 8601",
			PatternStr: `^\[(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:Z|[+-]\d{2}:\d{2}))\]`,
			Layout:     "2006-01-02T15:04:05Z07:00",
			Examples:   []string{"[2025-02-02T22:19:38Z]"},
		},
		// ISO-style date and time, space separated
		{
			Name:       "Bracketed datetime",
			PatternStr: `^\[(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\]`,
			Layout:     "2006-01-02 15:04:05",
			Examples:   []string{"[2025-02-02 22:19:38]"},
		},
		// Time of day only, with seconds
		{
			Name:       "Bracketed clock with seconds",
			PatternStr: `^\[(\d{1,2}:\d{2}:\d{2})\]`,
			Layout:     "15:04:05",
			Examples:   []string{"[22:19:38]"},
		},
		// Time of day only
		{
			Name:       "Bracketed clock",
			PatternStr: `^\[(\d{1,2}:\d{2})\]`,
			Layout:     "15:04",
			Examples:   []string{"[10:02]"},
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
