package transcript

import (
	"strings"
	"unicode/utf8"
)

// Parse converts raw transcript log text into a Result. It is deterministic
// and pure: no I/O, no state shared across calls. Malformed log content
// never fails the parse; every skipped or altered line is accounted for by
// exactly one Diagnostic. The only error condition is input that is not
// valid UTF-8 text, reported as an *InputError.
func Parse(raw string, opts Options) (*Result, error) {
	if !utf8.ValidString(raw) {
		return nil, &InputError{Offset: invalidOffset(raw)}
	}
	opts = opts.withDefaults()

	classifier := NewClassifier(opts)
	b := newBuilder(opts)

	lines := SplitLines(raw)
	for _, line := range lines {
		cl := classifier.Classify(line, b.open())
		b.feed(cl, line)
	}
	b.finish()

	return &Result{
		Entries:     b.entries,
		Diagnostics: b.diags,
		Summary: Summary{
			TotalLines:  len(lines),
			Entries:     len(b.entries),
			Diagnostics: len(b.diags),
		},
	}, nil
}

// SplitLines splits raw text into numbered LogLines. Both \n and \r\n line
// endings are accepted. A trailing newline does not produce a final empty
// line.
func SplitLines(raw string) []LogLine {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]LogLine, len(parts))
	for i, p := range parts {
		lines[i] = LogLine{
			Text: strings.TrimSuffix(p, "\r"),
			Num:  i + 1,
		}
	}
	return lines
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return 0
}
