package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// Formatter renders a parse result in a specific style.
// Formatting is total for validator-approved entries: a well-formed Result
// never causes a formatting failure, only writer errors do.
type Formatter interface {
	// Format renders the result to the given writer.
	Format(ctx context.Context, result *transcript.Result, w io.Writer) error

	// Name returns the style name (display, plain, export, json, html).
	Name() string
}

// New returns the formatter for the given style name.
func New(style string, opts FormatOptions) (Formatter, error) {
	switch style {
	case StyleDisplay:
		return NewDisplayFormatter(opts), nil
	case StylePlain:
		return NewPlainFormatter(opts), nil
	case StyleExport:
		return NewExportFormatter(opts), nil
	case StyleJSON:
		return NewJSONFormatter(opts), nil
	case StyleHTML:
		return NewHTMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output style %q (use display, plain, export, json, or html)", style)
	}
}

// Render is a convenience wrapper returning the formatted result as a string.
func Render(ctx context.Context, f Formatter, result *transcript.Result) (string, error) {
	var sb strings.Builder
	if err := f.Format(ctx, result, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// renderTimestamp produces the display form of an entry's timestamp: the
// parsed time under the configured layout, the raw token when parsing
// failed, or "" when the entry has none.
func renderTimestamp(e *transcript.Entry, layout string) string {
	if !e.HasTimestamp() {
		return e.RawTimestamp
	}
	// Clock-only log timestamps parse into year 0; rendering a date part
	// for them would invent information.
	if e.Timestamp.Year() == 0 {
		return e.Timestamp.Format("15:04:05")
	}
	return e.Timestamp.Format(layout)
}
