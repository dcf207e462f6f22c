package output

import (
	"context"
	"fmt"
	"io"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// DisplayFormatter renders entries as timestamp-prefixed, speaker-aligned
// human-readable text.
type DisplayFormatter struct {
	opts FormatOptions
}

// NewDisplayFormatter creates a display formatter with the given options.
func NewDisplayFormatter(opts FormatOptions) *DisplayFormatter {
	return &DisplayFormatter{opts: opts}
}

// Name returns the style name.
func (f *DisplayFormatter) Name() string {
	return StyleDisplay
}

// Format renders the result as aligned text.
func (f *DisplayFormatter) Format(ctx context.Context, result *transcript.Result, w io.Writer) error {
	layout := f.opts.timestampLayout()

	width := 0
	for i := range result.Entries {
		if l := len(speakerLabel(&result.Entries[i])); l > width {
			width = l
		}
	}

	for i := range result.Entries {
		e := &result.Entries[i]

		if ts := renderTimestamp(e, layout); ts != "" {
			fmt.Fprintf(w, "[%s] ", ts)
		}
		if e.Action != "" {
			fmt.Fprintf(w, "[%s] ", e.Action)
		}

		if e.Kind == transcript.EntryEvent {
			fmt.Fprintf(w, "* %s", e.Text)
		} else {
			fmt.Fprintf(w, "%-*s: %s", width, speakerLabel(e), e.Text)
		}

		if f.opts.Verbose {
			fmt.Fprintf(w, "  (lines %d-%d)", e.FirstLine, e.LastLine)
		}
		fmt.Fprintln(w)
	}

	if f.opts.IncludeDiagnostics {
		writeDiagnosticsText(w, result)
	}

	if f.opts.Verbose {
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Summary: %d lines, %d entries, %d diagnostics\n",
			result.Summary.TotalLines,
			result.Summary.Entries,
			result.Summary.Diagnostics)
	}

	return nil
}

// speakerLabel is the speaker column content: name plus tone verb,
// directed-speech, and radio markers.
func speakerLabel(e *transcript.Entry) string {
	label := e.Speaker
	if e.Tone != "" {
		label += " " + e.Tone
	}
	if e.Addressee != "" {
		label += " do " + e.Addressee
	}
	if e.Radio {
		label += " (radio)"
	}
	return label
}

// writeDiagnosticsText appends a diagnostics section shared by the display
// and plain styles.
func writeDiagnosticsText(w io.Writer, result *transcript.Result) {
	if !result.HasDiagnostics() {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Diagnostics (%d):\n", len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		if d.EndLine > 0 {
			fmt.Fprintf(w, "  lines %d-%d: %s: %s\n", d.Line, d.EndLine, d.Kind, d.Detail)
		} else {
			fmt.Fprintf(w, "  line %d: %s: %s\n", d.Line, d.Kind, d.Detail)
		}
	}
}
