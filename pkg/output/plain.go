package output

import (
	"context"
	"fmt"
	"io"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// PlainFormatter renders entries as bare "Speaker: utterance" lines.
type PlainFormatter struct {
	opts FormatOptions
}

// NewPlainFormatter creates a plain formatter with the given options.
func NewPlainFormatter(opts FormatOptions) *PlainFormatter {
	return &PlainFormatter{opts: opts}
}

// Name returns the style name.
func (f *PlainFormatter) Name() string {
	return StylePlain
}

// Format renders the result as speaker and utterance only.
func (f *PlainFormatter) Format(ctx context.Context, result *transcript.Result, w io.Writer) error {
	for i := range result.Entries {
		e := &result.Entries[i]
		if e.Kind == transcript.EntryEvent {
			fmt.Fprintf(w, "* %s\n", e.Text)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", e.Speaker, e.Text)
	}

	if f.opts.IncludeDiagnostics {
		writeDiagnosticsText(w, result)
	}
	return nil
}
