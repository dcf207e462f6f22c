package output

import (
	"context"
	"fmt"
	"io"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// ExportFormatter renders entries in a stable, re-parseable normalized log
// form intended for saving and sharing:
//
//	[timestamp] [action] Speaker tone do Addressee (radio): utterance
//	[timestamp] [action] * event text
//
// Optional fragments are omitted when absent, except the timestamp: a
// missing timestamp renders as the MissingTimestamp placeholder so absence
// stays explicit. Feeding export output back through transcript.Parse
// reproduces the same speakers and utterances.
type ExportFormatter struct {
	opts FormatOptions
}

// NewExportFormatter creates an export formatter with the given options.
func NewExportFormatter(opts FormatOptions) *ExportFormatter {
	return &ExportFormatter{opts: opts}
}

// Name returns the style name.
func (f *ExportFormatter) Name() string {
	return StyleExport
}

// Format renders the result in the normalized export form.
func (f *ExportFormatter) Format(ctx context.Context, result *transcript.Result, w io.Writer) error {
	for i := range result.Entries {
		e := &result.Entries[i]

		ts := e.RawTimestamp
		if ts == "" {
			ts = MissingTimestamp
		}
		fmt.Fprintf(w, "[%s] ", ts)

		if e.Action != "" {
			fmt.Fprintf(w, "[%s] ", e.Action)
		}

		if e.Kind == transcript.EntryEvent {
			fmt.Fprintf(w, "* %s\n", e.Text)
			continue
		}

		fmt.Fprint(w, e.Speaker)
		if e.Tone != "" {
			fmt.Fprint(w, " "+e.Tone)
		}
		if e.Addressee != "" {
			fmt.Fprint(w, " do "+e.Addressee)
		}
		if e.Radio {
			fmt.Fprint(w, " (radio)")
		}
		fmt.Fprintf(w, ": %s\n", e.Text)
	}

	if f.opts.IncludeDiagnostics {
		// Commented so exported text stays parseable data plus annotations.
		for _, d := range result.Diagnostics {
			fmt.Fprintf(w, "# diagnostic line %d: %s: %s\n", d.Line, d.Kind, d.Detail)
		}
	}
	return nil
}
