package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// JSONFormatter renders the full parse result as indented JSON for tooling.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the style name.
func (f *JSONFormatter) Name() string {
	return StyleJSON
}

type jsonReport struct {
	Summary     transcript.Summary      `json:"summary"`
	Entries     []transcript.Entry      `json:"entries"`
	Diagnostics []transcript.Diagnostic `json:"diagnostics,omitempty"`
}

// Format renders the result as JSON.
func (f *JSONFormatter) Format(ctx context.Context, result *transcript.Result, w io.Writer) error {
	report := jsonReport{
		Summary: result.Summary,
		Entries: result.Entries,
	}
	if report.Entries == nil {
		report.Entries = []transcript.Entry{}
	}
	if f.opts.IncludeDiagnostics {
		report.Diagnostics = result.Diagnostics
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
