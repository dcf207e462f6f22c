package output

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// Colors used by the HTML style.
const (
	htmlTimestampColor = "#00BFFF"
	htmlSpeakerColor   = "#FFFFFF"
	htmlMessageColor   = "#CCCCCC"
	htmlDefaultColor   = "#FFFFFF"
)

// defaultActionColors maps action categories to their display colors.
// Unknown actions fall back to htmlDefaultColor.
var defaultActionColors = map[string]string{
	"Czat IC":   "#FFD700",
	"Czat OOC":  "#FF8C00",
	"Akcja /me": "#ADFF2F",
	"Akcja /do": "#00CED1",
	"Komenda":   "#FF4500",
	"PW":        "#DA70D6",
}

// HTMLFormatter renders entries as inline-styled HTML fragments for a rich
// text pane: indexed rows with colored timestamp, action, and speaker spans.
type HTMLFormatter struct {
	opts   FormatOptions
	colors map[string]string
}

// NewHTMLFormatter creates an HTML formatter with the given options.
func NewHTMLFormatter(opts FormatOptions) *HTMLFormatter {
	colors := opts.ActionColors
	if colors == nil {
		colors = defaultActionColors
	}
	return &HTMLFormatter{opts: opts, colors: colors}
}

// Name returns the style name.
func (f *HTMLFormatter) Name() string {
	return StyleHTML
}

// Format renders the result as one div per entry.
func (f *HTMLFormatter) Format(ctx context.Context, result *transcript.Result, w io.Writer) error {
	layout := f.opts.timestampLayout()

	for i := range result.Entries {
		e := &result.Entries[i]
		fmt.Fprint(w, "<div>")
		fmt.Fprintf(w, `<span style="color: %s;">[%d]</span> `, htmlMessageColor, i+1)

		if ts := renderTimestamp(e, layout); ts != "" {
			fmt.Fprintf(w, `<span style="color: %s; font-weight: bold;">[%s]</span> `,
				htmlTimestampColor, html.EscapeString(ts))
		}
		if e.Action != "" {
			fmt.Fprintf(w, `<span style="color: %s; font-weight: bold;">[%s]</span> `,
				f.actionColor(e.Action), html.EscapeString(e.Action))
		}
		if e.Kind == transcript.EntrySpeech && e.Speaker != "" {
			fmt.Fprintf(w, `<span style="color: %s; font-weight: bold;">%s:</span> `,
				htmlSpeakerColor, html.EscapeString(speakerLabel(e)))
		}
		if e.Kind == transcript.EntryEvent {
			fmt.Fprintf(w, `<span style="color: %s;">* %s</span>`,
				htmlMessageColor, html.EscapeString(e.Text))
		} else {
			fmt.Fprintf(w, `<span style="color: %s;">%s</span>`,
				htmlMessageColor, html.EscapeString(e.Text))
		}
		fmt.Fprintln(w, "</div>")
	}

	if f.opts.IncludeDiagnostics {
		for _, d := range result.Diagnostics {
			fmt.Fprintf(w, "<pre>line %d: %s: %s</pre>\n",
				d.Line, d.Kind, html.EscapeString(d.Detail))
		}
	}
	return nil
}

func (f *HTMLFormatter) actionColor(action string) string {
	if c, ok := f.colors[action]; ok {
		return c
	}
	return htmlDefaultColor
}
