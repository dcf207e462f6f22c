// Package output renders parsed transcripts in the supported output styles.
package output

// Style names accepted by New.
const (
	StyleDisplay = "display"
	StylePlain   = "plain"
	StyleExport  = "export"
	StyleJSON    = "json"
	StyleHTML    = "html"
)

// DefaultTimestampLayout renders parsed timestamps when no layout is configured.
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// MissingTimestamp is the explicit absence marker used by the export style
// for entries that carry no timestamp. It is timestamp-shaped, so exported
// text stays re-parseable.
const MissingTimestamp = "??:??:??"

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// TimestampLayout is the Go time layout for rendering parsed
	// timestamps. Empty means DefaultTimestampLayout.
	TimestampLayout string

	// IncludeDiagnostics appends a diagnostics section after the entries.
	IncludeDiagnostics bool

	// Verbose includes source line ranges and summary details.
	Verbose bool

	// ActionColors overrides the html style's action color map.
	ActionColors map[string]string
}

func (o FormatOptions) timestampLayout() string {
	if o.TimestampLayout == "" {
		return DefaultTimestampLayout
	}
	return o.TimestampLayout
}
