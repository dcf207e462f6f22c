package transcript

// Default values used when Options fields are left empty.
var (
	// DefaultTimestampLayouts are the accepted timestamp layouts, tried in
	// order. The day.month.year form is the native in-game log format; the
	// rest cover exported and hand-edited logs.
	DefaultTimestampLayouts = []string{
		"2.01.2006 15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
		"15:04:05",
		"15:04",
	}

	// DefaultTones are the speaking verbs recognized between a speaker
	// name and the colon separator.
	DefaultTones = []string{"mówi", "szepcze", "krzyczy"}
)

// Options configures a parse. The zero value uses defaults.
// Options values are treated as immutable; the caller builds one from its
// settings source and passes it in.
type Options struct {
	// TimestampLayouts are Go time layouts tried in order when parsing a
	// raw timestamp token. Empty means DefaultTimestampLayouts.
	TimestampLayouts []string

	// Tones are speaking-verb markers recognized in speaker turns.
	// Empty means DefaultTones.
	Tones []string
}

func (o Options) withDefaults() Options {
	if len(o.TimestampLayouts) == 0 {
		o.TimestampLayouts = DefaultTimestampLayouts
	}
	if len(o.Tones) == 0 {
		o.Tones = DefaultTones
	}
	return o
}
