package transcript

import "fmt"

// builder accumulates classified lines into entries. It is the explicit
// single-pass accumulator threaded through the parse loop: at most one
// in-progress entry, plus a pending timestamp waiting for the next entry
// (timestamp-before-speaker log layouts).
type builder struct {
	opts Options

	cur           *Entry
	pendingTS     string
	pendingTSLine int

	entries []Entry
	diags   []Diagnostic
}

func newBuilder(opts Options) *builder {
	return &builder{opts: opts}
}

// open reports whether a speaker turn is currently in progress.
func (b *builder) open() bool {
	return b.cur != nil
}

// feed consumes one classified line.
func (b *builder) feed(cl Classification, line LogLine) {
	switch cl.Kind {
	case KindBlank:
		// Turn boundary.
		b.closeCurrent()

	case KindTimestamp:
		b.attachTimestamp(cl.RawTimestamp, line)

	case KindSpeakerTurn:
		b.closeCurrent()
		b.cur = &Entry{
			Kind:      EntrySpeech,
			Speaker:   cl.Speaker,
			Tone:      cl.Tone,
			Addressee: cl.Addressee,
			Radio:     cl.Radio,
			Action:    cl.Action,
			Text:      cl.Text,
			FirstLine: line.Num,
			LastLine:  line.Num,
		}
		b.adoptTimestamp(cl.RawTimestamp, line)

	case KindEvent:
		b.closeCurrent()
		b.cur = &Entry{
			Kind:      EntryEvent,
			Speaker:   cl.Speaker,
			Action:    cl.Action,
			Text:      cl.Text,
			FirstLine: line.Num,
			LastLine:  line.Num,
		}
		b.adoptTimestamp(cl.RawTimestamp, line)
		// Emote annotations are single-line; close immediately.
		b.closeCurrent()

	case KindContinuation:
		if b.cur == nil {
			b.diags = append(b.diags, Diagnostic{
				Kind:   DiagOrphanContinuation,
				Line:   line.Num,
				Raw:    line.Text,
				Detail: "continuation line with no turn in progress",
			})
			return
		}
		if b.cur.Text == "" {
			b.cur.Text = cl.Text
		} else {
			b.cur.Text += " " + cl.Text
		}
		b.cur.LastLine = line.Num
		if cl.RawTimestamp != "" {
			b.attachTimestamp(cl.RawTimestamp, line)
		}

	case KindUnrecognized:
		b.diags = append(b.diags, Diagnostic{
			Kind:   DiagUnrecognizedLine,
			Line:   line.Num,
			Raw:    line.Text,
			Detail: "line matches no known pattern",
		})
	}
}

// adoptTimestamp resolves the timestamp for a freshly opened entry from the
// line's own token and any pending timestamp. When both are present the
// line's own token wins (most recently emitted), and the conflict is
// surfaced as a diagnostic.
func (b *builder) adoptTimestamp(own string, line LogLine) {
	switch {
	case own != "" && b.pendingTS != "":
		b.diags = append(b.diags, Diagnostic{
			Kind:   DiagAmbiguousTimestamp,
			Line:   line.Num,
			Raw:    line.Text,
			Detail: fmt.Sprintf("pending timestamp %q from line %d superseded by %q", b.pendingTS, b.pendingTSLine, own),
		})
		b.cur.RawTimestamp = own
	case own != "":
		b.cur.RawTimestamp = own
	case b.pendingTS != "":
		b.cur.RawTimestamp = b.pendingTS
	}
	b.pendingTS = ""
	b.pendingTSLine = 0
}

// attachTimestamp handles a timestamp seen mid-stream: it goes to the
// in-progress entry if there is one, otherwise it pends for the next entry.
// An occupied slot is overwritten (most recent timestamp wins) with an
// ambiguity diagnostic.
func (b *builder) attachTimestamp(raw string, line LogLine) {
	if b.cur != nil {
		if b.cur.RawTimestamp != "" {
			b.diags = append(b.diags, Diagnostic{
				Kind:   DiagAmbiguousTimestamp,
				Line:   line.Num,
				Raw:    line.Text,
				Detail: fmt.Sprintf("timestamp %q replaces earlier %q on the same turn", raw, b.cur.RawTimestamp),
			})
		}
		b.cur.RawTimestamp = raw
		b.cur.LastLine = line.Num
		return
	}
	if b.pendingTS != "" {
		b.diags = append(b.diags, Diagnostic{
			Kind:   DiagAmbiguousTimestamp,
			Line:   line.Num,
			Raw:    line.Text,
			Detail: fmt.Sprintf("timestamp %q replaces unattached %q from line %d", raw, b.pendingTS, b.pendingTSLine),
		})
	}
	b.pendingTS = raw
	b.pendingTSLine = line.Num
}

// closeCurrent validates and emits the in-progress entry, if any.
func (b *builder) closeCurrent() {
	if b.cur == nil {
		return
	}
	entry := *b.cur
	b.cur = nil

	ok, diags := validateEntry(&entry, b.opts.TimestampLayouts)
	b.diags = append(b.diags, diags...)
	if ok {
		b.entries = append(b.entries, entry)
	}
}

// finish closes any remaining in-progress entry at end of input.
func (b *builder) finish() {
	b.closeCurrent()
}
