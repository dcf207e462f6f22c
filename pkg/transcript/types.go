package transcript

import "time"

// LogLine is a single raw line of a transcript log.
type LogLine struct {
	// Text is the raw line content, without the trailing newline.
	Text string

	// Num is the 1-based line number in the source log.
	Num int
}

// LineKind is the structural role of a raw line.
type LineKind string

const (
	// KindSpeakerTurn is a line opening a new speaker turn ("Name: text").
	KindSpeakerTurn LineKind = "speaker_turn"

	// KindTimestamp is a line carrying only a timestamp marker.
	KindTimestamp LineKind = "timestamp"

	// KindEvent is an emote or system annotation ("* Name does something").
	KindEvent LineKind = "event"

	// KindContinuation is wrapped dialogue extending the previous turn.
	KindContinuation LineKind = "continuation"

	// KindBlank is an empty or whitespace-only line.
	KindBlank LineKind = "blank"

	// KindUnrecognized is a line matching no known pattern.
	KindUnrecognized LineKind = "unrecognized"
)

// EntryKind distinguishes spoken turns from emote/event annotations.
type EntryKind string

const (
	// EntrySpeech is a spoken exchange attributed to a speaker.
	EntrySpeech EntryKind = "speech"

	// EntryEvent is an emote or action annotation.
	EntryEvent EntryKind = "event"
)

// Entry is one logical interrogation exchange.
// Entries are immutable once returned by Parse.
type Entry struct {
	// Kind is speech or event.
	Kind EntryKind `json:"kind"`

	// Speaker is the speaker identifier. Required for speech entries;
	// for event entries it is the actor name when one could be extracted.
	Speaker string `json:"speaker,omitempty"`

	// Tone is the speaking verb from the log, if any (mówi, szepcze, krzyczy).
	Tone string `json:"tone,omitempty"`

	// Addressee is the directed-speech target ("szepcze do <name>"), if any.
	Addressee string `json:"addressee,omitempty"`

	// Radio reports whether the line was marked as a radio call.
	Radio bool `json:"radio,omitempty"`

	// Action is the bracketed category tag, e.g. "Czat IC" or "Akcja /me".
	Action string `json:"action,omitempty"`

	// Timestamp is the parsed timestamp, zero if absent or unparseable.
	Timestamp time.Time `json:"timestamp,omitzero"`

	// RawTimestamp is the timestamp substring as it appeared in the log.
	// Preserved even when parsing succeeds so no information is lost.
	RawTimestamp string `json:"raw_timestamp,omitempty"`

	// Text is the utterance, with continuations joined by single spaces.
	Text string `json:"text"`

	// FirstLine and LastLine are the 1-based source line range.
	FirstLine int `json:"first_line"`
	LastLine  int `json:"last_line"`
}

// HasTimestamp reports whether the entry carries a parsed timestamp.
func (e *Entry) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}

// DiagnosticKind categorizes parse diagnostics.
type DiagnosticKind string

const (
	// DiagMalformedTimestamp indicates a timestamp-shaped token that did
	// not parse under any accepted layout. Advisory: the entry is kept.
	DiagMalformedTimestamp DiagnosticKind = "malformed_timestamp"

	// DiagOrphanContinuation indicates a continuation line with no open turn.
	DiagOrphanContinuation DiagnosticKind = "orphan_continuation"

	// DiagEmptySpeaker indicates a turn whose speaker is empty after trimming.
	DiagEmptySpeaker DiagnosticKind = "empty_speaker"

	// DiagEmptyUtterance indicates a turn whose utterance is empty after trimming.
	DiagEmptyUtterance DiagnosticKind = "empty_utterance"

	// DiagUnrecognizedLine indicates a line matching no classification rule.
	DiagUnrecognizedLine DiagnosticKind = "unrecognized_line"

	// DiagAmbiguousTimestamp indicates competing timestamps for one entry.
	// The most recently seen timestamp wins.
	DiagAmbiguousTimestamp DiagnosticKind = "ambiguous_timestamp"
)

// Diagnostic records a line or entry that could not be fully processed.
// Diagnostics are accumulated in parse order and never mutated.
type Diagnostic struct {
	// Kind categorizes the problem.
	Kind DiagnosticKind `json:"kind"`

	// Line is the 1-based line number the problem was detected on.
	Line int `json:"line"`

	// EndLine is the last affected line for multi-line entries (0 if single).
	EndLine int `json:"end_line,omitempty"`

	// Raw is the offending raw text.
	Raw string `json:"raw,omitempty"`

	// Detail is a human-readable explanation.
	Detail string `json:"detail,omitempty"`
}

// Summary provides aggregate counts for one parse.
type Summary struct {
	// TotalLines is the number of physical lines in the input.
	TotalLines int `json:"total_lines"`

	// Entries is the number of validated entries produced.
	Entries int `json:"entries"`

	// Diagnostics is the number of diagnostics produced.
	Diagnostics int `json:"diagnostics"`
}

// Result is the complete output of one parse invocation.
// Entry order is log order. Entry line ranges are pairwise disjoint and
// monotonically increasing.
type Result struct {
	// Entries are the validated entries in log order.
	Entries []Entry `json:"entries"`

	// Diagnostics are the accumulated parse diagnostics in parse order.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// HasDiagnostics reports whether any line or entry failed to fully parse.
func (r *Result) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

// Speakers returns the unique speaker names in order of first appearance.
func (r *Result) Speakers() []string {
	seen := make(map[string]bool, len(r.Entries))
	var names []string
	for i := range r.Entries {
		name := r.Entries[i].Speaker
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
