package transcript

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParse_TwoTurns(t *testing.T) {
	result, err := Parse("Officer: Where were you?\nSuspect: At home.\n", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Entries) != 2 {
		t.Fatalf("Got %d entries, want 2", len(result.Entries))
	}
	if len(result.Diagnostics) != 0 {
		t.Fatalf("Got %d diagnostics, want 0: %+v", len(result.Diagnostics), result.Diagnostics)
	}

	want := []struct{ speaker, text string }{
		{"Officer", "Where were you?"},
		{"Suspect", "At home."},
	}
	for i, w := range want {
		if result.Entries[i].Speaker != w.speaker {
			t.Errorf("Entries[%d].Speaker = %q, want %q", i, result.Entries[i].Speaker, w.speaker)
		}
		if result.Entries[i].Text != w.text {
			t.Errorf("Entries[%d].Text = %q, want %q", i, result.Entries[i].Text, w.text)
		}
	}
}

func TestParse_ContinuationAndTimestamp(t *testing.T) {
	input := "[10:02] Officer: Go on.\n...still talking\n\nSuspect: No comment."
	result, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Diagnostics) != 0 {
		t.Fatalf("Got %d diagnostics, want 0: %+v", len(result.Diagnostics), result.Diagnostics)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("Got %d entries, want 2", len(result.Entries))
	}

	first := result.Entries[0]
	if first.Text != "Go on. ...still talking" {
		t.Errorf("Text = %q, want %q", first.Text, "Go on. ...still talking")
	}
	if !first.HasTimestamp() {
		t.Fatal("first entry has no parsed timestamp")
	}
	if hh, mm := first.Timestamp.Hour(), first.Timestamp.Minute(); hh != 10 || mm != 2 {
		t.Errorf("Timestamp = %02d:%02d, want 10:02", hh, mm)
	}
	if first.FirstLine != 1 || first.LastLine != 2 {
		t.Errorf("line range = %d..%d, want 1..2", first.FirstLine, first.LastLine)
	}

	second := result.Entries[1]
	if second.Speaker != "Suspect" || second.Text != "No comment." {
		t.Errorf("second entry = (%q, %q)", second.Speaker, second.Text)
	}
	if second.HasTimestamp() {
		t.Error("second entry unexpectedly has a timestamp")
	}
}

func TestParse_OrphanContinuation(t *testing.T) {
	result, err := Parse("...orphan continuation\nOfficer: Hello", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Got %d entries, want 1", len(result.Entries))
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(result.Diagnostics))
	}

	d := result.Diagnostics[0]
	if d.Kind != DiagOrphanContinuation {
		t.Errorf("Diagnostic kind = %q, want %q", d.Kind, DiagOrphanContinuation)
	}
	if d.Line != 1 {
		t.Errorf("Diagnostic line = %d, want 1", d.Line)
	}
	if result.Entries[0].Speaker != "Officer" || result.Entries[0].Text != "Hello" {
		t.Errorf("entry = (%q, %q)", result.Entries[0].Speaker, result.Entries[0].Text)
	}
}

func TestParse_EmptyUtterance(t *testing.T) {
	result, err := Parse("Officer: \nSuspect: ok", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Entries) != 1 {
		t.Fatalf("Got %d entries, want 1", len(result.Entries))
	}
	if result.Entries[0].Speaker != "Suspect" {
		t.Errorf("Speaker = %q, want %q", result.Entries[0].Speaker, "Suspect")
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1: %+v", len(result.Diagnostics), result.Diagnostics)
	}
	if result.Diagnostics[0].Kind != DiagEmptyUtterance {
		t.Errorf("Diagnostic kind = %q, want %q", result.Diagnostics[0].Kind, DiagEmptyUtterance)
	}
}

func TestParse_GameLogLine(t *testing.T) {
	input := "[2.02.2025 22:19:38] [Czat IC] Howard Goldberg mówi: Na glebe.\n" +
		"[2.02.2025 22:19:35] [Akcja /me] * Nieznajomy JCZAK wskazała na Musaeva.\n"
	result, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("Got %d entries, want 2", len(result.Entries))
	}
	if len(result.Diagnostics) != 0 {
		t.Fatalf("Got %d diagnostics, want 0: %+v", len(result.Diagnostics), result.Diagnostics)
	}

	speech := result.Entries[0]
	if speech.Kind != EntrySpeech {
		t.Errorf("Kind = %q, want %q", speech.Kind, EntrySpeech)
	}
	if speech.Speaker != "Howard Goldberg" || speech.Tone != "mówi" {
		t.Errorf("speaker/tone = %q/%q", speech.Speaker, speech.Tone)
	}
	if speech.Action != "Czat IC" {
		t.Errorf("Action = %q, want %q", speech.Action, "Czat IC")
	}
	wantTS := time.Date(2025, 2, 2, 22, 19, 38, 0, time.UTC)
	if !speech.Timestamp.Equal(wantTS) {
		t.Errorf("Timestamp = %v, want %v", speech.Timestamp, wantTS)
	}
	if speech.RawTimestamp != "2.02.2025 22:19:38" {
		t.Errorf("RawTimestamp = %q", speech.RawTimestamp)
	}

	emote := result.Entries[1]
	if emote.Kind != EntryEvent {
		t.Errorf("Kind = %q, want %q", emote.Kind, EntryEvent)
	}
	if emote.Speaker != "Nieznajomy JCZAK" {
		t.Errorf("Speaker = %q", emote.Speaker)
	}
}

func TestParse_PendingTimestamp(t *testing.T) {
	// Timestamp-before-speaker layout: the marker attaches to the next turn.
	result, err := Parse("[10:02]\nOfficer: Go on.", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Entries) != 1 || len(result.Diagnostics) != 0 {
		t.Fatalf("entries=%d diagnostics=%d, want 1/0", len(result.Entries), len(result.Diagnostics))
	}
	if result.Entries[0].RawTimestamp != "10:02" {
		t.Errorf("RawTimestamp = %q, want %q", result.Entries[0].RawTimestamp, "10:02")
	}
}

func TestParse_AmbiguousTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRaw string
	}{
		{
			name:    "pending replaced by pending",
			input:   "[10:02]\n[10:03]\nOfficer: hi",
			wantRaw: "10:03",
		},
		{
			name:    "pending superseded by own token",
			input:   "[10:02]\n[10:05] Officer: hi",
			wantRaw: "10:05",
		},
		{
			name:    "in-progress replaced by later marker",
			input:   "[10:02] Officer: hi\n[10:07]",
			wantRaw: "10:07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.input, Options{})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(result.Entries) != 1 {
				t.Fatalf("Got %d entries, want 1", len(result.Entries))
			}
			if result.Entries[0].RawTimestamp != tt.wantRaw {
				t.Errorf("RawTimestamp = %q, want %q (most recent wins)", result.Entries[0].RawTimestamp, tt.wantRaw)
			}
			if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != DiagAmbiguousTimestamp {
				t.Errorf("diagnostics = %+v, want one %s", result.Diagnostics, DiagAmbiguousTimestamp)
			}
		})
	}
}

func TestParse_MalformedTimestampIsAdvisory(t *testing.T) {
	result, err := Parse("[99:99:99] Officer: Hello", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// The entry is kept with the raw string preserved.
	if len(result.Entries) != 1 {
		t.Fatalf("Got %d entries, want 1", len(result.Entries))
	}
	e := result.Entries[0]
	if e.HasTimestamp() {
		t.Error("unparseable timestamp should not produce a parsed time")
	}
	if e.RawTimestamp != "99:99:99" {
		t.Errorf("RawTimestamp = %q, want %q", e.RawTimestamp, "99:99:99")
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != DiagMalformedTimestamp {
		t.Errorf("diagnostics = %+v, want one %s", result.Diagnostics, DiagMalformedTimestamp)
	}
}

func TestParse_UnrecognizedLine(t *testing.T) {
	result, err := Parse("Totally Unstructured Line\n", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("Got %d entries, want 0", len(result.Entries))
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != DiagUnrecognizedLine {
		t.Fatalf("diagnostics = %+v, want one %s", result.Diagnostics, DiagUnrecognizedLine)
	}
	if result.Diagnostics[0].Raw != "Totally Unstructured Line" {
		t.Errorf("Raw = %q", result.Diagnostics[0].Raw)
	}
}

func TestParse_InputNotText(t *testing.T) {
	_, err := Parse("Officer: hi\n\xff\xfe", Options{})
	if err == nil {
		t.Fatal("Parse() expected error for invalid UTF-8")
	}
	if !errors.Is(err, ErrInputNotText) {
		t.Errorf("errors.Is(err, ErrInputNotText) = false, err = %v", err)
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("error is %T, want *InputError", err)
	}
}

func TestParse_NeverFailsForMalformedText(t *testing.T) {
	// Structural malformation of any shape becomes diagnostics, never errors.
	inputs := []string{
		"",
		"\n\n\n",
		"[",
		"[]]]][[",
		":::",
		strings.Repeat("x", 10000),
		"[10:02] [10:03] [10:04]",
		"* \n*\n",
	}
	for _, input := range inputs {
		if _, err := Parse(input, Options{}); err != nil {
			t.Errorf("Parse(%q) error = %v, want nil", input, err)
		}
	}
}

func TestParse_LineRangesDisjointAndIncreasing(t *testing.T) {
	input := "[10:00]\nOfficer: one\ntwo\nthree\n\nSuspect: four\nfive\n" +
		"[Akcja /me] * Ktoś wstał.\nOfficer: six\n"
	result, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Entries) < 3 {
		t.Fatalf("Got %d entries, want at least 3", len(result.Entries))
	}

	prevLast := 0
	for i, e := range result.Entries {
		if e.FirstLine <= prevLast {
			t.Errorf("Entries[%d] range %d..%d overlaps previous ending at %d",
				i, e.FirstLine, e.LastLine, prevLast)
		}
		if e.LastLine < e.FirstLine {
			t.Errorf("Entries[%d] range %d..%d inverted", i, e.FirstLine, e.LastLine)
		}
		prevLast = e.LastLine
	}
}

func TestParse_SummaryCounts(t *testing.T) {
	input := "Officer: hi\nbad line continuation? no-\n\nNonsense Line Here\n"
	result, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.Summary.TotalLines != 4 {
		t.Errorf("TotalLines = %d, want 4", result.Summary.TotalLines)
	}
	if result.Summary.Entries != len(result.Entries) {
		t.Errorf("Summary.Entries = %d, want %d", result.Summary.Entries, len(result.Entries))
	}
	if result.Summary.Diagnostics != len(result.Diagnostics) {
		t.Errorf("Summary.Diagnostics = %d, want %d", result.Summary.Diagnostics, len(result.Diagnostics))
	}
}

func TestParse_CRLFInput(t *testing.T) {
	result, err := Parse("Officer: one\r\nSuspect: two\r\n", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("Got %d entries, want 2", len(result.Entries))
	}
	if result.Entries[1].Text != "two" {
		t.Errorf("Text = %q, want %q", result.Entries[1].Text, "two")
	}
}

func TestResult_Speakers(t *testing.T) {
	input := "Officer: one\nSuspect: two\nOfficer: three\n"
	result, err := Parse(input, Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	speakers := result.Speakers()
	want := []string{"Officer", "Suspect"}
	if len(speakers) != len(want) {
		t.Fatalf("Speakers() = %v, want %v", speakers, want)
	}
	for i := range want {
		if speakers[i] != want[i] {
			t.Errorf("Speakers()[%d] = %q, want %q", i, speakers[i], want[i])
		}
	}
}
