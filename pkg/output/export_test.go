package output

import (
	"context"
	"strings"
	"testing"
)

func TestExportFormatter_Format(t *testing.T) {
	input := "[2.02.2025 22:19:38] [Czat IC] Howard Goldberg mówi: Elo\n" +
		"Suspect: No comment.\n"
	result := mustParse(t, input)

	out, err := Render(context.Background(), NewExportFormatter(FormatOptions{}), result)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "[2.02.2025 22:19:38] [Czat IC] Howard Goldberg mówi: Elo\n" +
		"[??:??:??] Suspect: No comment.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExportFormatter_MissingTimestampNeverOmitted(t *testing.T) {
	result := mustParse(t, "Officer: hi\n")
	out, err := Render(context.Background(), NewExportFormatter(FormatOptions{}), result)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "["+MissingTimestamp+"]") {
		t.Errorf("output %q missing absence marker %q", out, MissingTimestamp)
	}
}

// Export output fed back through Parse reproduces the same speakers and
// utterances, with timestamps preserved where originally parseable.
func TestExportFormatter_RoundTrip(t *testing.T) {
	input := "[2.02.2025 22:19:38] [Czat IC] Howard Goldberg mówi: Na glebe.\n" +
		"[10:02] Officer: Go on.\n...still talking\n\n" +
		"Jane Smith szepcze do Bob Walsh: nic nie mów\n" +
		"[Akcja /me] * Nieznajomy JCZAK wskazała na drzwi.\n" +
		"Suspect: No comment.\n"
	first := mustParse(t, input)

	exported, err := Render(context.Background(), NewExportFormatter(FormatOptions{}), first)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	second := mustParse(t, exported)
	if len(second.Entries) != len(first.Entries) {
		t.Fatalf("re-parse produced %d entries, want %d\nexported:\n%s",
			len(second.Entries), len(first.Entries), exported)
	}

	for i := range first.Entries {
		a, b := &first.Entries[i], &second.Entries[i]
		if a.Speaker != b.Speaker {
			t.Errorf("entry %d: speaker %q != %q", i, a.Speaker, b.Speaker)
		}
		if a.Text != b.Text {
			t.Errorf("entry %d: text %q != %q", i, a.Text, b.Text)
		}
		if a.Tone != b.Tone {
			t.Errorf("entry %d: tone %q != %q", i, a.Tone, b.Tone)
		}
		if a.Action != b.Action {
			t.Errorf("entry %d: action %q != %q", i, a.Action, b.Action)
		}
		if a.HasTimestamp() && !a.Timestamp.Equal(b.Timestamp) {
			t.Errorf("entry %d: timestamp %v != %v", i, a.Timestamp, b.Timestamp)
		}
	}
}

// Formatting the same result twice yields identical output.
func TestFormatters_Idempotent(t *testing.T) {
	result := mustParse(t, "[10:02] Officer: Go on.\n...more\n\nSuspect: ok\n")

	for _, style := range []string{StyleDisplay, StylePlain, StyleExport, StyleJSON, StyleHTML} {
		f, err := New(style, FormatOptions{IncludeDiagnostics: true})
		if err != nil {
			t.Fatalf("New(%q) error = %v", style, err)
		}
		a, err := Render(context.Background(), f, result)
		if err != nil {
			t.Fatalf("Render(%q) error = %v", style, err)
		}
		b, err := Render(context.Background(), f, result)
		if err != nil {
			t.Fatalf("Render(%q) error = %v", style, err)
		}
		if a != b {
			t.Errorf("style %q: repeated formatting differs", style)
		}
	}
}
