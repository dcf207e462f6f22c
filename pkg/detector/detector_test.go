package detector

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFromLines_NativeFormat(t *testing.T) {
	lines := []string{
		"[2.02.2025 22:19:38] [Czat IC] Howard Goldberg mówi: Dzień dobry.",
		"[2.02.2025 22:19:45] [Czat IC] Jane Smith mówi: Witam.",
		"[2.02.2025 22:20:01] * Howard Goldberg kiwa głową.",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("expected a match for native format")
	}

	best := result.BestMatch()
	if best.Format.Name != "Bracketed day.month.year" {
		t.Errorf("BestMatch().Format.Name = %q, want %q", best.Format.Name, "Bracketed day.month.year")
	}
	if best.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", best.Confidence)
	}
	if result.ParsedLines != 3 {
		t.Errorf("ParsedLines = %d, want 3", result.ParsedLines)
	}
	if result.AmbiguityNote == "" {
		t.Error("expected an ambiguity note for the day-first format")
	}
}

func TestDetectFromLines_ClockOnly(t *testing.T) {
	lines := []string{
		"[10:02:15] Jane Smith mówi: Go on.",
		"[10:02:30] Howard Goldberg mówi: Fine.",
	}

	d := New()
	result := d.DetectFromLines(lines)

	best := result.BestMatch()
	if best == nil {
		t.Fatal("expected a match")
	}
	// Both clock formats match; the one with seconds is more specific.
	if best.Format.Layout != "15:04:05" {
		t.Errorf("BestMatch().Format.Layout = %q, want %q", best.Format.Layout, "15:04:05")
	}
	if result.AmbiguityNote != "" {
		t.Errorf("AmbiguityNote = %q, want empty", result.AmbiguityNote)
	}
}

func TestDetectFromLines_ISO(t *testing.T) {
	lines := []string{
		"[2025-02-02T22:19:38Z] Jane Smith mówi: Witam.",
		"[2025-02-02 22:19:45] Howard Goldberg mówi: Dzień dobry.",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if len(result.Matches) != 2 {
		t.Fatalf("len(Matches) = %d, want 2", len(result.Matches))
	}
	for _, m := range result.Matches {
		if m.Confidence != 0.5 {
			t.Errorf("%s: Confidence = %v, want 0.5", m.Format.Name, m.Confidence)
		}
	}
}

func TestDetectFromLines_NoTimestamps(t *testing.T) {
	lines := []string{
		"Jane Smith mówi: nothing here is dated.",
		"* Howard Goldberg wzrusza ramionami.",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if result.HasMatch() {
		t.Errorf("expected no match, got %d", len(result.Matches))
	}
	if result.BestMatch() != nil {
		t.Error("BestMatch() should be nil")
	}
}

func TestDetectFromLines_Empty(t *testing.T) {
	d := New()
	result := d.DetectFromLines(nil)

	if result.HasMatch() {
		t.Error("expected no match for empty input")
	}
	if result.SampledLines != 0 {
		t.Errorf("SampledLines = %d, want 0", result.SampledLines)
	}
}

func TestDetectFromLines_MixedConfidence(t *testing.T) {
	lines := []string{
		"[2.02.2025 22:19:38] Jane Smith mówi: dated.",
		"[2.02.2025 22:19:45] Jane Smith mówi: dated again.",
		"undated continuation line",
		"another undated line",
	}

	d := New()
	result := d.DetectFromLines(lines)

	best := result.BestMatch()
	if best == nil {
		t.Fatal("expected a match")
	}
	if best.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", best.Confidence)
	}
	if best.MatchCount != 2 {
		t.Errorf("MatchCount = %d, want 2", best.MatchCount)
	}
}

func TestDetectFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	content := "[2.02.2025 22:19:38] [Czat IC] Howard Goldberg mówi: Dzień dobry.\n" +
		"\n" +
		"[2.02.2025 22:19:45] [Czat IC] Jane Smith mówi: Witam.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d := New()
	result, err := d.DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}

	if result.SampledLines != 2 {
		t.Errorf("SampledLines = %d, want 2 (blank line skipped)", result.SampledLines)
	}
	if !result.HasMatch() {
		t.Fatal("expected a match")
	}
}

func TestDetectFromFile_Missing(t *testing.T) {
	d := New()
	if _, err := d.DetectFromFile(context.Background(), filepath.Join(t.TempDir(), "nope.log")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWithSampleSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.log")
	var content string
	for i := 0; i < 50; i++ {
		content += "[10:02:15] Jane Smith mówi: line.\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d := New(WithSampleSize(10))
	result, err := d.DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}
	if result.SampledLines != 10 {
		t.Errorf("SampledLines = %d, want 10", result.SampledLines)
	}
}
