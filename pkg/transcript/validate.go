package transcript

import (
	"fmt"
	"strings"
	"time"
)

// validateEntry enforces structural invariants on a built entry. Checks run
// in order and the first hard failure wins: a speech entry needs a non-empty
// speaker, every entry needs non-empty text. A failing entry is excluded
// but always leaves a diagnostic behind.
//
// The timestamp check is advisory: a raw token that parses under none of
// the accepted layouts produces a MalformedTimestamp diagnostic, but the
// entry is kept with the raw string preserved.
func validateEntry(e *Entry, layouts []string) (bool, []Diagnostic) {
	if e.Kind == EntrySpeech && strings.TrimSpace(e.Speaker) == "" {
		return false, []Diagnostic{{
			Kind:    DiagEmptySpeaker,
			Line:    e.FirstLine,
			EndLine: endLine(e),
			Raw:     e.Text,
			Detail:  "turn has no speaker",
		}}
	}

	if strings.TrimSpace(e.Text) == "" {
		return false, []Diagnostic{{
			Kind:    DiagEmptyUtterance,
			Line:    e.FirstLine,
			EndLine: endLine(e),
			Raw:     e.Speaker,
			Detail:  fmt.Sprintf("turn by %q has no utterance", e.Speaker),
		}}
	}

	var diags []Diagnostic
	if e.RawTimestamp != "" {
		ts, err := parseTimestamp(e.RawTimestamp, layouts)
		if err != nil {
			diags = append(diags, Diagnostic{
				Kind:    DiagMalformedTimestamp,
				Line:    e.FirstLine,
				EndLine: endLine(e),
				Raw:     e.RawTimestamp,
				Detail:  err.Error(),
			})
		} else {
			e.Timestamp = ts
		}
	}
	return true, diags
}

// parseTimestamp tries each accepted layout in order.
func parseTimestamp(raw string, layouts []string) (time.Time, error) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q matches none of the accepted layouts", raw)
}

func endLine(e *Entry) int {
	if e.LastLine > e.FirstLine {
		return e.LastLine
	}
	return 0
}
