package transcript

import "strings"

// FilterSpeaker returns the entries spoken by the given speaker.
// Matching is case-insensitive.
func FilterSpeaker(entries []Entry, speaker string) []Entry {
	return filter(entries, func(e *Entry) bool {
		return strings.EqualFold(e.Speaker, speaker)
	})
}

// FilterKeyword returns the entries whose utterance contains the keyword.
// Matching is case-insensitive.
func FilterKeyword(entries []Entry, keyword string) []Entry {
	needle := strings.ToLower(keyword)
	return filter(entries, func(e *Entry) bool {
		return strings.Contains(strings.ToLower(e.Text), needle)
	})
}

// FilterAction returns the entries tagged with the given action category.
// Matching is case-insensitive.
func FilterAction(entries []Entry, action string) []Entry {
	return filter(entries, func(e *Entry) bool {
		return strings.EqualFold(e.Action, action)
	})
}

func filter(entries []Entry, keep func(*Entry) bool) []Entry {
	var out []Entry
	for i := range entries {
		if keep(&entries[i]) {
			out = append(out, entries[i])
		}
	}
	return out
}
