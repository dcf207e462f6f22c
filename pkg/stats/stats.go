// Package stats computes summary statistics over parsed transcripts.
package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// SpeakerStats holds per-speaker counts.
type SpeakerStats struct {
	Name       string `json:"name"`
	Turns      int    `json:"turns"`
	Words      int    `json:"words"`
	RadioTurns int    `json:"radio_turns,omitempty"`
}

// Stats is the complete statistical summary of a transcript.
type Stats struct {
	TotalEntries int `json:"total_entries"`
	SpeechTurns  int `json:"speech_turns"`
	Events       int `json:"events"`
	Diagnostics  int `json:"diagnostics"`

	// Speakers is sorted by turn count descending, then by name.
	Speakers []SpeakerStats `json:"speakers"`

	// Actions counts entries per action tag (e.g. "Czat IC").
	Actions map[string]int `json:"actions,omitempty"`

	// Tones counts speech turns per tone verb.
	Tones map[string]int `json:"tones,omitempty"`

	// First and Last are the earliest and latest parsed timestamps.
	// Zero if no entry carried a parseable timestamp.
	First time.Time `json:"first,omitzero"`
	Last  time.Time `json:"last,omitzero"`
}

// Duration returns the time span covered by timestamped entries.
func (s *Stats) Duration() time.Duration {
	if s.First.IsZero() || s.Last.IsZero() {
		return 0
	}
	return s.Last.Sub(s.First)
}

// Option configures collection behavior.
type Option func(*collector)

// WithSpeakerFilter limits speaker statistics to the named speakers.
func WithSpeakerFilter(names []string) Option {
	return func(c *collector) {
		if len(names) > 0 {
			c.speakerFilter = make(map[string]bool, len(names))
			for _, n := range names {
				c.speakerFilter[strings.ToLower(n)] = true
			}
		}
	}
}

type collector struct {
	speakerFilter map[string]bool // nil means all speakers
}

// Collect computes statistics over a parse result.
func Collect(result *transcript.Result, opts ...Option) *Stats {
	c := &collector{}
	for _, opt := range opts {
		opt(c)
	}

	s := &Stats{
		TotalEntries: len(result.Entries),
		Diagnostics:  len(result.Diagnostics),
		Actions:      make(map[string]int),
		Tones:        make(map[string]int),
	}

	bySpeaker := make(map[string]*SpeakerStats)

	for i := range result.Entries {
		e := &result.Entries[i]

		if e.Action != "" {
			s.Actions[e.Action]++
		}

		if e.HasTimestamp() && !e.Timestamp.IsZero() {
			if s.First.IsZero() || e.Timestamp.Before(s.First) {
				s.First = e.Timestamp
			}
			if s.Last.IsZero() || e.Timestamp.After(s.Last) {
				s.Last = e.Timestamp
			}
		}

		if e.Kind == transcript.EntryEvent {
			s.Events++
			continue
		}
		s.SpeechTurns++

		if e.Tone != "" {
			s.Tones[e.Tone]++
		}

		if c.speakerFilter != nil && !c.speakerFilter[strings.ToLower(e.Speaker)] {
			continue
		}

		sp := bySpeaker[e.Speaker]
		if sp == nil {
			sp = &SpeakerStats{Name: e.Speaker}
			bySpeaker[e.Speaker] = sp
		}
		sp.Turns++
		sp.Words += len(strings.Fields(e.Text))
		if e.Radio {
			sp.RadioTurns++
		}
	}

	s.Speakers = make([]SpeakerStats, 0, len(bySpeaker))
	for _, sp := range bySpeaker {
		s.Speakers = append(s.Speakers, *sp)
	}
	sort.Slice(s.Speakers, func(i, j int) bool {
		if s.Speakers[i].Turns != s.Speakers[j].Turns {
			return s.Speakers[i].Turns > s.Speakers[j].Turns
		}
		return s.Speakers[i].Name < s.Speakers[j].Name
	})

	if len(s.Actions) == 0 {
		s.Actions = nil
	}
	if len(s.Tones) == 0 {
		s.Tones = nil
	}

	return s
}
