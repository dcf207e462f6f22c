package transcript

import "testing"

func testEntries() []Entry {
	return []Entry{
		{Kind: EntrySpeech, Speaker: "Officer", Action: "Czat IC", Text: "Where were you?"},
		{Kind: EntrySpeech, Speaker: "Suspect", Action: "Czat IC", Text: "At home."},
		{Kind: EntryEvent, Speaker: "Suspect", Action: "Akcja /me", Text: "Suspect wzrusza ramionami."},
		{Kind: EntrySpeech, Speaker: "Officer", Action: "Czat OOC", Text: "brb"},
	}
}

func TestFilterSpeaker(t *testing.T) {
	got := FilterSpeaker(testEntries(), "officer")
	if len(got) != 2 {
		t.Fatalf("Got %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.Speaker != "Officer" {
			t.Errorf("Speaker = %q, want %q", e.Speaker, "Officer")
		}
	}
}

func TestFilterKeyword(t *testing.T) {
	got := FilterKeyword(testEntries(), "HOME")
	if len(got) != 1 {
		t.Fatalf("Got %d entries, want 1", len(got))
	}
	if got[0].Speaker != "Suspect" {
		t.Errorf("Speaker = %q, want %q", got[0].Speaker, "Suspect")
	}
}

func TestFilterAction(t *testing.T) {
	got := FilterAction(testEntries(), "czat ic")
	if len(got) != 2 {
		t.Fatalf("Got %d entries, want 2", len(got))
	}

	if got := FilterAction(testEntries(), "missing"); len(got) != 0 {
		t.Errorf("Got %d entries, want 0", len(got))
	}
}
