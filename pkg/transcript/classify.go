package transcript

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classification rule names, in evaluation priority order. The rule that
// decided a line's kind is recorded in Classification.Rule so callers can
// trace why a line classified the way it did.
const (
	// RuleBlank: the line is empty or whitespace-only.
	RuleBlank = "blank"

	// RuleTimestamp: after stripping optional tags the line carried only a
	// bracketed timestamp-shaped token.
	RuleTimestamp = "timestamp"

	// RuleEvent: the line body starts with "*", an emote/action annotation.
	RuleEvent = "event"

	// RuleSpeaker: the line body matches
	// "Name [tone] [do Addressee] [(radio)]: utterance" where Name is one
	// to four words, the first starting with an uppercase letter.
	RuleSpeaker = "speaker"

	// RuleContinuation: plain text extending the previous turn, or text
	// that starts with a lowercase letter or continuation punctuation.
	RuleContinuation = "continuation"

	// RuleNone: no rule matched; the line is unrecognized.
	RuleNone = "none"
)

var (
	// reTimestampToken matches a leading bracketed timestamp-shaped token:
	// the bracket content starts with a digit or "?" and contains only
	// digits, "?", and date/time separators. Unparseable-but-shaped tokens
	// still match here; parsing happens later so no information is dropped.
	reTimestampToken = regexp.MustCompile(`^\[([0-9?][0-9?.:/\-+TZ ]*)\]\s*`)

	// reActionTag matches a leading bracketed category tag, e.g. "[Czat IC]"
	// or "[Akcja /me]". Evaluated after the timestamp token so a line may
	// carry both.
	reActionTag = regexp.MustCompile(`^\[([^\[\]]+)\]\s*`)

	// reEvent matches emote lines: "* Nieznajomy wskazała na drzwi."
	reEvent = regexp.MustCompile(`^\*\s*(.+)$`)

	// reEventActor extracts a leading run of capitalized words from an
	// emote body as the acting character, when present.
	reEventActor = regexp.MustCompile(`^\p{Lu}[\p{L}'’\-.]*(?:\s+\p{Lu}[\p{L}'’\-.]*){0,3}`)
)

// Classification is the result of classifying one raw line: its kind plus
// any fragments the matching rule extracted.
type Classification struct {
	Kind LineKind

	// Rule names the classification rule that decided Kind.
	Rule string

	// RawTimestamp is the bracketed timestamp token content, if present.
	RawTimestamp string

	// Action is the bracketed category tag content, if present.
	Action string

	Speaker   string
	Tone      string
	Addressee string
	Radio     bool

	// Text is the line body after all recognized prefixes.
	Text string
}

// Classifier classifies raw lines against the fixed rule set.
// It is stateless: the "is a turn currently open" bit lives in the parse
// loop and is passed into Classify, keeping classification a pure function.
type Classifier struct {
	speakerRE *regexp.Regexp
}

// NewClassifier builds a classifier for the given options.
func NewClassifier(opts Options) *Classifier {
	opts = opts.withDefaults()
	return &Classifier{speakerRE: compileSpeakerPattern(opts.Tones)}
}

// compileSpeakerPattern builds the speaker-turn pattern for the configured
// tone verbs. Capture groups: speaker, tone, addressee, radio, utterance.
func compileSpeakerPattern(tones []string) *regexp.Regexp {
	quoted := make([]string, len(tones))
	for i, t := range tones {
		quoted[i] = regexp.QuoteMeta(t)
	}
	word := `[\p{L}][\p{L}'’\-.]*`
	name := `\p{Lu}[\p{L}'’\-.]*(?:\s+` + word + `){0,3}?`
	return regexp.MustCompile(
		`^(` + name + `)` +
			`(?:\s+(` + strings.Join(quoted, "|") + `))?` +
			`(?:\s+do\s+(` + name + `))?` +
			`(?:\s*\((radio)\))?` +
			`\s*:\s*(.*)$`)
}

// Classify determines the structural role of one raw line. turnOpen reports
// whether the caller has a speaker turn in progress; it only influences the
// Continuation/Unrecognized decision for plain text.
func (c *Classifier) Classify(line LogLine, turnOpen bool) Classification {
	text := strings.TrimSpace(line.Text)
	if text == "" {
		return Classification{Kind: KindBlank, Rule: RuleBlank}
	}

	var cl Classification
	rest := text

	if m := reTimestampToken.FindStringSubmatch(rest); m != nil {
		cl.RawTimestamp = strings.TrimSpace(m[1])
		rest = rest[len(m[0]):]
	}

	if strings.HasPrefix(rest, "[") {
		m := reActionTag.FindStringSubmatch(rest)
		if m == nil {
			// Unterminated bracket; structurally broken.
			cl.Kind = KindUnrecognized
			cl.Rule = RuleNone
			cl.Text = text
			return cl
		}
		cl.Action = strings.TrimSpace(m[1])
		rest = rest[len(m[0]):]
	}

	if rest == "" {
		if cl.RawTimestamp != "" {
			cl.Kind = KindTimestamp
			cl.Rule = RuleTimestamp
			return cl
		}
		// A bare action tag carries no content to attach to anything.
		cl.Kind = KindUnrecognized
		cl.Rule = RuleNone
		cl.Text = text
		return cl
	}

	if m := reEvent.FindStringSubmatch(rest); m != nil {
		cl.Kind = KindEvent
		cl.Rule = RuleEvent
		cl.Text = strings.TrimSpace(m[1])
		cl.Speaker = reEventActor.FindString(cl.Text)
		return cl
	}

	if m := c.speakerRE.FindStringSubmatch(rest); m != nil {
		cl.Kind = KindSpeakerTurn
		cl.Rule = RuleSpeaker
		cl.Speaker = strings.TrimSpace(m[1])
		cl.Tone = m[2]
		cl.Addressee = strings.TrimSpace(m[3])
		cl.Radio = m[4] != ""
		cl.Text = strings.TrimSpace(m[5])
		return cl
	}

	if turnOpen || looksLikeContinuation(rest) {
		cl.Kind = KindContinuation
		cl.Rule = RuleContinuation
		cl.Text = rest
		return cl
	}

	cl.Kind = KindUnrecognized
	cl.Rule = RuleNone
	cl.Text = text
	return cl
}

// looksLikeContinuation reports whether text reads as wrapped dialogue even
// without an open turn: it starts with a lowercase letter or continuation
// punctuation. Such lines classify as Continuation so the builder can
// report them as orphans rather than merely unrecognized.
func looksLikeContinuation(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsLower(r) {
		return true
	}
	switch r {
	case '.', ',', ';', '-', '–', '—', '…', ')', '(':
		return true
	}
	return false
}
