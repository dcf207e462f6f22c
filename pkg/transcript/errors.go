package transcript

import "errors"

// ErrInputNotText is returned by Parse when the input is not valid text.
// It is the only fatal parse failure; malformed log content is reported
// through Diagnostics instead.
var ErrInputNotText = errors.New("transcript: input is not valid UTF-8 text")

// InputError describes input that cannot be treated as text at all.
// It wraps ErrInputNotText so callers can test with errors.Is.
type InputError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *InputError) Error() string {
	return "transcript: input is not valid UTF-8 text"
}

// Unwrap makes errors.Is(err, ErrInputNotText) true for InputError values.
func (e *InputError) Unwrap() error {
	return ErrInputNotText
}
