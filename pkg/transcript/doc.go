// Package transcript turns raw interrogation transcript logs into
// structured, validated entries.
//
// A transcript log is plain-text dialogue captured during in-game
// role-play interrogations, for example:
//
//	[2.02.2025 22:19:38] [Czat IC] Howard Goldberg mówi: Elo
//	[2.02.2025 22:19:41] [Akcja /me] * Nieznajomy wskazała na drzwi.
//
// Parse classifies every line, assembles multi-line speaker turns into
// entries, validates them, and reports anything it could not process as
// a Diagnostic. Malformed input never fails the parse; only input that
// is not text at all does.
package transcript
