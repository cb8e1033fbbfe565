// internal/game/types.go
//
// Core type definitions for the QWordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - LetterScore: a scored guess position.
//   - GuessResult: the full outcome of scoring one guess.
//   - Status: coarse session state (playing/won/lost).

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter matches an answer at the same position.
//   - "present": letter exists in an answer but in a different position.
//   - "miss":    letter does not exist in either answer.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// LetterScore is the classification of one guess position. Pos is the
// zero-based index into the guess text; positions holding a non-first
// occurrence of a repeated guess letter are skipped and never appear.
type LetterScore struct {
	Pos    int
	Letter byte
	Mark   Mark
}

// GuessResult is the outcome of scoring one guess against both answers.
type GuessResult struct {
	Guess     string        // the guess text, lowercase
	Letters   []LetterScore // one entry per first-occurrence position
	BothWords bool          // guess touched both answers
}

// Status is the coarse state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)
