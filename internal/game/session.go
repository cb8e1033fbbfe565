// internal/game/session.go
//
// Game session state machine for one QWordle round.
// Responsibilities:
//   - Create sessions with a freshly selected answer pair (or fixed
//     answers, for tests and replays).
//   - Validate and apply guesses; track guess count and found/eliminated
//     letter hints.
//   - State transitions: playing → won/lost; terminal states absorb.
//
// Notes:
//   - Winning is textual equality with either answer, never derived from
//     per-letter marks.
//   - An invalid word consumes no attempt and changes no state.

package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/mpalmer/qwordle/internal/words"
)

// DefaultMaxGuesses is the standard attempt budget per round.
const DefaultMaxGuesses = 6

// ErrNotAWord means the submitted guess is not in the valid-guess pool.
// The session is untouched; the caller should re-prompt.
var ErrNotAWord = errors.New("game: not a valid word")

// ErrFinished means a guess was submitted to a terminal session.
var ErrFinished = errors.New("game: session already finished")

// Session holds the state of a single QWordle round. Create with
// NewSession or NewSessionWithAnswers; the zero value is not usable.
type Session struct {
	answerA    string
	answerB    string
	maxGuesses int
	guessCount int
	status     Status
	isAllowed  func(string) bool
	found      map[byte]struct{} // letters confirmed in an answer
	eliminated map[byte]struct{} // letters confirmed in neither answer
}

// NewSession loads the corpus, selects a letter-disjoint answer pair, and
// returns a fresh session. rng may be nil for time-seeded selection.
// Fails with ErrPairExhausted (wrapped) when the pool cannot produce a
// pair; that aborts setup, it is not retried here.
func NewSession(maxGuesses int, rng *rand.Rand) (*Session, error) {
	if err := words.Init(); err != nil {
		return nil, err
	}
	a, b, err := SelectPair(words.AnswerPool(), rng, DefaultMaxPairAttempts)
	if err != nil {
		return nil, err
	}
	return NewSessionWithAnswers(a, b, maxGuesses, words.IsAllowed), nil
}

// NewSessionWithAnswers builds a session around fixed answers and a
// custom guess-legality check. Used by tests and by NewSession.
func NewSessionWithAnswers(answerA, answerB string, maxGuesses int, isAllowed func(string) bool) *Session {
	return &Session{
		answerA:    strings.ToLower(answerA),
		answerB:    strings.ToLower(answerB),
		maxGuesses: maxGuesses,
		status:     StatusPlaying,
		isAllowed:  isAllowed,
		found:      make(map[byte]struct{}),
		eliminated: make(map[byte]struct{}),
	}
}

// Submit validates and scores one guess, mutating the session.
//
// Validation rules:
//   - Session must still be playing (ErrFinished otherwise).
//   - Guess must be in the valid-guess pool (ErrNotAWord otherwise;
//     guess count and hint sets are untouched).
//
// State transitions:
//   - Guess equals either answer → Won, immediately.
//   - Else if the attempt budget is spent → Lost.
//   - Else remain playing.
func (s *Session) Submit(guess string) (GuessResult, error) {
	if s.status != StatusPlaying {
		return GuessResult{}, ErrFinished
	}
	if !s.isAllowed(guess) {
		return GuessResult{}, ErrNotAWord
	}

	res, _, _ := Score(guess, s.answerA, s.answerB)
	s.guessCount++

	// Hint sets grow monotonically; re-inserting is a no-op.
	for _, ls := range res.Letters {
		if ls.Mark == MarkMiss {
			s.eliminated[ls.Letter] = struct{}{}
		} else {
			s.found[ls.Letter] = struct{}{}
		}
	}

	switch {
	case guess == s.answerA || guess == s.answerB:
		s.status = StatusWon
	case s.guessCount >= s.maxGuesses:
		s.status = StatusLost
	}
	return res, nil
}

// Status reports the coarse session state.
func (s *Session) Status() Status { return s.status }

// IsWon reports whether a guess matched an answer.
func (s *Session) IsWon() bool { return s.status == StatusWon }

// IsLost reports whether the attempt budget ran out without a win.
func (s *Session) IsLost() bool { return s.status == StatusLost }

// GuessCount returns how many valid guesses have been accepted.
func (s *Session) GuessCount() int { return s.guessCount }

// AttemptsRemaining returns how many valid guesses are left.
func (s *Session) AttemptsRemaining() int { return s.maxGuesses - s.guessCount }

// FoundLetters returns the letters confirmed present in an answer,
// sorted ascending, as a string for keyboard-hint rendering.
func (s *Session) FoundLetters() string { return sortedLetters(s.found) }

// EliminatedLetters returns the letters confirmed absent from both
// answers, sorted ascending.
func (s *Session) EliminatedLetters() string { return sortedLetters(s.eliminated) }

// RevealAnswers returns both answers once the session is terminal, and
// empty strings while play is still in progress.
func (s *Session) RevealAnswers() (string, string) {
	if s.status == StatusPlaying {
		return "", ""
	}
	return s.answerA, s.answerB
}

// PromptMessage labels the upcoming guess, e.g. "Guess 3/6:".
func (s *Session) PromptMessage() string {
	return fmt.Sprintf("Guess %d/%d:", s.guessCount+1, s.maxGuesses)
}

// WonMessage is the end-of-game congratulation with the reveal.
func (s *Session) WonMessage() string {
	return fmt.Sprintf("Congratulations! The answers were %s and %s",
		strings.ToUpper(s.answerA), strings.ToUpper(s.answerB))
}

// LostMessage is the end-of-game consolation with the reveal.
func (s *Session) LostMessage() string {
	return fmt.Sprintf("Bad luck! The answers were %s and %s",
		strings.ToUpper(s.answerA), strings.ToUpper(s.answerB))
}

// sortedLetters flattens a letter set into an ascending string.
func sortedLetters(set map[byte]struct{}) string {
	out := make([]byte, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return string(out)
}
