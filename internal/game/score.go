// internal/game/score.go
//
// Dual-answer guess scoring.
// Responsibilities:
//   - Classify each guess letter against two answers at once.
//   - Skip non-first occurrences of repeated guess letters.
//   - Report which answers the guess touched.
//
// Notes:
//   - Answers are letter-unique by pool construction; the skip rule and
//     the single-pass classification both rely on that.
//   - The precedence below is a behavioral contract: exact beats present,
//     and answer A beats answer B within the same tier. It decides which
//     answer gets "touched" when a letter is ambiguous between both.

package game

import (
	"strings"

	"github.com/mpalmer/qwordle/internal/letters"
)

// Score classifies guess against answerA and answerB and reports whether
// each answer was touched. Per position, in strict order: exact match on
// A, exact match on B, present in A, present in B, miss.
//
// Only the first occurrence of a repeated guess letter is scored: later
// occurrences can add nothing, since no answer repeats a letter, and
// would only duplicate or contradict the first occurrence's feedback.
//
// The guess must already be validated (lowercase, same length as the
// answers, present in the valid-guess pool).
func Score(guess, answerA, answerB string) (res GuessResult, touchedA, touchedB bool) {
	res.Guess = guess
	repeats := letters.Positions(guess)

	for i := 0; i < len(guess); i++ {
		c := guess[i]
		if pos, ok := repeats[c]; ok && pos[0] != i {
			continue
		}

		var m Mark
		switch {
		case c == answerA[i]:
			touchedA = true
			m = MarkHit
		case c == answerB[i]:
			touchedB = true
			m = MarkHit
		case strings.IndexByte(answerA, c) >= 0:
			touchedA = true
			m = MarkPresent
		case strings.IndexByte(answerB, c) >= 0:
			touchedB = true
			m = MarkPresent
		default:
			m = MarkMiss
		}
		res.Letters = append(res.Letters, LetterScore{Pos: i, Letter: c, Mark: m})
	}

	res.BothWords = touchedA && touchedB
	return res, touchedA, touchedB
}
