package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marksOf(res GuessResult) []Mark {
	out := make([]Mark, len(res.Letters))
	for i, ls := range res.Letters {
		out[i] = ls.Mark
	}
	return out
}

func TestScore_TouchesBothAnswers(t *testing.T) {
	// "stack": s and a are present in arise, t and c in count, k in neither.
	res, touchedA, touchedB := Score("stack", "arise", "count")

	assert.True(t, touchedA)
	assert.True(t, touchedB)
	assert.True(t, res.BothWords)
	assert.Equal(t,
		[]Mark{MarkPresent, MarkPresent, MarkPresent, MarkPresent, MarkMiss},
		marksOf(res))
}

func TestScore_ExactAnswerHitsOneWord(t *testing.T) {
	res, touchedA, touchedB := Score("count", "arise", "count")

	assert.False(t, touchedA)
	assert.True(t, touchedB)
	assert.False(t, res.BothWords)
	assert.Equal(t,
		[]Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit},
		marksOf(res))
}

func TestScore_NoSharedLetters(t *testing.T) {
	res, touchedA, touchedB := Score("lymph", "arise", "count")

	assert.False(t, touchedA)
	assert.False(t, touchedB)
	assert.False(t, res.BothWords)
	assert.Equal(t,
		[]Mark{MarkMiss, MarkMiss, MarkMiss, MarkMiss, MarkMiss},
		marksOf(res))
}

func TestScore_SkipsRepeatedGuessLetters(t *testing.T) {
	// s repeats at positions 0, 2, 3; only position 0 is scored.
	res, _, _ := Score("sassy", "arise", "count")

	require.Len(t, res.Letters, 3)
	assert.Equal(t, []int{0, 1, 4}, []int{res.Letters[0].Pos, res.Letters[1].Pos, res.Letters[2].Pos})
	assert.Equal(t, byte('s'), res.Letters[0].Letter)
	assert.Equal(t, byte('a'), res.Letters[1].Letter)
	assert.Equal(t, byte('y'), res.Letters[2].Letter)

	assert.Equal(t, MarkPresent, res.Letters[0].Mark, "s occurs in arise")
	assert.Equal(t, MarkPresent, res.Letters[1].Mark, "a occurs in arise")
	assert.Equal(t, MarkMiss, res.Letters[2].Mark)
}

func TestScore_EmitsOnePerFirstOccurrence(t *testing.T) {
	cases := map[string]int{
		"arise": 5,
		"sassy": 3, // s repeats twice more
		"eerie": 3, // e x3, r, i
		"mamma": 2, // m x3, a x2
	}
	for guess, want := range cases {
		res, _, _ := Score(guess, "pound", "light")
		assert.Len(t, res.Letters, want, "guess %q", guess)
	}
}

func TestScore_Idempotent(t *testing.T) {
	first, a1, b1 := Score("stack", "arise", "count")
	second, a2, b2 := Score("stack", "arise", "count")

	assert.Equal(t, first, second)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

// Answer A outranks answer B within each tier. Real answer pairs are
// letter-disjoint, so the asymmetry is pinned down with overlapping
// answers where both checks could fire.
func TestScore_PrecedenceFavorsAnswerA(t *testing.T) {
	t.Run("exact tier", func(t *testing.T) {
		// Every letter of the guess is an exact hit on both answers at
		// position 0-2; A alone gets the credit.
		res, touchedA, touchedB := Score("crane", "crane", "crony")
		assert.True(t, touchedA)
		assert.False(t, touchedB, "A's exact check runs first")
		assert.False(t, res.BothWords)
	})

	t.Run("present tier", func(t *testing.T) {
		// stale and least are anagrams: every letter of "tales" is present
		// in both answers, never exact. All credit lands on A.
		res, touchedA, touchedB := Score("tales", "stale", "least")
		assert.True(t, touchedA)
		assert.False(t, touchedB)
		assert.False(t, res.BothWords)
		assert.Equal(t,
			[]Mark{MarkPresent, MarkPresent, MarkPresent, MarkPresent, MarkPresent},
			marksOf(res))
	})

	t.Run("exact on either outranks present", func(t *testing.T) {
		// o is an exact hit on B; A is merely checked first, it cannot
		// steal a hit it does not have.
		res, touchedA, touchedB := Score("crown", "crane", "croak")
		require.Len(t, res.Letters, 5)
		assert.Equal(t, MarkHit, res.Letters[0].Mark, "c exact on A")
		assert.Equal(t, MarkHit, res.Letters[1].Mark, "r exact on A")
		assert.Equal(t, MarkHit, res.Letters[2].Mark, "o exact on B, absent from A")
		assert.Equal(t, MarkMiss, res.Letters[3].Mark, "w in neither")
		assert.Equal(t, MarkPresent, res.Letters[4].Mark, "n present in A")
		assert.True(t, touchedA)
		assert.True(t, touchedB)
	})
}
