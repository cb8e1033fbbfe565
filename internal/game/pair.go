// internal/game/pair.go
//
// Constrained answer-pair selection.
// Responsibilities:
//   - Sample two distinct words from the answer pool whose concatenation
//     has no repeated letter (the two words partition ten letters).
//   - Fail deterministically once the attempt budget is spent.

package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/mpalmer/qwordle/internal/letters"
)

// DefaultMaxPairAttempts bounds how many rejected draws SelectPair
// tolerates before declaring the pool unusable.
const DefaultMaxPairAttempts = 100

// ErrPairExhausted means no letter-disjoint pair was found within the
// attempt budget. The pool is too small or too homogeneous; game setup
// must abort rather than degrade.
var ErrPairExhausted = errors.New("game: could not select non-overlapping answer pair")

// SelectPair draws two distinct words uniformly at random from pool,
// without replacement within a draw, until the pair shares no letters.
// rng may be nil, in which case a time-seeded source is used; tests pass
// a seeded source for reproducible selection.
func SelectPair(pool []string, rng *rand.Rand, maxAttempts int) (string, string, error) {
	if len(pool) < 2 {
		return "", "", fmt.Errorf("%w: pool has %d words", ErrPairExhausted, len(pool))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		i := rng.Intn(len(pool))
		j := rng.Intn(len(pool) - 1)
		if j >= i {
			j++
		}
		a, b := pool[i], pool[j]
		if letters.Disjoint(a, b) {
			return a, b, nil
		}
	}
	return "", "", fmt.Errorf("%w after %d attempts", ErrPairExhausted, maxAttempts)
}
