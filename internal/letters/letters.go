// internal/letters/letters.go
//
// Letter-repetition analysis for lowercase ASCII words.
// Responsibilities:
//   - Map each letter of a word to the positions it occupies.
//   - Report whether a word (or a concatenation of words) is letter-unique.
//
// Used by the words package to filter the answer pool and by the game
// package to recognize repeated letters inside a guess.
package letters

// Positions returns a map from each letter to the ascending zero-based
// positions it occupies in word. Returns nil when every letter is
// distinct, so a nil result doubles as a "no repeats" signal.
func Positions(word string) map[byte][]int {
	pos := make(map[byte][]int, len(word))
	for i := 0; i < len(word); i++ {
		pos[word[i]] = append(pos[word[i]], i)
	}
	if len(pos) == len(word) {
		return nil
	}
	return pos
}

// IsUnique reports whether every letter in word occurs exactly once.
func IsUnique(word string) bool {
	return Positions(word) == nil
}

// Disjoint reports whether a and b share no letters and are each
// internally letter-unique, i.e. their concatenation is letter-unique.
func Disjoint(a, b string) bool {
	return IsUnique(a + b)
}
