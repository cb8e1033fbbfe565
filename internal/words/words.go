// internal/words/words.go
//
// Word corpus management for the QWordle engine.
//
// Responsibilities:
//   - Load the valid-guess pool from environment-provided files or fall back
//     to embedded defaults.
//   - Derive the answer pool: the letter-unique subset of the answers list,
//     deduplicated, re-filtered at load time regardless of how the input
//     files were prepared.
//   - Maintain a set for quick guess-legality lookups (answers ∪ guesses).
//   - Supply FilterUnique for the offline corpus-preparation step.
//
// Word Lists:
//   - "answers": words eligible to be hidden answers (letter-unique only).
//   - "allowed": valid guesses (always includes answers; may repeat letters).
//
// Initialization behavior (Init):
//   1. If QWORDLE_ANSWERS_FILE and QWORDLE_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only QWORDLE_ALLOWED_FILE is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set, fall back to the embedded defaults.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); everything else is skipped.
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mpalmer/qwordle/internal/letters"
)

// WordLength is the fixed letter count per word for a game.
const WordLength = 5

// --- embedded defaults (ensure the game runs even if no files configured) ---

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_extra_allowed.txt
var embeddedExtraAllowed string

var (
	initOnce   sync.Once
	answers    []string            // letter-unique answer pool
	allowedSet map[string]struct{} // answers ∪ guesses
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if the answer pool ends up too small to pick a pair from.
func Init() error {
	initOnce.Do(func() {
		var ansList, allowList []string

		answersPath := os.Getenv("QWORDLE_ANSWERS_FILE")
		allowedPath := os.Getenv("QWORDLE_ALLOWED_FILE")

		switch {
		// Case 1: both lists provided
		case answersPath != "" && allowedPath != "":
			var err error
			ansList, err = readWordFile(answersPath)
			if err != nil {
				initialErr = err
				return
			}
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}

		// Case 2: only allowed file provided → use for both
		case answersPath == "" && allowedPath != "":
			var err error
			allowList, err = readWordFile(allowedPath)
			if err != nil {
				initialErr = err
				return
			}
			ansList = allowList

		// Case 3: fallback to embedded defaults
		default:
			ansList = normalizeLines(embeddedAnswers)
			allowList = append(normalizeLines(embeddedExtraAllowed), ansList...)
		}

		answers, allowedSet = buildPools(ansList, allowList)

		if len(answers) < 2 {
			initialErr = errors.New("words: answer pool needs at least two letter-unique words")
			return
		}
		log.Debug().
			Int("answers", len(answers)).
			Int("allowed", len(allowedSet)).
			Msg("word lists loaded")
	})
	return initialErr
}

// buildPools derives the answer pool and the allowed set from raw lists.
// The answer pool never trusts its input: repeated-letter words are dropped
// and duplicates collapsed here, whatever the offline filtering produced.
// Every answer is also forced into the allowed set.
func buildPools(ansList, allowList []string) ([]string, map[string]struct{}) {
	pool := make([]string, 0, len(ansList))
	inPool := make(map[string]struct{}, len(ansList))
	for _, w := range ansList {
		if _, dup := inPool[w]; dup || !letters.IsUnique(w) {
			continue
		}
		inPool[w] = struct{}{}
		pool = append(pool, w)
	}

	allowed := make(map[string]struct{}, len(allowList)+len(pool))
	for _, w := range allowList {
		allowed[w] = struct{}{}
	}
	for _, w := range pool {
		allowed[w] = struct{}{}
	}
	return pool, allowed
}

// readWordFile loads one word per line from a file,
// lowercases, trims, and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string
// into a slice of valid lowercase 5-letter words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// AnswerPool returns the letter-unique answer pool.
// Callers must treat the returned slice as read-only.
func AnswerPool() []string {
	return answers
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowedSet)
}

// FilterUnique copies the letter-unique subset of a raw word list from in
// to out, one word per line, normalizing case and skipping malformed
// lines. Returns how many words were kept and dropped. This is the
// offline data-preparation step that produces an answers file.
func FilterUnique(in io.Reader, out io.Writer) (kept, dropped int, err error) {
	var buf bytes.Buffer
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) != WordLength || !isAlpha(w) || !letters.IsUnique(w) {
			dropped++
			continue
		}
		buf.WriteString(w)
		buf.WriteByte('\n')
		kept++
	}
	if err := sc.Err(); err != nil {
		return kept, dropped, err
	}
	_, err = out.Write(buf.Bytes())
	return kept, dropped, err
}
