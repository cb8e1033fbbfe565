// render.go
//
// Terminal rendering of scored guesses.
// Green = exact, yellow = present, plain = miss. Skipped positions
// (later occurrences of a repeated guess letter) are dimmed, since they
// carry no feedback of their own.

package main

import (
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/mpalmer/qwordle/internal/game"
)

// formatResult renders one scored guess as a colorized uppercase row,
// with the "(both words)" / "(same word)" suffix on non-winning guesses.
func formatResult(res game.GuessResult, won bool) string {
	marks := make(map[int]game.Mark, len(res.Letters))
	for _, ls := range res.Letters {
		marks[ls.Pos] = ls.Mark
	}

	var b strings.Builder
	for i := 0; i < len(res.Guess); i++ {
		ch := strings.ToUpper(string(res.Guess[i]))
		switch marks[i] {
		case game.MarkHit:
			b.WriteString(colorstring.Color("[green]" + ch + "[reset]"))
		case game.MarkPresent:
			b.WriteString(colorstring.Color("[yellow]" + ch + "[reset]"))
		case game.MarkMiss:
			b.WriteString(ch)
		default:
			b.WriteString(colorstring.Color("[dark_gray]" + ch + "[reset]"))
		}
	}

	if !won {
		if res.BothWords {
			b.WriteString("  (both words)")
		} else {
			b.WriteString("  (same word)")
		}
	}
	return b.String()
}
