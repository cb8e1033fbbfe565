package main

import (
	"testing"

	"github.com/mitchellh/colorstring"
	"github.com/stretchr/testify/assert"

	"github.com/mpalmer/qwordle/internal/game"
)

func TestFormatResult_ColorsByMark(t *testing.T) {
	res, _, _ := game.Score("crown", "crane", "croak")

	got := formatResult(res, false)
	want := colorstring.Color("[green]C[reset]") +
		colorstring.Color("[green]R[reset]") +
		colorstring.Color("[green]O[reset]") +
		"W" +
		colorstring.Color("[yellow]N[reset]") +
		"  (both words)"
	assert.Equal(t, want, got)
}

func TestFormatResult_DimsSkippedRepeats(t *testing.T) {
	// Second and third s carry no feedback and render dimmed.
	res, _, _ := game.Score("sassy", "arise", "count")

	got := formatResult(res, false)
	want := colorstring.Color("[yellow]S[reset]") +
		colorstring.Color("[yellow]A[reset]") +
		colorstring.Color("[dark_gray]S[reset]") +
		colorstring.Color("[dark_gray]S[reset]") +
		"Y" +
		"  (same word)"
	assert.Equal(t, want, got)
}

func TestFormatResult_NoSuffixOnWin(t *testing.T) {
	res, _, _ := game.Score("count", "arise", "count")

	got := formatResult(res, true)
	assert.NotContains(t, got, "(both words)")
	assert.NotContains(t, got, "(same word)")
}
