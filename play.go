// play.go
//
// Interactive play loop for one QWordle round.
// Responsibilities:
//   - Create a session (optionally with a seeded answer selection).
//   - Read guesses line by line, normalize, submit, and render feedback.
//   - Surface the eliminated-letter hint and the end-of-game reveal.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"

	"github.com/mpalmer/qwordle/internal/game"
)

var (
	playMaxGuesses int
	playSeed       int64

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a round of QWordle",
		Long: `Play a round of QWordle: two hidden five-letter words share no
letters, and every guess is scored against both at once.`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
)

func init() {
	playCmd.Flags().IntVar(&playMaxGuesses, "max-guesses", game.DefaultMaxGuesses, "guesses allowed per round")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for answer selection (0 = random)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	var rng *rand.Rand
	if playSeed != 0 {
		rng = rand.New(rand.NewSource(playSeed))
	}
	sess, err := game.NewSession(playMaxGuesses, rng)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "Welcome to QWordle!")

	for {
		if sess.IsLost() {
			fmt.Fprintln(out, sess.LostMessage())
			return nil
		}

		fmt.Fprintln(out, sess.PromptMessage())
		if !in.Scan() {
			return in.Err()
		}
		guess := strings.ToLower(strings.TrimSpace(in.Text()))

		res, err := sess.Submit(guess)
		if errors.Is(err, game.ErrNotAWord) {
			fmt.Fprintln(out, "Not a valid word! Please guess again")
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, formatResult(res, sess.IsWon()))

		if sess.IsWon() {
			fmt.Fprintln(out, sess.WonMessage())
			return nil
		}
		if hint := sess.EliminatedLetters(); hint != "" {
			fmt.Fprintln(out, colorstring.Color("[dark_gray]eliminated: "+strings.ToUpper(hint)+"[reset]"))
		}
		fmt.Fprintln(out)
	}
}
