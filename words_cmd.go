// words_cmd.go
//
// Offline word-list utilities.
// `qwordle words filter` turns a raw word list into the letter-unique
// subset used as an answers file; the game itself re-validates at load
// time, so this is a convenience, not a trust boundary.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mpalmer/qwordle/internal/words"
)

var (
	wordsCmd = &cobra.Command{
		Use:   "words",
		Short: "Word-list utilities",
	}

	filterCmd = &cobra.Command{
		Use:   "filter <raw-list> <out-file>",
		Short: "Write the letter-unique subset of a raw word list",
		Args:  cobra.ExactArgs(2),
		RunE:  runFilter,
	}
)

func init() {
	wordsCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(wordsCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}

	kept, dropped, err := words.FilterUnique(in, out)
	if err != nil {
		out.Close()
		return err
	}
	log.Debug().Str("out", args[1]).Int("kept", kept).Int("dropped", dropped).Msg("word list filtered")
	fmt.Fprintf(cmd.OutOrStdout(), "kept %d letter-unique words, dropped %d\n", kept, dropped)
	return out.Close()
}
