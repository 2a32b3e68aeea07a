package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/apbrom/rom"
)

var decodeCmd = &cobra.Command{
	Use:   "decode word...",
	Short: "decode ROM words into instructions.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		for _, arg := range args {
			var text string
			text, err = decodeWord(arg)
			if err != nil {
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		return
	},
}

// decodeWord renders a word, given in any Go integer syntax, as an
// instruction.
func decodeWord(arg string) (text string, err error) {
	value, err := strconv.ParseUint(arg, 0, 64)
	if err != nil {
		return
	}

	insn, err := rom.Decode(rom.Word(value))
	if err != nil {
		return
	}

	text = insn.String()
	return
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
