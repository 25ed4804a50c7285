package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "midi-diff",
	Short:        "Compare MIDI files and output their differences",
	Long:         `MIDIDiff - Compare MIDI files and output their differences.`,
	SilenceUsage: true,
}

func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	cobra.CheckErr(rootCmd.Execute())
}

// normalizeArgs keeps the historical surface working: a first argument
// that is not a known subcommand or flag is assumed to be a file path
// and routed to diff.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	first := args[0]
	if strings.HasPrefix(first, "-") || isKnownCommand(first) {
		return args
	}
	return append([]string{"diff"}, args...)
}

func isKnownCommand(name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}
