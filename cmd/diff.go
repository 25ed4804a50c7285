package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tayjaybabee/MIDIDiff/core"
)

func init() {
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <file_a> <file_b> <out_file>",
	Short: "Compares two MIDI files",
	Long:  `Compares two MIDI files and writes the notes that differ to a third`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return core.Run(args[0], args[1], args[2])
	},
}
