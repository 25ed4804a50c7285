package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/tayjaybabee/MIDIDiff/constants"
)

func init() {
	rootCmd.AddCommand(docsCmd)
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Opens the documentation in a browser",
	Long:  `Opens the documentation in a browser`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Opening documentation at %v\n", constants.DocumentationURL)
		if err := browser.OpenURL(constants.DocumentationURL); err != nil {
			fmt.Printf("Could not open browser: %v\n", err)
			fmt.Printf("Please visit the documentation manually at: %v\n", constants.DocumentationURL)
		}
	},
}
