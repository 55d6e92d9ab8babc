package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cmdRoot is the base command when no other command has been specified.
var cmdRoot = &cobra.Command{
	Use:   "hashtab",
	Short: "Poke at an incrementally-resizing hash table",
	Long: `
hashtab is a small harness around the hashtab library: it seeds a
string-keyed table, reports how the table grows and migrates, and lets you
look up keys interactively.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	DisableAutoGenTag: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(0)
	},
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
