// cmd/scorecurve/list.go
package scorecurve

import (
	"github.com/spf13/cobra"
)

// listCmd represents the 'list' command group and acts as a namespace
// for subcommands that list information (for example, curves or commands).
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing curves and commands",
	Long:  `The 'list' command groups related subcommands that list curves or commands. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
