// cmd/scorecurve/list_commands.go
package scorecurve

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(cmd.OutOrStdout(), rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

type commandInfo struct {
	path        string
	description string
}

// listAllCommands writes every command path under root with its short
// description, padded into two columns. Help and completion commands are
// skipped.
func listAllCommands(w io.Writer, root *cobra.Command) {
	rows := collectCommandData(root, "", "")

	width := 0
	for _, r := range rows {
		width = max(width, len(r.path))
	}

	fmt.Fprintln(w, "Commands and Subcommands:")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s%s%s\n", r.path, strings.Repeat(" ", width-len(r.path)+2), r.description)
	}
}

// collectCommandData walks the command tree depth first.
func collectCommandData(cmd *cobra.Command, parent, indent string) []commandInfo {
	path := cmd.Name()
	if parent != "" {
		path = parent + " " + cmd.Name()
	}

	rows := []commandInfo{{path: indent + path, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		if sub.Hidden || sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		rows = append(rows, collectCommandData(sub, path, indent+"  ")...)
	}
	return rows
}
