// cmd/scorecurve/list_curves.go
package scorecurve

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/scorecurve/curve"
	"github.com/spf13/cobra"
)

// listCurvesCmd implements 'list curves', which prints the supported curve
// specs and the ones the current configuration applies.
var listCurvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "List the supported curves",
	Long:  `The 'curves' subcommand lists every curve spec accepted in the 'curves' config key, followed by the curves the current configuration applies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		renderer := lipgloss.NewRenderer(out)
		header := renderer.NewStyle().Bold(true).Padding(0, 1)
		cell := renderer.NewStyle().Padding(0, 1)

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(renderer.NewStyle().Faint(true)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return header
				}
				return cell
			}).
			Headers("CURVE", "DESCRIPTION")
		for _, info := range curve.Catalog() {
			t.Row(info.Spec, info.Description)
		}

		fmt.Fprintln(out, t.Render())
		fmt.Fprintf(out, "Configured: %s\n", strings.Join(settings.Curves, ", "))
		return nil
	},
}

func init() {
	listCmd.AddCommand(listCurvesCmd)
}
