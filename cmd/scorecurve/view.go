// cmd/scorecurve/view.go
package scorecurve

import (
	"github.com/mwiater/scorecurve/viewer"
	"github.com/spf13/cobra"
)

var startViewer = viewer.Start

// viewCmd represents the 'view' command.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse curved scores interactively",
	Long:  `The 'view' command opens a terminal browser listing every curve with its mean. Select a curve to see each score before and after the curve.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scores, series, err := buildSeries()
		if err != nil {
			return err
		}
		return startViewer(scores, series)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
