// cmd/scorecurve/root.go
package scorecurve

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/k0kubun/pp"
	"github.com/mwiater/scorecurve/curve"
	"github.com/mwiater/scorecurve/internal/config"
	"github.com/mwiater/scorecurve/internal/logging"
	"github.com/mwiater/scorecurve/report"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	debug    bool

	// settings is the configuration resolved by the last PersistentPreRunE.
	settings *config.Config
)

// rootCmd prints the mean of the raw scores followed by the mean of every
// curved series, one per line.
var rootCmd = &cobra.Command{
	Use:   "scorecurve",
	Short: "Print the mean of raw and curved test scores",
	Long: `scorecurve averages a list of test scores as recorded and after each configured curve
(by default: raw, flat:5, flat:10, sqrt) and prints one mean per line.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, series, err := buildSeries()
		if err != nil {
			return err
		}
		return report.Report(series, report.NewWriterSink(cmd.OutOrStdout()))
	},
}

var osExit = os.Exit

// Execute runs the root command. On failure it writes one diagnostic line
// to the command's stderr and exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger := slog.New(logging.NewCLIHandler(rootCmd.ErrOrStderr(), slog.LevelError))
		logger.Error(fmt.Sprintf("scorecurve: %v", err))
		osExit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "optional config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "dump the resolved configuration to stderr")
}

// loadSettings resolves flags, environment and the optional config file,
// then installs the CLI logger.
func loadSettings(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyDebug, cmd.Flags().Lookup("debug")); err != nil {
		return err
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	settings = cfg

	logging.SetDefaultCLILogger(cfg.LogLevel)
	if cfg.Debug {
		pp.Fprintln(cmd.ErrOrStderr(), cfg)
	}
	slog.Debug("configuration loaded", "file", cfgFile, "scores", len(cfg.Scores), "curves", len(cfg.Curves))
	return nil
}

// buildSeries applies the configured curves to the configured scores.
func buildSeries() ([]float64, []curve.Series, error) {
	curves, err := settings.ResolveCurves()
	if err != nil {
		return nil, nil, err
	}
	series, err := curve.Apply(settings.Scores, curves)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("curves applied", "series", len(series))
	return settings.Scores, series, nil
}
