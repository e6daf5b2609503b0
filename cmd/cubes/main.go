package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xtding233/cube-saver/internal/planner"
	"github.com/xtding233/cube-saver/internal/pricing"
	"github.com/xtding233/cube-saver/internal/report"
)

var (
	// Global flags
	verbose bool
	noColor bool
	format  string

	// Logger
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cubes",
		Short: "Plan which upgrade modules to fund with your cube balance",
		Long: `cubes picks the modules to fund from a cube balance so that the
tier-weighted priority is as high as possible, then shows which of the
remaining modules become free by recycling cashback.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return errors.Wrap(err, "initialize logger")
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVarP(&format, "format", "f", "text", "Output format: text, yaml")

	root.AddCommand(newPlanCmd(), newSampleCmd(), newInteractiveCmd())
	return root
}

// runReport plans in and prints the result to the command's output.
func runReport(cmd *cobra.Command, in pricing.Input) error {
	r, err := planner.New(logger).Run(in)
	if err != nil {
		return err
	}
	switch format {
	case "yaml":
		return report.RenderYAML(cmd.OutOrStdout(), r)
	case "text", "":
		return report.Render(cmd.OutOrStdout(), r, report.Options{NoColor: noColor})
	default:
		return errors.Errorf("unknown format %q (want text or yaml)", format)
	}
}

// syncLogger flushes buffered log entries. Cobra skips PersistentPostRun when a
// command fails, so this runs from main on every path.
func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func main() {
	err := newRootCmd().Execute()
	syncLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
