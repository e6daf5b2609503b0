package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/cube-saver/internal/scenario"
)

func newPlanCmd() *cobra.Command {
	var (
		file   string
		dir    string
		name   string
		budget int
		demand string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a balance against the required modules",
		Long: `Plan reads the balance and per-tier demand from a scenario file, a
scenario directory (default.yaml + scenarios/<name>.yaml) or flags.
Flags override file values.`,
		Example: `  cubes plan --budget 60 --demand 11,4,5,0,0
  cubes plan --scenario late.yaml --budget 900
  cubes plan --dir ~/.config/cubes --name endgame -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" && dir != "" {
				return errors.New("--scenario and --dir are mutually exclusive")
			}

			var raw scenario.RawConfig
			var err error
			switch {
			case file != "":
				raw, err = scenario.ReadFile(file)
			case dir != "":
				raw, err = scenario.NewLoader(dir).LoadMerged(name)
			}
			if err != nil {
				return err
			}

			var o scenario.Overrides
			if cmd.Flags().Changed("budget") {
				o.Budget = &budget
			}
			if cmd.Flags().Changed("demand") {
				if o.Demand, err = scenario.ParseDemand(demand); err != nil {
					return err
				}
			}

			in, err := scenario.Resolve(raw, o)
			if err != nil {
				return err
			}
			logger.Debug("resolved scenario",
				zap.String("file", file),
				zap.String("dir", dir),
				zap.String("name", name),
				zap.String("version", raw.Version),
			)
			return runReport(cmd, in)
		},
	}

	cmd.Flags().StringVarP(&file, "scenario", "s", "", "Scenario YAML file")
	cmd.Flags().StringVar(&dir, "dir", "", "Scenario directory holding default.yaml and scenarios/")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Scenario name inside --dir")
	cmd.Flags().IntVarP(&budget, "budget", "b", 0, "Cube balance")
	cmd.Flags().StringVarP(&demand, "demand", "d", "", "Required modules per tier, e.g. 11,4,5,0,0")
	return cmd
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Plan the built-in example (60 cubes, 11/4/5/0/0 modules)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, scenario.Sample())
		},
	}
}

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Ask for the balance and demand, then plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := scenario.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Ask()
			if err != nil {
				return err
			}
			return runReport(cmd, in)
		},
	}
}
