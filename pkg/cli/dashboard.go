package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/secmon-lab/wattguard/pkg/cli/config"
	"github.com/secmon-lab/wattguard/pkg/service/chart"
	"github.com/secmon-lab/wattguard/pkg/usecase"
	"github.com/secmon-lab/wattguard/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

func cmdDashboard() *cli.Command {
	var scenarioCfg config.Scenario
	var benchCfg config.Benchmarks
	var simCfg config.Simulation
	var projectionMonths int

	var flags []cli.Flag
	flags = append(flags, scenarioCfg.Flags()...)
	flags = append(flags, benchCfg.Flags()...)
	flags = append(flags, simCfg.Flags()...)
	flags = append(flags, &cli.IntFlag{
		Name:        "projection-months",
		Usage:       "Number of months for the cumulative savings projection",
		Value:       6,
		Sources:     cli.EnvVars("WATTGUARD_PROJECTION_MONTHS"),
		Destination: &projectionMonths,
	})

	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"d"},
		Usage:   "Render the executive ROI dashboard charts in the terminal",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			benchmarks, err := benchCfg.Configure(c)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to resolve benchmark constants")
			}

			uc := usecase.New(benchmarks, simCfg.Options()...)
			report, err := uc.GenerateMonthlyReport(ctx, scenarioCfg.Input())
			if err != nil {
				return errutil.Handle(ctx, err, "failed to generate report")
			}

			fmt.Fprintln(os.Stdout, chart.Dashboard(report, projectionMonths))
			return nil
		},
	}
}
