package cli

import (
	"context"
	"os"

	"github.com/secmon-lab/wattguard/pkg/cli/config"
	"github.com/secmon-lab/wattguard/pkg/controller/console"
	"github.com/secmon-lab/wattguard/pkg/usecase"
	"github.com/secmon-lab/wattguard/pkg/utils/errutil"
	"github.com/secmon-lab/wattguard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdScenario() *cli.Command {
	var benchCfg config.Benchmarks
	var simCfg config.Simulation
	var presetIDs []string

	var flags []cli.Flag
	flags = append(flags, benchCfg.Flags()...)
	flags = append(flags, simCfg.Flags()...)
	flags = append(flags, &cli.StringSliceFlag{
		Name:        "preset",
		Aliases:     []string{"p"},
		Usage:       "Preset to evaluate (conservative, current-baseline, optimistic); repeatable, default all",
		Sources:     cli.EnvVars("WATTGUARD_PRESETS"),
		Destination: &presetIDs,
	})

	return &cli.Command{
		Name:    "scenario",
		Aliases: []string{"s"},
		Usage:   "Run what-if sensitivity analysis over deployment scenarios",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			presets, err := usecase.SelectPresets(presetIDs)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to select presets")
			}

			benchmarks, err := benchCfg.Configure(c)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to resolve benchmark constants")
			}

			uc := usecase.New(benchmarks, simCfg.Options()...)
			results, err := uc.RunScenarios(ctx, presets)
			if err != nil {
				return errutil.Handle(ctx, err, "failed to run scenarios")
			}

			logging.From(ctx).Debug("scenario analysis completed", "count", len(results))

			r := console.New(os.Stdout)
			for _, result := range results {
				if err := r.RenderScenario(result.Preset, result.Report); err != nil {
					return errutil.Handle(ctx, err, "failed to render scenario")
				}
			}
			return nil
		},
	}
}
