package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wattguard/pkg/cli/config"
	"github.com/secmon-lab/wattguard/pkg/controller/console"
	"github.com/secmon-lab/wattguard/pkg/usecase"
	"github.com/secmon-lab/wattguard/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var scenarioCfg config.Scenario
	var benchCfg config.Benchmarks
	var simCfg config.Simulation
	var output string

	var flags []cli.Flag
	flags = append(flags, scenarioCfg.Flags()...)
	flags = append(flags, benchCfg.Flags()...)
	flags = append(flags, simCfg.Flags()...)
	flags = append(flags, &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "Output format (text, json)",
		Value:       "text",
		Sources:     cli.EnvVars("WATTGUARD_OUTPUT"),
		Destination: &output,
	})

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Generate the monthly cybersecurity ROI report",
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

			switch output {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return errutil.Handle(ctx, goerr.Wrap(err, "failed to encode report"), "failed to write JSON output")
				}
				return nil
			case "text", "":
				return console.New(os.Stdout).RenderReport(report)
			default:
				return errutil.Handle(ctx, goerr.New("unknown output format", goerr.V("output", output)), "invalid output option")
			}
		},
	}
}
