package cli

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/wattguard/pkg/cli/config"
	"github.com/secmon-lab/wattguard/pkg/utils/errutil"
	"github.com/secmon-lab/wattguard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var benchCfg config.Benchmarks

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate benchmark configuration and print the resolved constants",
		Flags:   benchCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			benchmarks, err := benchCfg.Configure(c)
			if err != nil {
				return errutil.Handle(ctx, err, "benchmark validation failed")
			}

			logger := logging.From(ctx)
			logger.LogAttrs(ctx, slog.LevelInfo, "Benchmark configuration valid", benchmarks.LogAttrs()...)
			return nil
		},
	}
}
