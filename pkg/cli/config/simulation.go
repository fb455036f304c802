package config

import (
	"log/slog"

	"github.com/secmon-lab/wattguard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Simulation holds CLI configuration for the Monte Carlo sampling
type Simulation struct {
	trials int
	seed   int64
}

// Flags returns CLI flags for simulation configuration
func (s *Simulation) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "trials",
			Usage:       "Number of Monte Carlo trials for the confidence interval",
			Value:       usecase.DefaultTrials,
			Sources:     cli.EnvVars("WATTGUARD_TRIALS"),
			Destination: &s.trials,
		},
		&cli.Int64Flag{
			Name:        "seed",
			Usage:       "Random seed for reproducible sampling",
			Value:       usecase.DefaultSeed,
			Sources:     cli.EnvVars("WATTGUARD_SEED"),
			Destination: &s.seed,
		},
	}
}

// LogAttrs returns log attributes for the simulation configuration
func (s *Simulation) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("trials", s.trials),
		slog.Int64("seed", s.seed),
	}
}

// Options converts the configuration into model options
func (s *Simulation) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithTrials(s.trials),
		usecase.WithSeed(s.seed),
	}
}
