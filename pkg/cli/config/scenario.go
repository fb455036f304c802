package config

import (
	"log/slog"

	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Scenario holds CLI configuration for a single deployment scenario
type Scenario struct {
	attackSurface int
	effectiveness float64
	criticality   float64
	months        int
	breachCost    float64
	noDowntime    bool
	downtimeHours float64
}

// Flags returns CLI flags for scenario input
func (s *Scenario) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "attack-surface",
			Usage:       "Number of critical endpoints/assets exposed to compromise",
			Required:    true,
			Sources:     cli.EnvVars("WATTGUARD_ATTACK_SURFACE"),
			Destination: &s.attackSurface,
		},
		&cli.FloatFlag{
			Name:        "effectiveness",
			Usage:       "Zero trust effectiveness as fractional risk reduction (0-1)",
			Required:    true,
			Sources:     cli.EnvVars("WATTGUARD_EFFECTIVENESS"),
			Destination: &s.effectiveness,
		},
		&cli.FloatFlag{
			Name:        "criticality",
			Usage:       "Asset criticality score, typically 1.0-3.0",
			Value:       1.0,
			Sources:     cli.EnvVars("WATTGUARD_CRITICALITY"),
			Destination: &s.criticality,
		},
		&cli.IntFlag{
			Name:        "months",
			Usage:       "Evaluation period in months",
			Value:       1,
			Sources:     cli.EnvVars("WATTGUARD_MONTHS"),
			Destination: &s.months,
		},
		&cli.FloatFlag{
			Name:        "breach-cost",
			Usage:       "Custom breach cost overriding the sector benchmark",
			Sources:     cli.EnvVars("WATTGUARD_BREACH_COST"),
			Destination: &s.breachCost,
		},
		&cli.BoolFlag{
			Name:        "no-downtime",
			Usage:       "Exclude operational downtime from the savings model",
			Sources:     cli.EnvVars("WATTGUARD_NO_DOWNTIME"),
			Destination: &s.noDowntime,
		},
		&cli.FloatFlag{
			Name:        "downtime-hours",
			Usage:       "Average operational downtime per breach in hours",
			Value:       24,
			Sources:     cli.EnvVars("WATTGUARD_DOWNTIME_HOURS"),
			Destination: &s.downtimeHours,
		},
	}
}

// LogAttrs returns log attributes for the scenario configuration
func (s *Scenario) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("attack_surface", s.attackSurface),
		slog.Float64("effectiveness", s.effectiveness),
		slog.Float64("criticality", s.criticality),
		slog.Int("months", s.months),
	}
}

// Input builds the scenario input from the configured flags
func (s *Scenario) Input() model.ScenarioInput {
	input := model.NewScenarioInput(s.attackSurface, s.effectiveness)
	input.AssetCriticalityScore = s.criticality
	input.TimePeriodMonths = s.months
	input.CustomBreachCost = s.breachCost
	input.IncludeDowntime = !s.noDowntime
	input.AvgDowntimeHours = s.downtimeHours
	return input
}
