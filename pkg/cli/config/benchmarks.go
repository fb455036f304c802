package config

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Flag names for benchmark overrides
const (
	flagConfig              = "config"
	flagAvgBreachCost       = "avg-breach-cost"
	flagBaselineProbability = "baseline-breach-probability"
	flagDowntimeCost        = "downtime-cost-per-hour"
	flagRegulatoryFine      = "regulatory-fine-multiplier"
	flagReputationDamage    = "reputation-damage-multiplier"
)

// Benchmarks holds CLI configuration for the industry benchmark constants.
// Precedence is: built-in defaults < TOML file < explicit flags/env.
type Benchmarks struct {
	configPath          string
	avgBreachCost       float64
	baselineProbability float64
	downtimeCost        float64
	regulatoryFine      float64
	reputationDamage    float64
}

// Flags returns CLI flags for benchmark configuration
func (b *Benchmarks) Flags() []cli.Flag {
	defaults := model.DefaultBenchmarks()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagConfig,
			Usage:       "Path to a TOML file overriding benchmark constants",
			Sources:     cli.EnvVars("WATTGUARD_CONFIG"),
			Destination: &b.configPath,
		},
		&cli.FloatFlag{
			Name:        flagAvgBreachCost,
			Usage:       "Average breach cost for the energy sector",
			Value:       defaults.AvgBreachCostEnergy,
			Sources:     cli.EnvVars("WATTGUARD_AVG_BREACH_COST"),
			Destination: &b.avgBreachCost,
		},
		&cli.FloatFlag{
			Name:        flagBaselineProbability,
			Usage:       "Baseline monthly breach probability per 1000 endpoints",
			Value:       defaults.BaselineBreachProbability,
			Sources:     cli.EnvVars("WATTGUARD_BASELINE_BREACH_PROBABILITY"),
			Destination: &b.baselineProbability,
		},
		&cli.FloatFlag{
			Name:        flagDowntimeCost,
			Usage:       "Operational downtime cost per hour",
			Value:       defaults.DowntimeCostPerHour,
			Sources:     cli.EnvVars("WATTGUARD_DOWNTIME_COST_PER_HOUR"),
			Destination: &b.downtimeCost,
		},
		&cli.FloatFlag{
			Name:        flagRegulatoryFine,
			Usage:       "Regulatory fine multiplier",
			Value:       defaults.RegulatoryFineMultiplier,
			Sources:     cli.EnvVars("WATTGUARD_REGULATORY_FINE_MULTIPLIER"),
			Destination: &b.regulatoryFine,
		},
		&cli.FloatFlag{
			Name:        flagReputationDamage,
			Usage:       "Reputation damage multiplier",
			Value:       defaults.ReputationDamageMultiplier,
			Sources:     cli.EnvVars("WATTGUARD_REPUTATION_DAMAGE_MULTIPLIER"),
			Destination: &b.reputationDamage,
		},
	}
}

// LogAttrs returns log attributes for the benchmark configuration
func (b *Benchmarks) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("config_path", b.configPath),
	}
}

// Configure resolves the benchmark constants from defaults, the optional
// TOML file and explicit flag/env overrides, then validates the result.
func (b *Benchmarks) Configure(c *cli.Command) (model.Benchmarks, error) {
	benchmarks := model.DefaultBenchmarks()

	if b.configPath != "" {
		loaded, err := LoadBenchmarkFile(b.configPath)
		if err != nil {
			return benchmarks, err
		}
		loaded.apply(&benchmarks)
	}

	// Explicit flags and environment variables win over the file
	if c.IsSet(flagAvgBreachCost) {
		benchmarks.AvgBreachCostEnergy = b.avgBreachCost
	}
	if c.IsSet(flagBaselineProbability) {
		benchmarks.BaselineBreachProbability = b.baselineProbability
	}
	if c.IsSet(flagDowntimeCost) {
		benchmarks.DowntimeCostPerHour = b.downtimeCost
	}
	if c.IsSet(flagRegulatoryFine) {
		benchmarks.RegulatoryFineMultiplier = b.regulatoryFine
	}
	if c.IsSet(flagReputationDamage) {
		benchmarks.ReputationDamageMultiplier = b.reputationDamage
	}

	if err := benchmarks.Validate(); err != nil {
		return benchmarks, goerr.Wrap(err, "benchmark validation failed", goerr.V(ConfigPathKey, b.configPath))
	}

	return benchmarks, nil
}

// BenchmarkFile is the recognized TOML schema for benchmark overrides.
// Every key is optional; absent keys keep their current value.
type BenchmarkFile struct {
	AvgBreachCostEnergy        *float64 `toml:"avg_breach_cost_energy"`
	BaselineBreachProbability  *float64 `toml:"baseline_breach_probability"`
	DowntimeCostPerHour        *float64 `toml:"operational_downtime_cost_per_hour"`
	RegulatoryFineMultiplier   *float64 `toml:"regulatory_fine_multiplier"`
	ReputationDamageMultiplier *float64 `toml:"reputation_damage_multiplier"`
}

func (f *BenchmarkFile) apply(b *model.Benchmarks) {
	if f.AvgBreachCostEnergy != nil {
		b.AvgBreachCostEnergy = *f.AvgBreachCostEnergy
	}
	if f.BaselineBreachProbability != nil {
		b.BaselineBreachProbability = *f.BaselineBreachProbability
	}
	if f.DowntimeCostPerHour != nil {
		b.DowntimeCostPerHour = *f.DowntimeCostPerHour
	}
	if f.RegulatoryFineMultiplier != nil {
		b.RegulatoryFineMultiplier = *f.RegulatoryFineMultiplier
	}
	if f.ReputationDamageMultiplier != nil {
		b.ReputationDamageMultiplier = *f.ReputationDamageMultiplier
	}
}

// LoadBenchmarkFile reads and parses a benchmark TOML file. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func LoadBenchmarkFile(path string) (*BenchmarkFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "benchmark file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read benchmark file", goerr.V(ConfigPathKey, path))
	}

	var file BenchmarkFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse benchmark TOML", goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	return &file, nil
}
