package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// Benchmarks holds the industry benchmark constants for the renewable energy
// sector. The set is loaded once at startup and treated as read-only.
type Benchmarks struct {
	// AvgBreachCostEnergy is the average cost of a data breach in the
	// energy sector (IBM Cost of a Data Breach 2024)
	AvgBreachCostEnergy float64 `toml:"avg_breach_cost_energy" json:"avg_breach_cost_energy"`
	// BaselineBreachProbability is the monthly breach probability for a
	// 1000-endpoint organization
	BaselineBreachProbability float64 `toml:"baseline_breach_probability" json:"baseline_breach_probability"`
	// DowntimeCostPerHour is the operational downtime cost per hour,
	// utility specific
	DowntimeCostPerHour float64 `toml:"operational_downtime_cost_per_hour" json:"operational_downtime_cost_per_hour"`
	// RegulatoryFineMultiplier scales direct costs into regulatory fine exposure
	RegulatoryFineMultiplier float64 `toml:"regulatory_fine_multiplier" json:"regulatory_fine_multiplier"`
	// ReputationDamageMultiplier scales direct costs into reputation damage
	ReputationDamageMultiplier float64 `toml:"reputation_damage_multiplier" json:"reputation_damage_multiplier"`
}

// DefaultBenchmarks returns the built-in benchmark constants
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		AvgBreachCostEnergy:        6_450_000,
		BaselineBreachProbability:  0.023,
		DowntimeCostPerHour:        50_000,
		RegulatoryFineMultiplier:   1.5,
		ReputationDamageMultiplier: 0.3,
	}
}

// Validate checks if the Benchmarks are usable by the model
func (b *Benchmarks) Validate() error {
	if b.AvgBreachCostEnergy <= 0 {
		return goerr.New("average breach cost must be positive", goerr.V("value", b.AvgBreachCostEnergy))
	}
	if b.BaselineBreachProbability < 0 || b.BaselineBreachProbability > 1 {
		return goerr.New("baseline breach probability must be in [0,1]", goerr.V("value", b.BaselineBreachProbability))
	}
	if b.DowntimeCostPerHour < 0 {
		return goerr.New("downtime cost per hour cannot be negative", goerr.V("value", b.DowntimeCostPerHour))
	}
	if b.RegulatoryFineMultiplier < 0 {
		return goerr.New("regulatory fine multiplier cannot be negative", goerr.V("value", b.RegulatoryFineMultiplier))
	}
	if b.ReputationDamageMultiplier < 0 {
		return goerr.New("reputation damage multiplier cannot be negative", goerr.V("value", b.ReputationDamageMultiplier))
	}
	return nil
}

// LogAttrs returns log attributes for the benchmark constants
func (b *Benchmarks) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Float64("avg_breach_cost_energy", b.AvgBreachCostEnergy),
		slog.Float64("baseline_breach_probability", b.BaselineBreachProbability),
		slog.Float64("operational_downtime_cost_per_hour", b.DowntimeCostPerHour),
		slog.Float64("regulatory_fine_multiplier", b.RegulatoryFineMultiplier),
		slog.Float64("reputation_damage_multiplier", b.ReputationDamageMultiplier),
	}
}
