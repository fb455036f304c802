package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wattguard/pkg/domain/types"
)

// ScenarioInput describes one zero trust deployment scenario to evaluate
type ScenarioInput struct {
	// AttackSurfaceSize is the number of critical endpoints/assets exposed
	// to compromise. Zero is allowed and produces an all-zero report.
	AttackSurfaceSize int `json:"attack_surface_size"`
	// ZeroTrustEffectiveness is the fractional risk reduction in [0,1]
	ZeroTrustEffectiveness float64 `json:"zero_trust_effectiveness"`
	// AssetCriticalityScore weights the baseline risk for high-value
	// infrastructure. Domain convention is 1.0-3.0.
	AssetCriticalityScore float64 `json:"asset_criticality_score"`
	// TimePeriodMonths is the evaluation period
	TimePeriodMonths int `json:"time_period_months"`
	// CustomBreachCost overrides the benchmark breach cost when positive
	CustomBreachCost float64 `json:"custom_breach_cost,omitempty"`
	// IncludeDowntime controls whether downtime savings are modeled
	IncludeDowntime bool `json:"include_downtime"`
	// AvgDowntimeHours is the assumed downtime per breach
	AvgDowntimeHours float64 `json:"avg_downtime_hours"`
}

// NewScenarioInput returns a ScenarioInput with the model defaults applied
func NewScenarioInput(attackSurfaceSize int, effectiveness float64) ScenarioInput {
	return ScenarioInput{
		AttackSurfaceSize:      attackSurfaceSize,
		ZeroTrustEffectiveness: effectiveness,
		AssetCriticalityScore:  1.0,
		TimePeriodMonths:       1,
		IncludeDowntime:        true,
		AvgDowntimeHours:       24,
	}
}

// Validate checks if the ScenarioInput is within the model's domain.
// The numeric core clamps defensively on top of this, but out-of-domain
// inputs are rejected here rather than silently contained.
func (s *ScenarioInput) Validate() error {
	if s.AttackSurfaceSize < 0 {
		return goerr.New("attack surface size cannot be negative", goerr.V("attack_surface_size", s.AttackSurfaceSize))
	}
	if s.ZeroTrustEffectiveness < 0 || s.ZeroTrustEffectiveness > 1 {
		return goerr.New("zero trust effectiveness must be in [0,1]", goerr.V("effectiveness", s.ZeroTrustEffectiveness))
	}
	if s.AssetCriticalityScore < 0 {
		return goerr.New("asset criticality score cannot be negative", goerr.V("criticality", s.AssetCriticalityScore))
	}
	if s.TimePeriodMonths < 1 {
		return goerr.New("time period must be at least one month", goerr.V("months", s.TimePeriodMonths))
	}
	if s.CustomBreachCost < 0 {
		return goerr.New("custom breach cost must be positive when set", goerr.V("breach_cost", s.CustomBreachCost))
	}
	if s.IncludeDowntime && s.AvgDowntimeHours <= 0 {
		return goerr.New("average downtime hours must be positive", goerr.V("downtime_hours", s.AvgDowntimeHours))
	}
	return nil
}

// Preset pairs a named what-if scenario with its input
type Preset struct {
	ID    types.PresetID `json:"id"`
	Name  string         `json:"name"`
	Input ScenarioInput  `json:"input"`
}

// DefaultPresets returns the built-in sensitivity analysis scenarios
func DefaultPresets() []Preset {
	conservative := NewScenarioInput(1500, 0.60)

	baseline := NewScenarioInput(2500, 0.75)
	baseline.AssetCriticalityScore = 2.0

	optimistic := NewScenarioInput(3500, 0.85)
	optimistic.AssetCriticalityScore = 2.5

	return []Preset{
		{ID: types.PresetConservative, Name: "Conservative", Input: conservative},
		{ID: types.PresetCurrentBaseline, Name: "Current Baseline", Input: baseline},
		{ID: types.PresetOptimistic, Name: "Optimistic", Input: optimistic},
	}
}
