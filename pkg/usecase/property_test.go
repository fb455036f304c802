package usecase_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/usecase"
)

// TestModelInvariants verifies the numeric invariants that must hold for
// any input, not just the reference scenarios.
func TestModelInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	uc := usecase.New(model.DefaultBenchmarks(), usecase.WithTrials(200))

	properties.Property("baseline risk stays in [0, 0.95]", prop.ForAll(
		func(surface int, criticality float64) bool {
			risk := uc.BaselineRisk(surface, criticality)
			return risk >= 0 && risk <= 0.95
		},
		gen.IntRange(0, 10_000_000),
		gen.Float64Range(0, 10),
	))

	properties.Property("baseline risk is monotone in attack surface", prop.ForAll(
		func(surface int, delta int, criticality float64) bool {
			return uc.BaselineRisk(surface, criticality) <= uc.BaselineRisk(surface+delta, criticality)
		},
		gen.IntRange(0, 1_000_000),
		gen.IntRange(0, 1_000_000),
		gen.Float64Range(0, 5),
	))

	properties.Property("total savings equals the exact category sum", prop.ForAll(
		func(breaches float64, hours float64, includeDowntime bool) bool {
			input := model.NewScenarioInput(2500, 0.75)
			input.IncludeDowntime = includeDowntime
			input.AvgDowntimeHours = hours

			s := uc.Savings(breaches, input)
			return s.Total == s.DirectBreachCosts+s.OperationalDowntime+
				s.RegulatoryCompliance+s.ReputationProtection
		},
		gen.Float64Range(0, 50),
		gen.Float64Range(1, 168),
		gen.Bool(),
	))

	properties.Property("confidence interval is ordered", prop.ForAll(
		func(surface int, effectiveness float64) bool {
			input := model.NewScenarioInput(surface, effectiveness)
			point, ci := uc.BreachesPrevented(input)
			return ci.Low <= ci.Median && ci.Median <= ci.High && point >= 0
		},
		gen.IntRange(0, 100_000),
		gen.Float64Range(0, 1),
	))

	properties.Property("breaches prevented is monotone until the risk cap", prop.ForAll(
		func(surface int, delta int) bool {
			smaller := model.NewScenarioInput(surface, 0.75)
			larger := model.NewScenarioInput(surface+delta, 0.75)

			smallPoint, _ := uc.BreachesPrevented(smaller)
			largePoint, _ := uc.BreachesPrevented(larger)
			return smallPoint <= largePoint
		},
		gen.IntRange(0, 100_000),
		gen.IntRange(0, 100_000),
	))

	properties.TestingRun(t)
}
