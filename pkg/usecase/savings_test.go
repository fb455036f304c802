package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/usecase"
)

func TestSavings(t *testing.T) {
	uc := usecase.New(model.DefaultBenchmarks())

	t.Run("reference scenario breakdown", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 0.75)
		input.AssetCriticalityScore = 2.0
		input.CustomBreachCost = 8_000_000

		savings := uc.Savings(0.08625, input)
		almostEqual(t, savings.DirectBreachCosts, 690_000, 1e-6)
		almostEqual(t, savings.OperationalDowntime, 103_500, 1e-6)
		almostEqual(t, savings.RegulatoryCompliance, 103_500, 1e-6)
		almostEqual(t, savings.ReputationProtection, 207_000, 1e-6)
		almostEqual(t, savings.Total, 1_104_000, 1e-6)
	})

	t.Run("total is the exact sum of categories", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 0.75)
		savings := uc.Savings(0.0734, input)

		sum := savings.DirectBreachCosts + savings.OperationalDowntime +
			savings.RegulatoryCompliance + savings.ReputationProtection
		gt.Value(t, savings.Total).Equal(sum)
	})

	t.Run("benchmark cost applies when no override", func(t *testing.T) {
		input := model.NewScenarioInput(1000, 0.5)
		savings := uc.Savings(1.0, input)
		almostEqual(t, savings.DirectBreachCosts, 6_450_000, 1e-6)
	})

	t.Run("downtime excluded when disabled", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 0.75)
		input.IncludeDowntime = false

		savings := uc.Savings(0.08625, input)
		gt.Value(t, savings.OperationalDowntime).Equal(0.0)
		gt.Value(t, savings.Total).Equal(
			savings.DirectBreachCosts + savings.RegulatoryCompliance + savings.ReputationProtection)
	})

	t.Run("custom downtime hours scale linearly", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 0.75)
		input.AvgDowntimeHours = 48

		savings := uc.Savings(0.1, input)
		almostEqual(t, savings.OperationalDowntime, 0.1*50_000*48, 1e-6)
	})

	t.Run("zero breaches means zero savings", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 0.75)
		savings := uc.Savings(0, input)
		gt.Value(t, savings).Equal(model.SavingsBreakdown{})
	})
}
