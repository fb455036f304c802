package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/usecase"
)

func TestGenerateMonthlyReport(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(model.DefaultBenchmarks())

	t.Run("reference scenario bundle", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 0.75)
		input.AssetCriticalityScore = 2.0
		input.CustomBreachCost = 8_000_000

		report := gt.R1(uc.GenerateMonthlyReport(ctx, input)).NoError(t)
		gt.Value(t, report.ID).NotEqual("")
		gt.Bool(t, report.GeneratedAt.IsZero()).False()

		almostEqual(t, report.BreachesPrevented, 0.08625, 1e-9)
		almostEqual(t, report.Savings.Total, 1_104_000, 1e-3)
		almostEqual(t, report.ROI.EstimatedMonthlyInvestment, 62_500, 1e-9)
		almostEqual(t, report.ROI.ROIRatio, 17.664, 1e-3)
	})

	t.Run("savings range brackets the estimate", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 0.75)
		input.AssetCriticalityScore = 2.0

		report := gt.R1(uc.GenerateMonthlyReport(ctx, input)).NoError(t)
		gt.Bool(t, report.SavingsRange.Low <= report.Savings.Total).True()
		gt.Bool(t, report.Savings.Total <= report.SavingsRange.High).True()
	})

	t.Run("identical inputs yield identical numbers", func(t *testing.T) {
		input := model.NewScenarioInput(1800, 0.6)

		first := gt.R1(uc.GenerateMonthlyReport(ctx, input)).NoError(t)
		second := gt.R1(uc.GenerateMonthlyReport(ctx, input)).NoError(t)

		gt.Value(t, second.BreachesPrevented).Equal(first.BreachesPrevented)
		gt.Value(t, second.Confidence).Equal(first.Confidence)
		gt.Value(t, second.Savings).Equal(first.Savings)
		gt.Value(t, second.SavingsRange).Equal(first.SavingsRange)
		gt.Value(t, second.ROI).Equal(first.ROI)
	})

	t.Run("degenerate zero attack surface", func(t *testing.T) {
		input := model.NewScenarioInput(0, 0.75)

		report := gt.R1(uc.GenerateMonthlyReport(ctx, input)).NoError(t)
		gt.Value(t, report.BreachesPrevented).Equal(0.0)
		gt.Value(t, report.Savings).Equal(model.SavingsBreakdown{})
		gt.Value(t, report.ROI.EstimatedMonthlyInvestment).Equal(0.0)
		gt.Value(t, report.ROI.ROIRatio).Equal(0.0)
	})

	t.Run("rejects out of domain effectiveness", func(t *testing.T) {
		input := model.NewScenarioInput(2500, 1.5)
		_, err := uc.GenerateMonthlyReport(ctx, input)
		gt.Error(t, err)
	})

	t.Run("rejects negative attack surface", func(t *testing.T) {
		input := model.NewScenarioInput(-100, 0.5)
		_, err := uc.GenerateMonthlyReport(ctx, input)
		gt.Error(t, err)
	})
}
