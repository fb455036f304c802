package usecase_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/usecase"
)

func almostEqual(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("expected %v, got %v (tolerance %v)", want, got, tolerance)
	}
}

func TestBaselineRisk(t *testing.T) {
	uc := usecase.New(model.DefaultBenchmarks())

	t.Run("reference scenario", func(t *testing.T) {
		// 0.023 * (2500/1000) * 2.0
		almostEqual(t, uc.BaselineRisk(2500, 2.0), 0.115, 1e-12)
	})

	t.Run("single endpoint scale", func(t *testing.T) {
		almostEqual(t, uc.BaselineRisk(1000, 1.0), 0.023, 1e-12)
	})

	t.Run("caps at 95 percent", func(t *testing.T) {
		gt.Value(t, uc.BaselineRisk(1_000_000, 3.0)).Equal(0.95)
	})

	t.Run("zero attack surface", func(t *testing.T) {
		gt.Value(t, uc.BaselineRisk(0, 2.0)).Equal(0.0)
	})

	t.Run("negative inputs clamp to zero", func(t *testing.T) {
		gt.Value(t, uc.BaselineRisk(-500, 1.0)).Equal(0.0)
		gt.Value(t, uc.BaselineRisk(500, -1.0)).Equal(0.0)
	})

	t.Run("custom benchmark probability", func(t *testing.T) {
		benchmarks := model.DefaultBenchmarks()
		benchmarks.BaselineBreachProbability = 0.05
		custom := usecase.New(benchmarks)
		almostEqual(t, custom.BaselineRisk(2000, 1.0), 0.1, 1e-12)
	})
}
