package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wattguard/pkg/domain/types"
)

func TestSavingsCategory(t *testing.T) {
	t.Run("all categories validate", func(t *testing.T) {
		categories := types.AllSavingsCategories()
		gt.Array(t, categories).Length(4)
		for _, c := range categories {
			gt.NoError(t, c.Validate())
			gt.Value(t, c.Label()).NotEqual("")
		}
	})

	t.Run("unknown category fails", func(t *testing.T) {
		gt.Error(t, types.SavingsCategory("insurance_premiums").Validate())
	})

	t.Run("labels are human readable", func(t *testing.T) {
		gt.Value(t, types.SavingsDirectBreachCosts.Label()).Equal("Direct Breach Costs")
		gt.Value(t, types.SavingsOperationalDowntime.Label()).Equal("Operational Downtime")
	})
}

func TestPresetID(t *testing.T) {
	t.Run("built-in presets validate", func(t *testing.T) {
		gt.NoError(t, types.PresetConservative.Validate())
		gt.NoError(t, types.PresetCurrentBaseline.Validate())
		gt.NoError(t, types.PresetOptimistic.Validate())
	})

	t.Run("empty ID fails", func(t *testing.T) {
		gt.Error(t, types.PresetID("").Validate())
	})

	t.Run("uppercase ID fails", func(t *testing.T) {
		gt.Error(t, types.PresetID("Conservative").Validate())
	})
}
