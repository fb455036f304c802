package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// ScenarioResult pairs a preset with its computed report
type ScenarioResult struct {
	Preset model.Preset
	Report *model.Report
}

// SelectPresets resolves preset IDs against the built-in scenarios. An
// empty ID list selects all presets in their defined order.
func SelectPresets(ids []string) ([]model.Preset, error) {
	presets := model.DefaultPresets()
	if len(ids) == 0 {
		return presets, nil
	}

	byID := make(map[types.PresetID]model.Preset, len(presets))
	for _, p := range presets {
		byID[p.ID] = p
	}

	selected := make([]model.Preset, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[types.PresetID(id)]
		if !ok {
			return nil, goerr.New("unknown scenario preset", goerr.V("preset", id))
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// RunScenarios evaluates the presets concurrently. Each report computation
// is independent and seeds its own random source, so the fan-out does not
// affect reproducibility. Results keep the preset order.
func (uc *UseCases) RunScenarios(ctx context.Context, presets []model.Preset) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, len(presets))

	eg, ctx := errgroup.WithContext(ctx)
	for i, preset := range presets {
		eg.Go(func() error {
			report, err := uc.GenerateMonthlyReport(ctx, preset.Input)
			if err != nil {
				return goerr.Wrap(err, "failed to evaluate scenario", goerr.V("preset", preset.ID))
			}
			results[i] = ScenarioResult{Preset: preset, Report: report}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
