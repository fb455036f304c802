package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wattguard/pkg/domain/model"
	"github.com/secmon-lab/wattguard/pkg/utils/logging"
)

// GenerateMonthlyReport composes the full model in one pass: breach
// prevention with its confidence interval, the savings breakdown on the
// point estimate, a savings range from the interval bounds, and the ROI
// metrics. There are no retries and no partial results.
func (uc *UseCases) GenerateMonthlyReport(ctx context.Context, input model.ScenarioInput) (*model.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid scenario input")
	}

	prevented, interval := uc.BreachesPrevented(input)

	savings := uc.Savings(prevented, input)
	savingsLow := uc.Savings(interval.Low, input)
	savingsHigh := uc.Savings(interval.High, input)

	report := &model.Report{
		ID:                uuid.NewString(),
		GeneratedAt:       time.Now().UTC(),
		Input:             input,
		BreachesPrevented: prevented,
		Confidence:        interval,
		Savings:           savings,
		SavingsRange: model.SavingsRange{
			Low:  savingsLow.Total,
			High: savingsHigh.Total,
		},
		ROI: uc.ROI(savings.Total, input.AttackSurfaceSize),
	}

	logging.From(ctx).Debug("generated monthly report",
		"report_id", report.ID,
		"attack_surface_size", input.AttackSurfaceSize,
		"breaches_prevented", prevented,
		"total_savings", savings.Total,
	)

	return report, nil
}
