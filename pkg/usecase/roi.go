package usecase

import (
	"math"

	"github.com/secmon-lab/wattguard/pkg/domain/model"
)

// ROI derives the executive metrics from total savings and deployment size.
// The cost-per-dollar-saved denominator is floored at 1 so a zero-savings
// scenario reports the full investment instead of failing.
func (uc *UseCases) ROI(totalSavings float64, attackSurfaceSize int) model.ROIMetrics {
	investment := float64(attackSurfaceSize) * monthlyCostPerEndpoint

	var ratio float64
	if investment > 0 {
		ratio = totalSavings / investment
	}

	return model.ROIMetrics{
		EstimatedMonthlyInvestment: investment,
		ROIRatio:                   ratio,
		CostPerDollarSaved:         investment / math.Max(totalSavings, 1),
	}
}
