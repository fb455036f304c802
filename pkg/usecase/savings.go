package usecase

import (
	"github.com/secmon-lab/wattguard/pkg/domain/model"
)

// regulatoryExposureRatio is the fraction of the fine multiplier that
// materializes as avoided compliance cost
const regulatoryExposureRatio = 0.1

// Savings converts a breaches-prevented figure into the multi-category
// dollar breakdown. Callers may pass the point estimate or either interval
// bound to bracket the savings. All categories are linear in
// breachesPrevented and the total is their exact sum; rounding happens only
// at presentation time.
func (uc *UseCases) Savings(breachesPrevented float64, input model.ScenarioInput) model.SavingsBreakdown {
	breachCost := uc.benchmarks.AvgBreachCostEnergy
	if input.CustomBreachCost > 0 {
		breachCost = input.CustomBreachCost
	}

	direct := breachesPrevented * breachCost

	var downtime float64
	if input.IncludeDowntime {
		downtime = breachesPrevented * uc.benchmarks.DowntimeCostPerHour * input.AvgDowntimeHours
	}

	regulatory := direct * uc.benchmarks.RegulatoryFineMultiplier * regulatoryExposureRatio
	reputation := direct * uc.benchmarks.ReputationDamageMultiplier

	return model.SavingsBreakdown{
		DirectBreachCosts:    direct,
		OperationalDowntime:  downtime,
		RegulatoryCompliance: regulatory,
		ReputationProtection: reputation,
		Total:                direct + downtime + regulatory + reputation,
	}
}
