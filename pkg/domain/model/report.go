package model

import (
	"time"

	"github.com/secmon-lab/wattguard/pkg/domain/types"
)

// ConfidenceInterval is the 10th/50th/90th percentile band over the Monte
// Carlo trials. It has no persisted identity and is computed fresh per call.
type ConfidenceInterval struct {
	Low    float64 `json:"low"`
	Median float64 `json:"median"`
	High   float64 `json:"high"`
}

// SavingsBreakdown maps each savings category to a dollar amount. Total is
// always the exact sum of the four categories, with no internal rounding.
type SavingsBreakdown struct {
	DirectBreachCosts    float64 `json:"direct_breach_costs"`
	OperationalDowntime  float64 `json:"operational_downtime"`
	RegulatoryCompliance float64 `json:"regulatory_compliance"`
	ReputationProtection float64 `json:"reputation_protection"`
	Total                float64 `json:"total_savings"`
}

// Amount returns the dollar amount for a single category
func (s *SavingsBreakdown) Amount(c types.SavingsCategory) float64 {
	switch c {
	case types.SavingsDirectBreachCosts:
		return s.DirectBreachCosts
	case types.SavingsOperationalDowntime:
		return s.OperationalDowntime
	case types.SavingsRegulatoryCompliance:
		return s.RegulatoryCompliance
	case types.SavingsReputationProtection:
		return s.ReputationProtection
	}
	return 0
}

// SavingsRange brackets the total savings by the confidence interval bounds
type SavingsRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// ROIMetrics holds the executive-level return on investment figures
type ROIMetrics struct {
	// EstimatedMonthlyInvestment assumes a fixed per-endpoint monthly cost
	EstimatedMonthlyInvestment float64 `json:"estimated_monthly_investment"`
	// ROIRatio is total savings divided by the estimated investment
	ROIRatio float64 `json:"roi_ratio"`
	// CostPerDollarSaved is investment per dollar of savings, with the
	// denominator floored at 1 to avoid division by zero
	CostPerDollarSaved float64 `json:"cost_per_dollar_saved"`
}

// Report is the structured monthly report bundle
type Report struct {
	ID                string             `json:"id"`
	GeneratedAt       time.Time          `json:"generated_at"`
	Input             ScenarioInput      `json:"input"`
	BreachesPrevented float64            `json:"breaches_prevented"`
	Confidence        ConfidenceInterval `json:"confidence_intervals"`
	Savings           SavingsBreakdown   `json:"savings_breakdown"`
	SavingsRange      SavingsRange       `json:"savings_confidence_range"`
	ROI               ROIMetrics         `json:"roi_metrics"`
}
