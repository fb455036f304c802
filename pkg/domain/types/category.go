package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// SavingsCategory identifies one of the modeled savings categories
type SavingsCategory string

const (
	// SavingsDirectBreachCosts is the direct cost of breaches avoided
	SavingsDirectBreachCosts SavingsCategory = "direct_breach_costs"
	// SavingsOperationalDowntime is the avoided downtime cost for utility operations
	SavingsOperationalDowntime SavingsCategory = "operational_downtime"
	// SavingsRegulatoryCompliance is the avoided regulatory fine exposure
	SavingsRegulatoryCompliance SavingsCategory = "regulatory_compliance"
	// SavingsReputationProtection is the avoided reputation and customer-trust damage
	SavingsReputationProtection SavingsCategory = "reputation_protection"
)

// AllSavingsCategories returns the savings categories in report order
func AllSavingsCategories() []SavingsCategory {
	return []SavingsCategory{
		SavingsDirectBreachCosts,
		SavingsOperationalDowntime,
		SavingsRegulatoryCompliance,
		SavingsReputationProtection,
	}
}

// Validate checks if the SavingsCategory is one of the known categories
func (c SavingsCategory) Validate() error {
	switch c {
	case SavingsDirectBreachCosts, SavingsOperationalDowntime,
		SavingsRegulatoryCompliance, SavingsReputationProtection:
		return nil
	}
	return goerr.New("unknown savings category", goerr.V("category", c))
}

// String returns the string representation of SavingsCategory
func (c SavingsCategory) String() string {
	return string(c)
}

// Label returns the human-readable label used in reports
func (c SavingsCategory) Label() string {
	switch c {
	case SavingsDirectBreachCosts:
		return "Direct Breach Costs"
	case SavingsOperationalDowntime:
		return "Operational Downtime"
	case SavingsRegulatoryCompliance:
		return "Regulatory Compliance"
	case SavingsReputationProtection:
		return "Reputation Protection"
	}
	return string(c)
}
