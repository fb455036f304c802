package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// PresetID represents a unique identifier for a built-in what-if scenario
type PresetID string

const (
	// PresetConservative models a smaller deployment with moderate effectiveness
	PresetConservative PresetID = "conservative"
	// PresetCurrentBaseline models the current utility deployment
	PresetCurrentBaseline PresetID = "current-baseline"
	// PresetOptimistic models an expanded deployment with high effectiveness
	PresetOptimistic PresetID = "optimistic"
)

// Validate checks if the PresetID is valid
func (p PresetID) Validate() error {
	if p == "" {
		return goerr.New("preset ID cannot be empty")
	}
	if !idPattern.MatchString(string(p)) {
		return goerr.New("preset ID must be lowercase alphanumeric with hyphens", goerr.V("id", p))
	}
	return nil
}

// String returns the string representation of PresetID
func (p PresetID) String() string {
	return string(p)
}
