package usecase

// BaselineRisk estimates the monthly breach probability without zero trust.
// The attack surface is normalized by a typical 1000-endpoint organization
// and weighted by asset criticality. The result is clamped to [0, 0.95].
func (uc *UseCases) BaselineRisk(attackSurfaceSize int, assetCriticalityScore float64) float64 {
	risk := uc.benchmarks.BaselineBreachProbability *
		(float64(attackSurfaceSize) / 1000) *
		assetCriticalityScore

	return clamp(risk, 0, maxBaselineRisk)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
