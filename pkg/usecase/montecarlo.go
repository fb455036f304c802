package usecase

import (
	"math"
	"math/rand"
	"sort"

	"github.com/secmon-lab/wattguard/pkg/domain/model"
)

const (
	riskStdDevRatio          = 0.2
	effectivenessStdDevRatio = 0.1
)

// BreachesPrevented returns the expected number of breaches prevented over
// the scenario period, plus a 10th/50th/90th percentile band from seeded
// Monte Carlo sampling. Each call builds its own random source from the
// configured seed, so identical inputs always yield identical intervals and
// concurrent evaluations do not interfere.
func (uc *UseCases) BreachesPrevented(input model.ScenarioInput) (float64, model.ConfidenceInterval) {
	baseline := uc.BaselineRisk(input.AttackSurfaceSize, input.AssetCriticalityScore)
	months := float64(input.TimePeriodMonths)

	point := baseline * input.ZeroTrustEffectiveness * months

	rng := rand.New(rand.NewSource(uc.seed))
	results := make([]float64, uc.trials)
	for i := range results {
		risk := clamp(sampleNormal(rng, baseline, baseline*riskStdDevRatio), 0, 1)
		eff := clamp(sampleNormal(rng, input.ZeroTrustEffectiveness, input.ZeroTrustEffectiveness*effectivenessStdDevRatio), 0, 1)
		results[i] = risk * eff * months
	}
	sort.Float64s(results)

	return point, model.ConfidenceInterval{
		Low:    percentile(results, 10),
		Median: percentile(results, 50),
		High:   percentile(results, 90),
	}
}

// sampleNormal draws from a normal distribution with the given mean and
// standard deviation. A zero stddev degenerates to the mean, which makes
// zero-effectiveness scenarios collapse exactly.
func sampleNormal(rng *rand.Rand, mean, stddev float64) float64 {
	return mean + stddev*rng.NormFloat64()
}

// percentile computes the p-th percentile of a sorted sample using linear
// interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
