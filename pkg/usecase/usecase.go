package usecase

import (
	"github.com/secmon-lab/wattguard/pkg/domain/model"
)

const (
	// DefaultTrials is the number of Monte Carlo trials per confidence interval
	DefaultTrials = 1000
	// DefaultSeed is the fixed random seed for reproducible sampling
	DefaultSeed = 42
	// monthlyCostPerEndpoint is the assumed zero trust operating cost per
	// endpoint per month
	monthlyCostPerEndpoint = 25
	// maxBaselineRisk caps the monthly breach probability
	maxBaselineRisk = 0.95
)

// UseCases provides the zero trust ROI model. All methods are pure with
// respect to the receiver; the benchmark constants are read-only, so one
// instance may evaluate scenarios concurrently.
type UseCases struct {
	benchmarks model.Benchmarks
	trials     int
	seed       int64
}

// Option customizes the model
type Option func(*UseCases)

// WithTrials sets the Monte Carlo trial count
func WithTrials(trials int) Option {
	return func(uc *UseCases) {
		if trials > 0 {
			uc.trials = trials
		}
	}
}

// WithSeed sets the random seed used for each confidence interval
// computation. Callers needing independent randomness can override per model.
func WithSeed(seed int64) Option {
	return func(uc *UseCases) {
		uc.seed = seed
	}
}

// New creates the model with the given benchmark constants
func New(benchmarks model.Benchmarks, opts ...Option) *UseCases {
	uc := &UseCases{
		benchmarks: benchmarks,
		trials:     DefaultTrials,
		seed:       DefaultSeed,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Benchmarks returns the benchmark constants the model was built with
func (uc *UseCases) Benchmarks() model.Benchmarks {
	return uc.benchmarks
}
