package qhyp

import (
	"math"

	"github.com/google/uuid"
)

type Config struct {
	// NormTolerance is the threshold below which a total weight is
	// considered degenerate and the uniform recovery policy kicks in.
	NormTolerance float64

	// EpsilonFloor is the minimum interference multiplier, preventing a
	// single evidence round from annihilating a hypothesis outright.
	EpsilonFloor float64

	// PhaseGain is the phase rotation applied per unit of
	// strength * alignment during interference.
	PhaseGain float64

	// BaselineImag is the imaginary component given to every freshly
	// added hypothesis, modelling baseline evidentiary uncertainty.
	BaselineImag float64

	// ConfidenceFloor is the lower clamp for caller-supplied confidence
	// values, keeping them inside (0, 1].
	ConfidenceFloor float64

	// NewID generates set identifiers. Hosts that need monotonic or
	// otherwise controlled identifiers can inject their own generator.
	NewID func() string
}

func NewConfig() *Config {
	return &Config{
		NormTolerance:   1e-12,
		EpsilonFloor:    0.01,
		PhaseGain:       math.Pi / 4,
		BaselineImag:    0.1,
		ConfidenceFloor: 1e-6,
		NewID:           uuid.NewString,
	}
}
