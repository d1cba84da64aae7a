package qhyp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
HypothesisSet holds competing hypotheses as a weighted superposition.
Hypotheses are kept in insertion order; the order carries no probabilistic
meaning but makes tie-breaking and diagnostics deterministic.

A set moves through a simple lifecycle: created empty, populated through
Add, normalized, reshaped by zero or more interference rounds, and finally
resolved by a single successful measurement. Once collapsed the set is
terminal: every mutating operation fails with ErrAlreadyCollapsed and the
set remains readable as history.

A set is owned by exactly one logical task at a time. The engine performs
no locking of its own; hosts that must share a set across goroutines have
to serialize calls behind their own single-writer boundary.
*/
type HypothesisSet struct {
	ID string

	config     *Config
	hypotheses []Hypothesis
	collapsed  bool
}

/*
NewHypothesisSet creates an empty, open hypothesis set. Passing a nil
config selects the package defaults.
*/
func NewHypothesisSet(config *Config) *HypothesisSet {
	if config == nil {
		config = NewConfig()
	}
	return &HypothesisSet{
		ID:         config.NewID(),
		config:     config,
		hypotheses: make([]Hypothesis, 0),
	}
}

/*
Add appends a new hypothesis and returns its index. The confidence scalar
seeds the real part of the amplitude and is clamped into (0, 1] rather
than rejected, so noisy upstream generation cannot poison the set. The
imaginary part is the configured baseline, representing the evidentiary
uncertainty present even in a freshly proposed idea.
*/
func (hs *HypothesisSet) Add(content string, confidence float64) (int, error) {
	if hs.collapsed {
		return 0, ErrAlreadyCollapsed
	}

	hs.hypotheses = append(hs.hypotheses, newHypothesis(content, confidence, hs.config))
	return len(hs.hypotheses) - 1, nil
}

/*
Normalize rescales every amplitude so the squared magnitudes sum to one.
When the total weight is degenerate (all amplitudes near zero, which can
happen after aggressive destructive interference) the set is reset to a
uniform real distribution instead of being left in an undefined state.
*/
func (hs *HypothesisSet) Normalize() error {
	if hs.collapsed {
		return ErrAlreadyCollapsed
	}
	if len(hs.hypotheses) == 0 {
		return nil
	}

	total := hs.totalWeight()
	if total <= hs.config.NormTolerance {
		// Degenerate recovery: fall back to equal real amplitudes.
		uniform := complex(1/math.Sqrt(float64(len(hs.hypotheses))), 0)
		for i := range hs.hypotheses {
			hs.hypotheses[i].Amplitude = uniform
		}
		return nil
	}

	scale := complex(1/math.Sqrt(total), 0)
	for i := range hs.hypotheses {
		hs.hypotheses[i].Amplitude *= scale
	}
	return nil
}

/*
Probability returns the squared magnitude of the amplitude at index i.
The set is assumed to be normalized; this accessor does not normalize.
It panics on a bad index, which is a caller defect rather than a runtime
condition.
*/
func (hs *HypothesisSet) Probability(i int) float64 {
	return hs.hypotheses[i].Weight()
}

// Hypothesis returns a copy of the hypothesis at index i.
func (hs *HypothesisSet) Hypothesis(i int) Hypothesis {
	return hs.hypotheses[i]
}

// Size returns the number of hypotheses in the set.
func (hs *HypothesisSet) Size() int {
	return len(hs.hypotheses)
}

// IsCollapsed reports whether the set has reached its terminal state.
func (hs *HypothesisSet) IsCollapsed() bool {
	return hs.collapsed
}

func (hs *HypothesisSet) weights() []float64 {
	weights := make([]float64, len(hs.hypotheses))
	for i := range hs.hypotheses {
		weights[i] = hs.hypotheses[i].Weight()
	}
	return weights
}

func (hs *HypothesisSet) totalWeight() float64 {
	return floats.Sum(hs.weights())
}

func (hs *HypothesisSet) validateIndices(indices []int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= len(hs.hypotheses) {
			return indexError(idx)
		}
	}
	return nil
}
