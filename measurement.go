package qhyp

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/theapemachine/errnie"
)

// CollapseStrategy selects how a measurement resolves the superposition.
type CollapseStrategy int

const (
	// Greedy deterministically selects the hypothesis with maximal
	// probability, breaking ties by lowest insertion index.
	Greedy CollapseStrategy = iota

	// Probabilistic draws one hypothesis by weighted random choice over
	// the probability distribution.
	Probabilistic

	// Delayed collapses greedily only once the leading probability meets
	// the threshold; below it the set is left untouched.
	Delayed
)

func (cs CollapseStrategy) String() string {
	switch cs {
	case Greedy:
		return "greedy"
	case Probabilistic:
		return "probabilistic"
	case Delayed:
		return "delayed"
	}
	return "unknown"
}

/*
Measurement is the outcome of a measure call. A collapsed measurement
carries the winning content and its probability. A not-ready measurement
(Delayed strategy below threshold) carries only the leading probability so
the orchestrator can decide whether to gather more evidence.
*/
type Measurement struct {
	Content            string
	Probability        float64
	Collapsed          bool
	LeadingProbability float64
}

/*
MeasurementOperator resolves, or declines to resolve, a superposition into
a single answer. All randomness flows through the injected source, so a
fixed seed reproduces the same collapse on every run.
*/
type MeasurementOperator struct {
	rng *rand.Rand
}

/*
NewMeasurementOperator creates an operator around the supplied random
source. A nil source falls back to a time-seeded one, which is fine for
production and useless for reproducing a collapse in a test.
*/
func NewMeasurementOperator(rng *rand.Rand) *MeasurementOperator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MeasurementOperator{rng: rng}
}

/*
Measure resolves the set with the given strategy. The threshold only
matters to the Delayed strategy; Greedy and Probabilistic ignore it and
always collapse. A successful collapse marks the set terminal, after which
every further mutation fails with ErrAlreadyCollapsed.
*/
func (mo *MeasurementOperator) Measure(set *HypothesisSet, strategy CollapseStrategy, threshold float64) (Measurement, error) {
	if set.collapsed {
		return Measurement{}, ErrAlreadyCollapsed
	}
	if len(set.hypotheses) == 0 {
		return Measurement{}, ErrEmptySet
	}

	switch strategy {
	case Greedy:
		return mo.collapse(set, set.LeadingIndex(), strategy), nil
	case Probabilistic:
		return mo.collapse(set, mo.draw(set), strategy), nil
	case Delayed:
		leading := set.LeadingIndex()
		probability := set.Distribution()[leading]
		if probability >= threshold {
			return mo.collapse(set, leading, strategy), nil
		}
		return Measurement{LeadingProbability: probability}, nil
	}

	return Measurement{}, fmt.Errorf("unknown collapse strategy %d", strategy)
}

func (mo *MeasurementOperator) collapse(set *HypothesisSet, index int, strategy CollapseStrategy) Measurement {
	probability := set.Distribution()[index]
	set.collapsed = true

	errnie.Info(
		"Measure - %v collapse to index %v (p=%.3f)",
		strategy,
		index,
		probability,
	)

	return Measurement{
		Content:     set.hypotheses[index].Content,
		Probability: probability,
		Collapsed:   true,
	}
}

// draw walks the cumulative distribution and picks the first hypothesis
// whose bucket contains the random draw, falling back to the last one.
func (mo *MeasurementOperator) draw(set *HypothesisSet) int {
	r := mo.rng.Float64()

	cumulative := 0.0
	for i, probability := range set.Distribution() {
		cumulative += probability
		if r <= cumulative {
			return i
		}
	}

	return len(set.hypotheses) - 1
}
