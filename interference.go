package qhyp

import (
	"math"
	"math/cmplx"

	"github.com/theapemachine/errnie"
)

/*
InterferenceEngine reshapes a hypothesis set in response to external
evidence, reinforcing supported hypotheses and suppressing contradicted
ones, then restoring the normalization invariant.

The engine performs no text analysis itself. Alignment scores arrive
precomputed from whatever semantic scorer the host wires in, which keeps
interference pure, synchronous, and free of model or network dependencies.
*/
type InterferenceEngine struct {
	config *Config
}

/*
NewInterferenceEngine creates an engine with the given tunables. Passing a
nil config selects the package defaults.
*/
func NewInterferenceEngine(config *Config) *InterferenceEngine {
	if config == nil {
		config = NewConfig()
	}
	return &InterferenceEngine{config: config}
}

/*
Interfere folds one evidence event into the set. The alignment map carries
a score in [-1, 1] per hypothesis index: positive scores mean the evidence
supports that hypothesis, negative scores mean it contradicts it, and
indices absent from the map are neutral. Strength is the coupling scalar
bounding how far this single event may move the distribution.

Every update is computed from the amplitude as it stood before the round:

	multiplier = max(EpsilonFloor, 1 + strength*score)
	shift      = strength * score * PhaseGain
	amplitude' = amplitude * multiplier * e^(i*shift)

The multiplier floor keeps contradicting evidence from annihilating a
hypothesis outright, and the whole set is renormalized before returning.
EvidenceCount is incremented for every hypothesis with a nonzero score.
*/
func (ie *InterferenceEngine) Interfere(set *HypothesisSet, alignment map[int]float64, strength float64) error {
	if set.collapsed {
		return ErrAlreadyCollapsed
	}
	for idx := range alignment {
		if idx < 0 || idx >= len(set.hypotheses) {
			return indexError(idx)
		}
	}
	if strength < 0 {
		strength = 0
	}

	touched := 0
	for idx, score := range alignment {
		score = clamp(score, -1, 1)
		if score == 0 {
			continue
		}

		multiplier := math.Max(ie.config.EpsilonFloor, 1+strength*score)
		shift := strength * score * ie.config.PhaseGain

		set.hypotheses[idx].Amplitude *= cmplx.Rect(multiplier, shift)
		set.hypotheses[idx].EvidenceCount++
		touched++
	}

	errnie.Info(
		"Interfere - strength %v, touched %v of %v hypotheses",
		strength,
		touched,
		len(set.hypotheses),
	)

	return set.Normalize()
}

/*
ApplyConstructive treats the listed hypotheses as phase-aligned. Their
amplitudes are summed as complex vectors and the coherent sum's weight is
redistributed proportionally across the group, phases preserved. When the
phases genuinely agree the group gains combined weight at the expense of
the rest of the set; when they disagree the coherent sum is smaller than
the incoherent one and the group loses instead.

Fewer than two indices is a no-op. Unknown indices fail with
ErrIndexOutOfRange before anything is touched.
*/
func (ie *InterferenceEngine) ApplyConstructive(set *HypothesisSet, indices []int) error {
	if set.collapsed {
		return ErrAlreadyCollapsed
	}
	if err := set.validateIndices(indices); err != nil {
		return err
	}
	if len(indices) < 2 {
		return nil
	}

	var sum complex128
	var weight float64
	for _, idx := range indices {
		amp := set.hypotheses[idx].Amplitude
		sum += amp
		weight += real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	if weight > ie.config.NormTolerance {
		gain := complex(cmplx.Abs(sum)/math.Sqrt(weight), 0)
		for _, idx := range indices {
			set.hypotheses[idx].Amplitude *= gain
		}
	}

	return set.Normalize()
}

/*
ApplyDestructive treats the listed hypotheses as phase-opposed: the first
listed amplitude has the complex mean of the remaining listed amplitudes
subtracted from it, shrinking the group's collective share once the set is
renormalized. If the subtraction leaves the whole set degenerate,
normalization falls back to the uniform recovery policy.

Fewer than two indices is a no-op. Unknown indices fail with
ErrIndexOutOfRange before anything is touched.
*/
func (ie *InterferenceEngine) ApplyDestructive(set *HypothesisSet, indices []int) error {
	if set.collapsed {
		return ErrAlreadyCollapsed
	}
	if err := set.validateIndices(indices); err != nil {
		return err
	}
	if len(indices) < 2 {
		return nil
	}

	var mean complex128
	for _, idx := range indices[1:] {
		mean += set.hypotheses[idx].Amplitude
	}
	mean /= complex(float64(len(indices)-1), 0)

	set.hypotheses[indices[0]].Amplitude -= mean

	return set.Normalize()
}
