package qhyp

import "math/cmplx"

/*
Hypothesis represents a single candidate explanation held in superposition.
The complex amplitude carries two pieces of information at once: its squared
magnitude is the hypothesis's unnormalized probability weight, and its phase
encodes the direction evidence has pushed it during interference rounds.

The content is opaque to the engine; it is whatever text the upstream
hypothesis source produced. EvidenceCount tracks how many interference
rounds have touched this hypothesis and exists for diagnostics only.
*/
type Hypothesis struct {
	Content       string
	Amplitude     complex128
	EvidenceCount int
}

func newHypothesis(content string, confidence float64, config *Config) Hypothesis {
	confidence = clamp(confidence, config.ConfidenceFloor, 1.0)
	return Hypothesis{
		Content:   content,
		Amplitude: complex(confidence, config.BaselineImag),
	}
}

/*
Weight returns the squared magnitude of the amplitude. This is the
hypothesis's unnormalized probability weight; it only becomes a probability
relative to the total weight of the owning set.
*/
func (h Hypothesis) Weight() float64 {
	re := real(h.Amplitude)
	im := imag(h.Amplitude)
	return re*re + im*im
}

// Phase returns the amplitude's phase angle in (-π, π].
func (h Hypothesis) Phase() float64 {
	return cmplx.Phase(h.Amplitude)
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
