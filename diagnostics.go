package qhyp

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// The diagnostics surface is read-only. An orchestrator inspects entropy
// and the leading probability to decide how many more interference rounds
// to run before attempting a collapse; nothing here mutates the set.

// Distribution returns the normalized probability of every hypothesis in
// insertion order. A degenerate set (all weights near zero) reports a
// uniform distribution, matching the Normalize recovery policy.
func (hs *HypothesisSet) Distribution() []float64 {
	weights := hs.weights()
	if len(weights) == 0 {
		return weights
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= hs.config.NormTolerance {
		uniform := 1 / float64(len(weights))
		for i := range weights {
			weights[i] = uniform
		}
		return weights
	}

	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// Entropy returns the Shannon entropy -Σ p·ln(p) of the distribution.
// An empty set and a set with a single certain hypothesis both report 0;
// N equally weighted hypotheses report the maximum, ln(N).
func (hs *HypothesisSet) Entropy() float64 {
	if len(hs.hypotheses) <= 1 {
		return 0
	}
	return stat.Entropy(hs.Distribution())
}

// MaxEntropy returns ln(N), the entropy of a uniform distribution over
// the current set size.
func (hs *HypothesisSet) MaxEntropy() float64 {
	if len(hs.hypotheses) == 0 {
		return 0
	}
	return math.Log(float64(len(hs.hypotheses)))
}

// LeadingIndex returns the index of the most probable hypothesis, ties
// broken by lowest insertion index. Returns -1 for an empty set.
func (hs *HypothesisSet) LeadingIndex() int {
	leading := -1
	best := 0.0
	for i, probability := range hs.Distribution() {
		if leading < 0 || probability > best {
			leading = i
			best = probability
		}
	}
	return leading
}

// Coherent reports whether the leading hypothesis has pulled far enough
// ahead of the pack to clear the given probability threshold.
func (hs *HypothesisSet) Coherent(threshold float64) bool {
	leading := hs.LeadingIndex()
	if leading < 0 {
		return false
	}
	return hs.Distribution()[leading] > threshold
}

// TotalEvidence returns the number of interference touches across all
// hypotheses.
func (hs *HypothesisSet) TotalEvidence() int {
	total := 0
	for i := range hs.hypotheses {
		total += hs.hypotheses[i].EvidenceCount
	}
	return total
}

// ExportDiagnostics returns a flat snapshot of the inspection surface,
// convenient for logging or feeding a host's own metrics pipeline.
func (hs *HypothesisSet) ExportDiagnostics() map[string]interface{} {
	leadingProbability := 0.0
	leading := hs.LeadingIndex()
	if leading >= 0 {
		leadingProbability = hs.Distribution()[leading]
	}

	return map[string]interface{}{
		"id":                  hs.ID,
		"size":                hs.Size(),
		"collapsed":           hs.IsCollapsed(),
		"entropy":             hs.Entropy(),
		"max_entropy":         hs.MaxEntropy(),
		"leading_index":       leading,
		"leading_probability": leadingProbability,
		"total_evidence":      hs.TotalEvidence(),
	}
}
