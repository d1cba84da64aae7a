package qhyp

import "context"

/*
HypothesisSource produces candidate hypothesis texts for a research
prompt. In the reference system this is an LLM completion call; the engine
only ever sees the resulting strings.
*/
type HypothesisSource interface {
	GenerateHypotheses(ctx context.Context, prompt string, n int) ([]string, error)
}

/*
AlignmentScorer judges how strongly one piece of evidence supports or
contradicts one hypothesis, on a [-1, 1] scale. In the reference system
this is an embedding-similarity or lexical-overlap service. The engine
never computes alignment itself; it only consumes the scores.
*/
type AlignmentScorer interface {
	Score(ctx context.Context, evidence, hypothesis string) (float64, error)
}

/*
Populate fills a set with hypotheses drawn from the source and normalizes
the result. Every hypothesis starts with the same confidence; the
superposition only differentiates once interference rounds fold in
evidence.
*/
func Populate(ctx context.Context, source HypothesisSource, set *HypothesisSet, prompt string, n int, confidence float64) error {
	contents, err := source.GenerateHypotheses(ctx, prompt, n)
	if err != nil {
		return err
	}

	for _, content := range contents {
		if _, err := set.Add(content, confidence); err != nil {
			return err
		}
	}

	return set.Normalize()
}

/*
ScoreAlignments turns one evidence string into the per-index alignment map
Interfere consumes, by asking the scorer about every hypothesis in the
set. Scores come back clamped to [-1, 1].
*/
func ScoreAlignments(ctx context.Context, scorer AlignmentScorer, set *HypothesisSet, evidence string) (map[int]float64, error) {
	alignment := make(map[int]float64, set.Size())

	for i := range set.hypotheses {
		score, err := scorer.Score(ctx, evidence, set.hypotheses[i].Content)
		if err != nil {
			return nil, err
		}
		alignment[i] = clamp(score, -1, 1)
	}

	return alignment, nil
}
