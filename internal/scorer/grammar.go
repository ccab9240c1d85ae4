package scorer

import (
	"context"
	"fmt"
	"strings"

	"interview-insights-go/internal/types"
	"interview-insights-go/internal/vectormath"
)

// Grammar compares the transcript against its model-corrected version.
// The whole-text embedding similarity drives the error rate; per-sentence
// Jaccard matching produces the flagged examples.
func Grammar(ctx context.Context, corrector Corrector, embedder Embedder, text string) (*types.GrammarResult, error) {
	corrected, err := corrector.Correct(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("correct text: %w", err)
	}

	origVec, err := embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed original: %w", err)
	}
	corrVec, err := embedder.Embed(ctx, corrected)
	if err != nil {
		return nil, fmt.Errorf("embed corrected: %w", err)
	}

	similarity, err := vectormath.Cosine(origVec, corrVec)
	if err != nil {
		// degenerate embedding reads as fully dissimilar
		similarity = 0
	}
	errorRate := (1 - similarity) * 100

	rating := "Needs Improvement"
	switch {
	case errorRate <= 2:
		rating = "Excellent"
	case errorRate <= 5:
		rating = "Good"
	}

	origSentences := SplitSentences(text)
	corrSentences := SplitSentences(corrected)
	diagnostics := []types.GrammarError{}
	for _, orig := range origSentences {
		best, score := bestJaccardMatch(orig, corrSentences)
		if score < 0.8 && orig != best {
			diagnostics = append(diagnostics, types.GrammarError{
				Type:       "grammar",
				Original:   orig,
				Suggestion: best,
				Context:    fmt.Sprintf("Jaccard similarity: %.2f", score),
			})
		}
	}

	return &types.GrammarResult{
		ErrorRate:   errorRate,
		TotalErrors: len(diagnostics),
		Errors:      diagnostics,
		Rating:      rating,
	}, nil
}

// bestJaccardMatch returns the candidate maximizing word-set Jaccard
// similarity with orig. Ties keep the earliest candidate (strict >), matching
// the documented tie-break. No candidates means ("", 0).
func bestJaccardMatch(orig string, candidates []string) (string, float64) {
	if len(candidates) == 0 {
		return "", 0
	}
	origSet := wordSet(orig)
	best := candidates[0]
	bestScore := jaccard(origSet, wordSet(candidates[0]))
	for _, c := range candidates[1:] {
		if s := jaccard(origSet, wordSet(c)); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, bestScore
}

func wordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
