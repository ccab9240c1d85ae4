package scorer

import (
	"context"
	"fmt"
	"strings"

	"interview-insights-go/internal/types"
)

var complexityLabels = []string{"simple", "compound", "complex", "compound-complex"}

// SentenceComplexity classifies each sentence into one of four structural
// categories via zero-shot classification and rates the overall balance.
func SentenceComplexity(ctx context.Context, classifier Classifier, text string) (*types.ComplexityResult, error) {
	sentences := SplitSentences(text)

	counts := map[string]int{}
	totalWords := 0
	for _, s := range sentences {
		ranked, err := classifier.ClassifyZeroShot(ctx, s, complexityLabels)
		if err != nil {
			return nil, fmt.Errorf("classify sentence: %w", err)
		}
		if len(ranked) == 0 {
			return nil, fmt.Errorf("classifier returned no labels: %w", types.ErrModelFailure)
		}
		counts[ranked[0].Label]++
		totalWords += len(strings.Fields(s))
	}

	res := &types.ComplexityResult{
		Simple:          counts["simple"],
		Compound:        counts["compound"],
		Complex:         counts["complex"],
		CompoundComplex: counts["compound-complex"],
	}
	if total := len(sentences); total > 0 {
		res.ComplexityRatio = float64(counts["complex"]+counts["compound-complex"]) / float64(total)
		res.AverageLength = float64(totalWords) / float64(total)
	}

	switch {
	case res.ComplexityRatio < 0.3:
		res.Rating = "Too Simple"
	case res.ComplexityRatio <= 0.7:
		res.Rating = "Balanced"
	default:
		res.Rating = "Too Complex"
	}
	return res, nil
}
