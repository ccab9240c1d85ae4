package inference

import (
	"context"
	"hash/fnv"
	"strings"

	"interview-insights-go/internal/types"
)

// Mock is a deterministic stand-in for every external model, enabled with
// USE_MOCK_MODELS=true for offline demos and local development.
type Mock struct{}

func (Mock) Correct(_ context.Context, text string) (string, error) {
	return text, nil
}

// Embed derives a stable pseudo-vector from the text so equal texts are
// identical (similarity 1) and different texts are mostly dissimilar.
func (Mock) Embed(_ context.Context, text string) ([]float64, error) {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(text))))
	seed := h.Sum64()
	vec := make([]float64, 16)
	for i := range vec {
		seed = seed*6364136223846793005 + 1442695040888963407
		vec[i] = float64(int64(seed>>32))/float64(1<<31) + 0.001
	}
	return vec, nil
}

func (Mock) ClassifyZeroShot(_ context.Context, text string, labels []string) ([]types.LabelScore, error) {
	lower := strings.ToLower(text)
	top := "simple"
	hasConj := strings.Contains(lower, " and ") || strings.Contains(lower, " but ") || strings.Contains(lower, " or ")
	hasSub := strings.Contains(lower, " because ") || strings.Contains(lower, " although ") ||
		strings.Contains(lower, " which ") || strings.Contains(lower, " when ")
	switch {
	case hasConj && hasSub:
		top = "compound-complex"
	case hasSub:
		top = "complex"
	case hasConj:
		top = "compound"
	}
	ranked := []types.LabelScore{{Label: top, Score: 0.9}}
	for _, l := range labels {
		if l != top {
			ranked = append(ranked, types.LabelScore{Label: l, Score: 0.1})
		}
	}
	return ranked, nil
}

func (Mock) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	return "MOCK TRANSCRIPT: I believe teamwork and clear communication are my strongest skills.", nil
}

func (Mock) Narrative(_ context.Context, _, _ string) string {
	return "**Overall Performance:** 7/10 — solid answer with room to tighten structure."
}
