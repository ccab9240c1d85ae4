package scorer

import (
	"context"
	"fmt"

	"interview-insights-go/internal/types"
	"interview-insights-go/internal/vectormath"
)

// A keyword counts as matched when its embedding similarity to the
// transcript exceeds this.
const keywordMatchThreshold = 0.7

// Keywords scores how well the transcript semantically covers the required
// keywords. The transcript is embedded once; each keyword independently.
func Keywords(ctx context.Context, embedder Embedder, text string, required []string) (*types.KeywordResult, error) {
	res := &types.KeywordResult{
		Matched: []types.KeywordMatch{},
		Missed:  []string{},
	}
	if len(required) == 0 {
		return res, nil
	}

	textVec, err := embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed transcript: %w", err)
	}

	for _, kw := range required {
		kwVec, err := embedder.Embed(ctx, kw)
		if err != nil {
			return nil, fmt.Errorf("embed keyword %q: %w", kw, err)
		}
		sim, err := vectormath.Cosine(textVec, kwVec)
		if err != nil {
			sim = 0
		}
		if sim > keywordMatchThreshold {
			res.Matched = append(res.Matched, types.KeywordMatch{
				Keyword:    kw,
				Weight:     sim,
				Matched:    true,
				Similarity: sim,
			})
			res.Score += sim
		} else {
			res.Missed = append(res.Missed, kw)
		}
	}

	res.Coverage = float64(len(res.Matched)) / float64(len(required)) * 100
	return res, nil
}
