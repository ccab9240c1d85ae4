package scorer

import (
	"context"

	"interview-insights-go/internal/types"
)

// External model collaborators consumed by the scorers. Implementations live
// in internal/inference; tests substitute in-memory fakes.

type Corrector interface {
	Correct(ctx context.Context, text string) (string, error)
}

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type Classifier interface {
	ClassifyZeroShot(ctx context.Context, text string, labels []string) ([]types.LabelScore, error)
}
