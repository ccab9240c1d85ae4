package scorer

import (
	"context"
	"fmt"
	"sync"

	"interview-insights-go/internal/types"
)

// fakeCorrector returns a fixed corrected text, or errors when err is set.
type fakeCorrector struct {
	corrected string
	err       error
}

func (f *fakeCorrector) Correct(_ context.Context, _ string) (string, error) {
	return f.corrected, f.err
}

// fakeEmbedder serves canned vectors keyed by exact text and counts calls.
type fakeEmbedder struct {
	mu      sync.Mutex
	vectors map[string][]float64
	calls   map[string]int
}

func newFakeEmbedder(vectors map[string][]float64) *fakeEmbedder {
	return &fakeEmbedder{vectors: vectors, calls: map[string]int{}}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[text]++
	v, ok := f.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return v, nil
}

func (f *fakeEmbedder) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// fakeClassifier maps each sentence to its top label.
type fakeClassifier struct {
	labels map[string]string
	err    error
}

func (f *fakeClassifier) ClassifyZeroShot(_ context.Context, text string, candidates []string) ([]types.LabelScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	top, ok := f.labels[text]
	if !ok {
		top = candidates[0]
	}
	ranked := []types.LabelScore{{Label: top, Score: 0.9}}
	for _, c := range candidates {
		if c != top {
			ranked = append(ranked, types.LabelScore{Label: c, Score: 0.05})
		}
	}
	return ranked, nil
}

func ptr(f float64) *float64 { return &f }
