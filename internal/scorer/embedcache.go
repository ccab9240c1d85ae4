package scorer

import (
	"context"
	"sync"
)

type embedEntry struct {
	once sync.Once
	vec  []float64
	err  error
}

// cachingEmbedder deduplicates Embed calls per distinct text. Request-scoped:
// the grammar and keyword scorers run concurrently and both need the
// transcript embedding, which must hit the model at most once.
type cachingEmbedder struct {
	inner   Embedder
	mu      sync.Mutex
	entries map[string]*embedEntry
}

func NewCachingEmbedder(inner Embedder) Embedder {
	return &cachingEmbedder{inner: inner, entries: map[string]*embedEntry{}}
}

func (c *cachingEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	c.mu.Lock()
	e, ok := c.entries[text]
	if !ok {
		e = &embedEntry{}
		c.entries[text] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.vec, e.err = c.inner.Embed(ctx, text)
	})
	return e.vec, e.err
}
