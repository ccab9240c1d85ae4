package scorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarIdenticalTextIsClean(t *testing.T) {
	text := "This is a perfectly fine sentence. So is this one."
	embedder := newFakeEmbedder(map[string][]float64{
		text: {0.2, 0.5, 0.8},
	})
	res, err := Grammar(context.Background(), &fakeCorrector{corrected: text}, embedder, text)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, res.ErrorRate, 1e-9)
	assert.Equal(t, 0, res.TotalErrors)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "Excellent", res.Rating)
}

func TestGrammarFlagsDivergentSentences(t *testing.T) {
	original := "He go to school. I like apples."
	corrected := "He goes to school. I like apples."
	// unit vectors with cosine similarity exactly 0.96
	embedder := newFakeEmbedder(map[string][]float64{
		original:  {1, 0},
		corrected: {0.96, 0.28},
	})
	res, err := Grammar(context.Background(), &fakeCorrector{corrected: corrected}, embedder, original)
	require.NoError(t, err)

	assert.InDelta(t, 4.0, res.ErrorRate, 1e-9)
	assert.Equal(t, "Good", res.Rating)

	// "He go to school" vs "He goes to school": 3 shared of 5 words, 0.60
	require.Equal(t, 1, res.TotalErrors)
	diag := res.Errors[0]
	assert.Equal(t, "grammar", diag.Type)
	assert.Equal(t, "He go to school", diag.Original)
	assert.Equal(t, "He goes to school", diag.Suggestion)
	assert.Equal(t, "Jaccard similarity: 0.60", diag.Context)
}

func TestGrammarJaccardTieBreak(t *testing.T) {
	original := "alpha beta."
	corrected := "alpha beta gamma. alpha beta delta."
	embedder := newFakeEmbedder(map[string][]float64{
		original:  {1, 0},
		corrected: {1, 0},
	})
	res, err := Grammar(context.Background(), &fakeCorrector{corrected: corrected}, embedder, original)
	require.NoError(t, err)

	// both candidates score 2/3; the first one in order wins
	require.Equal(t, 1, res.TotalErrors)
	assert.Equal(t, "alpha beta gamma", res.Errors[0].Suggestion)
	assert.Equal(t, "Jaccard similarity: 0.67", res.Errors[0].Context)
}

func TestGrammarEmptyCorrection(t *testing.T) {
	original := "Something was said."
	embedder := newFakeEmbedder(map[string][]float64{
		original: {1, 1},
		"":       {1, 1},
	})
	res, err := Grammar(context.Background(), &fakeCorrector{corrected: ""}, embedder, original)
	require.NoError(t, err)

	require.Equal(t, 1, res.TotalErrors)
	assert.Equal(t, "Something was said", res.Errors[0].Original)
	assert.Equal(t, "", res.Errors[0].Suggestion)
	assert.Equal(t, "Jaccard similarity: 0.00", res.Errors[0].Context)
}

func TestGrammarCorrectorFailure(t *testing.T) {
	embedder := newFakeEmbedder(nil)
	_, err := Grammar(context.Background(), &fakeCorrector{err: assert.AnError}, embedder, "some text.")
	assert.Error(t, err)
}

func TestGrammarRatingThresholds(t *testing.T) {
	original := "Stable test text."
	corrected := "Stable test text corrected."
	cases := []struct {
		name         string
		correctedVec []float64
		rating       string
	}{
		{"similarity 0.99", []float64{0.99, 0.14106735979665885}, "Excellent"},
		{"similarity 0.96", []float64{0.96, 0.28}, "Good"},
		{"similarity 0.90", []float64{0.90, 0.4358898943540674}, "Needs Improvement"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := newFakeEmbedder(map[string][]float64{
				original:  {1, 0},
				corrected: tc.correctedVec,
			})
			res, err := Grammar(context.Background(), &fakeCorrector{corrected: corrected}, embedder, original)
			require.NoError(t, err)
			assert.Equal(t, tc.rating, res.Rating)
		})
	}
}
