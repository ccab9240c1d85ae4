package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-insights-go/internal/types"
)

type fakeCorrector struct {
	fn func(string) (string, error)
}

func (f fakeCorrector) Correct(_ context.Context, text string) (string, error) {
	if f.fn != nil {
		return f.fn(text)
	}
	return text, nil
}

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
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("no vector for %q", text)
}

type fakeClassifier struct{ err error }

func (f fakeClassifier) ClassifyZeroShot(_ context.Context, _ string, labels []string) ([]types.LabelScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	ranked := make([]types.LabelScore, len(labels))
	for i, l := range labels {
		ranked[i] = types.LabelScore{Label: l, Score: 1 - float64(i)*0.1}
	}
	return ranked, nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	return f.text, f.err
}

type fakeCoach struct{ narrative string }

func (f fakeCoach) Narrative(_ context.Context, _, _ string) string { return f.narrative }

const transcript = "I value teamwork above all. We ship together."

func workingModels() (ModelRegistry, *fakeEmbedder) {
	embedder := newFakeEmbedder(map[string][]float64{
		transcript: {1, 0},
		"teamwork": {0.9, 0.4358898943540674},
	})
	return ModelRegistry{
		Corrector:   fakeCorrector{},
		Embedder:    embedder,
		Classifier:  fakeClassifier{},
		Transcriber: fakeTranscriber{text: "hello"},
		Coach:       fakeCoach{narrative: "coached"},
	}, embedder
}

func TestAnalyseEmptyTranscriptIsHardFailure(t *testing.T) {
	models, _ := workingModels()
	a := New(models)

	_, err := a.Analyse(context.Background(), Input{Transcription: "   "})
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestAnalyseHappyPath(t *testing.T) {
	models, embedder := workingModels()
	a := New(models)

	report, err := a.Analyse(context.Background(), Input{
		Transcription:    transcript,
		RequiredKeywords: []string{"teamwork"},
		Prompt:           "Tell me about teamwork.",
	})
	require.NoError(t, err)

	require.NotNil(t, report.Grammar)
	require.NotNil(t, report.Keywords)
	require.NotNil(t, report.SentenceComplexity)
	require.NotNil(t, report.Fluency)
	require.NotNil(t, report.Repetition)
	assert.Empty(t, report.Errors)

	// corrector echoes the input, so grammar is spotless
	assert.Equal(t, "Excellent", report.Grammar.Rating)
	assert.Zero(t, report.Grammar.TotalErrors)

	require.Len(t, report.Keywords.Matched, 1)
	assert.InDelta(t, 100.0, report.Keywords.Coverage, 1e-9)

	assert.Equal(t, "coached", report.AIAnalysis)
	assert.NotEmpty(t, report.Feedback.Grammar.Strengths)

	// the transcript embedding is shared between grammar and keywords
	assert.Equal(t, 1, embedder.calls[transcript], "transcript must be embedded exactly once")
}

func TestAnalysePartialFailureKeepsOtherDimensions(t *testing.T) {
	models, _ := workingModels()
	models.Corrector = fakeCorrector{fn: func(string) (string, error) {
		return "", errors.New("model unavailable")
	}}
	a := New(models)

	report, err := a.Analyse(context.Background(), Input{Transcription: transcript})
	require.NoError(t, err)

	assert.Nil(t, report.Grammar)
	require.Contains(t, report.Errors, "grammar")
	assert.Contains(t, report.Errors["grammar"], "model unavailable")

	// other dimensions still computed
	assert.NotNil(t, report.Keywords)
	assert.NotNil(t, report.SentenceComplexity)
	assert.NotNil(t, report.Fluency)
	assert.NotNil(t, report.Repetition)

	// failed dimension degrades to an all-empty feedback block
	assert.Empty(t, report.Feedback.Grammar.Strengths)
	assert.Empty(t, report.Feedback.Grammar.AreasForImprovement)
}

func TestAnalyseClassifierFailure(t *testing.T) {
	models, _ := workingModels()
	models.Classifier = fakeClassifier{err: errors.New("boom")}
	a := New(models)

	report, err := a.Analyse(context.Background(), Input{Transcription: transcript})
	require.NoError(t, err)

	assert.Nil(t, report.SentenceComplexity)
	assert.Contains(t, report.Errors, "sentenceComplexity")
	assert.NotNil(t, report.Grammar)
}

func TestAnalyseWithoutCoach(t *testing.T) {
	models, _ := workingModels()
	models.Coach = nil
	a := New(models)

	report, err := a.Analyse(context.Background(), Input{Transcription: transcript})
	require.NoError(t, err)
	assert.Empty(t, report.AIAnalysis)
}

func TestTranscribe(t *testing.T) {
	models, _ := workingModels()
	a := New(models)

	text, err := a.Transcribe(context.Background(), []byte{1, 2, 3}, "clip.wav")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = a.Transcribe(context.Background(), nil, "clip.wav")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestTranscribeFailure(t *testing.T) {
	models, _ := workingModels()
	models.Transcriber = fakeTranscriber{err: types.ErrModelFailure}
	a := New(models)

	_, err := a.Transcribe(context.Background(), []byte{1}, "clip.wav")
	assert.ErrorIs(t, err, types.ErrModelFailure)
}
