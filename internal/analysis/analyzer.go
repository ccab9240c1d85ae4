// Package analysis orchestrates the five scoring dimensions over a single
// transcription and merges their results, feedback and the optional coaching
// narrative into one report.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"interview-insights-go/internal/feedback"
	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/scorer"
	"interview-insights-go/internal/types"
)

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Coach produces the free-form narrative; failures come back as an inline
// message inside the string, never as an error.
type Coach interface {
	Narrative(ctx context.Context, transcript, question string) string
}

// ModelRegistry holds the process-wide model handles, loaded once at startup
// and injected here; all handles are read-only and safe for concurrent use.
type ModelRegistry struct {
	Corrector   scorer.Corrector
	Embedder    scorer.Embedder
	Classifier  scorer.Classifier
	Transcriber Transcriber
	Coach       Coach
}

type Analyzer struct {
	models ModelRegistry
	log    *logrus.Entry
}

func New(models ModelRegistry) *Analyzer {
	return &Analyzer{
		models: models,
		log:    logger.New().WithComponent("analysis"),
	}
}

// Input is one analysis request. DurationSeconds nil means unknown duration.
type Input struct {
	Transcription    string
	RequiredKeywords []string
	DurationSeconds  *float64
	Prompt           string
}

// Analyse runs the five scorers concurrently and assembles the report.
// Only an empty transcript is a hard failure; a failed dimension leaves its
// slot null and records the reason under Errors.
func (a *Analyzer) Analyse(ctx context.Context, in Input) (*types.AnalysisReport, error) {
	start := time.Now()
	if strings.TrimSpace(in.Transcription) == "" {
		return nil, fmt.Errorf("empty transcription: %w", types.ErrInvalidInput)
	}

	report := &types.AnalysisReport{}

	// One embedding per distinct text per request: the grammar and keyword
	// scorers share this cache.
	embedder := scorer.NewCachingEmbedder(a.models.Embedder)

	var mu sync.Mutex
	fail := func(dimension string, err error) {
		a.log.WithField("dimension", dimension).WithError(err).Warn("scorer failed")
		mu.Lock()
		if report.Errors == nil {
			report.Errors = map[string]string{}
		}
		report.Errors[dimension] = err.Error()
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		res, err := scorer.Grammar(ctx, a.models.Corrector, embedder, in.Transcription)
		if err != nil {
			fail("grammar", err)
			return
		}
		report.Grammar = res
	}()
	go func() {
		defer wg.Done()
		res, err := scorer.Keywords(ctx, embedder, in.Transcription, in.RequiredKeywords)
		if err != nil {
			fail("keywords", err)
			return
		}
		report.Keywords = res
	}()
	go func() {
		defer wg.Done()
		res, err := scorer.SentenceComplexity(ctx, a.models.Classifier, in.Transcription)
		if err != nil {
			fail("sentenceComplexity", err)
			return
		}
		report.SentenceComplexity = res
	}()
	go func() {
		defer wg.Done()
		report.Fluency = scorer.Fluency(in.Transcription, in.DurationSeconds)
	}()
	go func() {
		defer wg.Done()
		report.Repetition = scorer.Repetition(in.Transcription)
	}()

	narrativeCh := make(chan string, 1)
	if a.models.Coach != nil {
		go func() {
			narrativeCh <- a.models.Coach.Narrative(ctx, in.Transcription, in.Prompt)
		}()
	} else {
		narrativeCh <- ""
	}

	wg.Wait()
	report.AIAnalysis = <-narrativeCh
	report.Feedback = feedback.Generate(report.Grammar, report.Keywords, report.SentenceComplexity, report.Fluency, report.Repetition)
	report.DurationMs = time.Since(start).Milliseconds()
	return report, nil
}

// Transcribe converts uploaded audio to text via the ASR collaborator.
func (a *Analyzer) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload: %w", types.ErrInvalidInput)
	}
	text, err := a.models.Transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return text, nil
}
