package types

// --------------------------------------------
// Top-level request for the analysis API
// --------------------------------------------
type AnalyseRequest struct {
	Transcription    string   `json:"transcription" validate:"required"`
	RequiredKeywords []string `json:"required_keywords" validate:"omitempty,dive,min=1"`
	DurationSeconds  *float64 `json:"duration_seconds" validate:"omitempty,gt=0"`
	Prompt           string   `json:"prompt"`
	QuestionID       string   `json:"question_id"`
}

// --------------------------------------------
// Grammar dimension
// --------------------------------------------
type GrammarError struct {
	Type       string `json:"type"`
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	Context    string `json:"context"`
}

type GrammarResult struct {
	ErrorRate   float64        `json:"errorRate"`
	TotalErrors int            `json:"totalErrors"`
	Errors      []GrammarError `json:"errors"`
	Rating      string         `json:"rating"`
}

// --------------------------------------------
// Keyword coverage dimension
// --------------------------------------------
type KeywordMatch struct {
	Keyword    string  `json:"keyword"`
	Weight     float64 `json:"weight"`
	Matched    bool    `json:"matched"`
	Similarity float64 `json:"similarity"`
}

type KeywordResult struct {
	Matched  []KeywordMatch `json:"matched"`
	Missed   []string       `json:"missed"`
	Score    float64        `json:"score"`
	Coverage float64        `json:"coverage"`
}

// --------------------------------------------
// Sentence complexity dimension. Per-label counts
// are flattened to the same top-level keys the
// frontend consumes.
// --------------------------------------------
type ComplexityResult struct {
	Simple          int     `json:"simple"`
	Compound        int     `json:"compound"`
	Complex         int     `json:"complex"`
	CompoundComplex int     `json:"compound-complex"`
	AverageLength   float64 `json:"averageLength"`
	ComplexityRatio float64 `json:"complexityRatio"`
	Rating          string  `json:"rating"`
}

// --------------------------------------------
// Fluency dimension
// --------------------------------------------
type FillerWordStats struct {
	Count     int      `json:"count"`
	PerMinute float64  `json:"perMinute"`
	Rating    string   `json:"rating"`
	Examples  []string `json:"examples"`
}

type SpeakingSpeed struct {
	WordsPerMinute float64  `json:"wordsPerMinute"`
	Rating         string   `json:"rating"`
	Segments       []string `json:"segments"`
}

type FluencyResult struct {
	FillerWords   FillerWordStats `json:"fillerWords"`
	SpeakingSpeed SpeakingSpeed   `json:"speakingSpeed"`
}

// --------------------------------------------
// Repetition dimension
// --------------------------------------------
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type RepetitionResult struct {
	WordFrequency    []WordCount `json:"wordFrequency"`
	PhraseRepetition []string    `json:"phraseRepetition"`
	RepetitionScore  float64     `json:"repetitionScore"`
	Rating           string      `json:"rating"`
}

// --------------------------------------------
// Categorized feedback, one block per dimension
// --------------------------------------------
type FeedbackBlock struct {
	Strengths               []string `json:"strengths"`
	AreasForImprovement     []string `json:"areasForImprovement"`
	SpecificRecommendations []string `json:"specificRecommendations"`
	PracticeExercises       []string `json:"practiceExercises"`
}

type Feedback struct {
	Grammar            FeedbackBlock `json:"grammar"`
	Keywords           FeedbackBlock `json:"keywords"`
	SentenceComplexity FeedbackBlock `json:"sentenceComplexity"`
	Fluency            FeedbackBlock `json:"fluency"`
	Repetition         FeedbackBlock `json:"repetition"`
}

// --------------------------------------------
// FINAL output delivered to the caller.
// A nil dimension pointer means that scorer failed;
// the failure reason lives in Errors under the same key.
// --------------------------------------------
type AnalysisReport struct {
	Grammar            *GrammarResult    `json:"grammar"`
	Keywords           *KeywordResult    `json:"keywords"`
	SentenceComplexity *ComplexityResult `json:"sentenceComplexity"`
	Fluency            *FluencyResult    `json:"fluency"`
	Repetition         *RepetitionResult `json:"repetition"`
	Feedback           Feedback          `json:"feedback"`
	AIAnalysis         string            `json:"aiAnalysis,omitempty"`
	Errors             map[string]string `json:"errors,omitempty"`
	DurationMs         int64             `json:"duration_ms"`
}

// LabelScore is one entry of a ranked zero-shot classification result.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
