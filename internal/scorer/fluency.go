package scorer

import (
	"strings"

	"interview-insights-go/internal/types"
)

// fillerWords is the fixed hedge/pause vocabulary. Tokenization is
// single-word, so the multi-word entries ("you know", "sort of", "kind of")
// never match; they stay in the set as a documented limitation of the
// calibrated behaviour rather than being silently dropped or fixed.
var fillerWords = map[string]struct{}{
	"um": {}, "uh": {}, "ah": {}, "er": {}, "like": {},
	"you know": {}, "sort of": {}, "kind of": {},
	"basically": {}, "actually": {}, "literally": {}, "honestly": {},
	"maybe": {}, "perhaps": {}, "well": {}, "so": {}, "right": {},
	"okay": {}, "anyway": {}, "anyhow": {},
}

// Fluency counts filler words and speaking pace. A nil or non-positive
// duration falls back to exactly one minute, so per-minute figures collapse
// to raw counts; callers must know the rates are meaningless without a real
// duration.
func Fluency(text string, durationSeconds *float64) *types.FluencyResult {
	words := strings.Fields(text)
	wordCount := len(words)

	fillerCount := 0
	examples := []string{}
	seen := map[string]struct{}{}
	for _, w := range words {
		lw := strings.ToLower(w)
		if _, ok := fillerWords[lw]; !ok {
			continue
		}
		fillerCount++
		if _, dup := seen[lw]; !dup {
			seen[lw] = struct{}{}
			examples = append(examples, lw)
		}
	}

	hasDuration := durationSeconds != nil && *durationSeconds > 0
	durationMinutes := 1.0
	if hasDuration {
		durationMinutes = *durationSeconds / 60
	}

	perMinute := float64(fillerCount) / durationMinutes
	fillerRating := "Risk"
	switch {
	case perMinute <= 5:
		fillerRating = "Ideal"
	case perMinute <= 10:
		fillerRating = "Acceptable"
	}

	wpm := float64(wordCount)
	if hasDuration {
		wpm = float64(wordCount) / durationMinutes
	}
	speedRating := "Good"
	switch {
	case wpm < 100:
		speedRating = "Too Slow"
	case wpm > 170:
		speedRating = "Too Fast"
	}

	return &types.FluencyResult{
		FillerWords: types.FillerWordStats{
			Count:     fillerCount,
			PerMinute: perMinute,
			Rating:    fillerRating,
			Examples:  examples,
		},
		SpeakingSpeed: types.SpeakingSpeed{
			WordsPerMinute: wpm,
			Rating:         speedRating,
			Segments:       []string{},
		},
	}
}
