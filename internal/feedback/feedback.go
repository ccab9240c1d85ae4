// Package feedback maps per-dimension score results onto categorized,
// human-readable feedback via fixed rule tables. It never computes ratings
// itself and never fails: a missing dimension yields an all-empty block.
package feedback

import (
	"fmt"
	"strings"

	"interview-insights-go/internal/types"
)

func emptyBlock() types.FeedbackBlock {
	return types.FeedbackBlock{
		Strengths:               []string{},
		AreasForImprovement:     []string{},
		SpecificRecommendations: []string{},
		PracticeExercises:       []string{},
	}
}

func Grammar(g *types.GrammarResult) types.FeedbackBlock {
	b := emptyBlock()
	if g == nil {
		return b
	}
	if g.Rating == "Excellent" {
		b.Strengths = append(b.Strengths, "Strong grammatical accuracy.")
	} else {
		b.AreasForImprovement = append(b.AreasForImprovement, "Improve grammatical accuracy.")
		b.PracticeExercises = append(b.PracticeExercises, "Review and correct the grammatical errors in your response.")
	}
	return b
}

func Keywords(k *types.KeywordResult) types.FeedbackBlock {
	b := emptyBlock()
	if k == nil {
		return b
	}
	switch {
	case k.Coverage >= 80:
		b.Strengths = append(b.Strengths, "Strong keyword coverage.")
	case k.Coverage >= 50:
		b.AreasForImprovement = append(b.AreasForImprovement, "Moderate keyword coverage.")
	default:
		b.AreasForImprovement = append(b.AreasForImprovement, "Low keyword coverage.")
	}
	if k.Coverage < 80 {
		missed := strings.Join(topN(k.Missed, 3), ", ")
		if k.Coverage >= 50 {
			b.SpecificRecommendations = append(b.SpecificRecommendations,
				fmt.Sprintf("You covered %.0f%% of required keywords. Consider incorporating: %s", k.Coverage, missed))
		} else {
			b.SpecificRecommendations = append(b.SpecificRecommendations,
				fmt.Sprintf("You only covered %.0f%% of required keywords. Key terms to include: %s", k.Coverage, missed))
		}
	}
	return b
}

func SentenceComplexity(c *types.ComplexityResult) types.FeedbackBlock {
	b := emptyBlock()
	if c == nil {
		return b
	}
	if c.Rating == "Balanced" {
		b.Strengths = append(b.Strengths, "Good balance of sentence complexity.")
		return b
	}
	b.AreasForImprovement = append(b.AreasForImprovement, "Adjust sentence complexity.")
	b.SpecificRecommendations = append(b.SpecificRecommendations,
		fmt.Sprintf("Your response is %s. Try to maintain a balance between simple and complex sentences.", strings.ToLower(c.Rating)))
	b.PracticeExercises = append(b.PracticeExercises, "Practice restructuring your sentences to achieve a better balance of complexity.")
	return b
}

func Fluency(f *types.FluencyResult) types.FeedbackBlock {
	b := emptyBlock()
	if f == nil {
		return b
	}
	switch f.FillerWords.Rating {
	case "Ideal":
		b.Strengths = append(b.Strengths, "Excellent control of filler words.")
	case "Acceptable":
		b.Strengths = append(b.Strengths, "Good control of filler words, but could be improved.")
		b.AreasForImprovement = append(b.AreasForImprovement, "Reduce filler words for even better fluency.")
	default:
		b.AreasForImprovement = append(b.AreasForImprovement, "High use of filler words.")
		b.SpecificRecommendations = append(b.SpecificRecommendations,
			fmt.Sprintf("Try to reduce filler words (currently %d in your response).", f.FillerWords.Count))
		b.PracticeExercises = append(b.PracticeExercises, "Practice speaking without filler words for 1 minute.")
	}
	if f.SpeakingSpeed.Rating == "Good" {
		b.Strengths = append(b.Strengths, "Good speaking pace.")
	} else {
		b.AreasForImprovement = append(b.AreasForImprovement, "Adjust speaking speed.")
		b.SpecificRecommendations = append(b.SpecificRecommendations,
			fmt.Sprintf("Your speaking speed is %.0f WPM. Aim for 120-150 WPM for optimal clarity.", f.SpeakingSpeed.WordsPerMinute))
	}
	return b
}

func Repetition(r *types.RepetitionResult) types.FeedbackBlock {
	b := emptyBlock()
	if r == nil {
		return b
	}
	if r.Rating == "Good" {
		b.Strengths = append(b.Strengths, "Good vocabulary variety.")
		return b
	}
	b.AreasForImprovement = append(b.AreasForImprovement, "Reduce word repetition.")
	repeated := make([]string, 0, 3)
	for i, wc := range r.WordFrequency {
		if i == 3 {
			break
		}
		repeated = append(repeated, fmt.Sprintf("%s (%d times)", wc.Word, wc.Count))
	}
	b.SpecificRecommendations = append(b.SpecificRecommendations,
		fmt.Sprintf("Most repeated words: %s. Consider using synonyms or alternative phrasing.", strings.Join(repeated, ", ")))
	b.PracticeExercises = append(b.PracticeExercises, "Practice expressing the same ideas using different words and phrases.")
	return b
}

// Generate builds the full feedback object; any nil dimension yields an
// all-empty block for that dimension.
func Generate(g *types.GrammarResult, k *types.KeywordResult, c *types.ComplexityResult, f *types.FluencyResult, r *types.RepetitionResult) types.Feedback {
	return types.Feedback{
		Grammar:            Grammar(g),
		Keywords:           Keywords(k),
		SentenceComplexity: SentenceComplexity(c),
		Fluency:            Fluency(f),
		Repetition:         Repetition(r),
	}
}

func topN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
