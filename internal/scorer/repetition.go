package scorer

import (
	"strings"
	"unicode/utf8"

	"interview-insights-go/internal/types"
)

// Repetition measures vocabulary variety over words longer than 3 characters.
// wordFrequency lists tokens seen more than twice, in first-seen order.
func Repetition(text string) *types.RepetitionResult {
	var retained []string
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) > 3 {
			retained = append(retained, strings.ToLower(w))
		}
	}

	counts := map[string]int{}
	var firstSeen []string
	for _, w := range retained {
		if counts[w] == 0 {
			firstSeen = append(firstSeen, w)
		}
		counts[w]++
	}

	frequency := []types.WordCount{}
	for _, w := range firstSeen {
		if counts[w] > 2 {
			frequency = append(frequency, types.WordCount{Word: w, Count: counts[w]})
		}
	}

	score := 0.0
	if len(retained) > 0 {
		score = float64(len(counts)) / float64(len(retained))
	}
	rating := "High"
	switch {
	case score > 0.7:
		rating = "Good"
	case score > 0.5:
		rating = "Moderate"
	}

	return &types.RepetitionResult{
		WordFrequency:    frequency,
		PhraseRepetition: []string{},
		RepetitionScore:  score,
		Rating:           rating,
	}
}
