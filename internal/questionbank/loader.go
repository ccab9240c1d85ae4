// Package questionbank loads the interview question bank from an xlsx
// workbook at startup: one row per question with its prompt and the keywords
// an answer is expected to cover.
package questionbank

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Question struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category,omitempty"`
}

type Bank struct {
	questions []Question
	byID      map[string]Question
}

// Empty returns a bank with no questions, used when no workbook is configured.
func Empty() *Bank {
	return &Bank{byID: map[string]Question{}}
}

// FromQuestions builds a bank from an in-memory question list.
func FromQuestions(questions []Question) *Bank {
	b := Empty()
	for _, q := range questions {
		b.questions = append(b.questions, q)
		b.byID[q.ID] = q
	}
	return b
}

// Load reads the first sheet, detecting columns by header heuristics.
func Load(path string) (*Bank, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idIdx, promptIdx, keywordsIdx, categoryIdx := -1, -1, -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case promptIdx == -1 && (strings.Contains(l, "prompt") || strings.Contains(l, "question")):
			promptIdx = i
		case keywordsIdx == -1 && strings.Contains(l, "keyword"):
			keywordsIdx = i
		case categoryIdx == -1 && strings.Contains(l, "category"):
			categoryIdx = i
		case idIdx == -1 && strings.Contains(l, "id"):
			idIdx = i
		}
	}
	if promptIdx == -1 {
		return nil, fmt.Errorf("no prompt column found")
	}

	bank := Empty()
	for i, r := range rows {
		if i == 0 {
			continue
		}
		q := Question{}
		if idIdx >= 0 && idIdx < len(r) {
			q.ID = strings.TrimSpace(r[idIdx])
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i)
		}
		if promptIdx < len(r) {
			q.Prompt = strings.TrimSpace(r[promptIdx])
		}
		if q.Prompt == "" {
			continue
		}
		if keywordsIdx >= 0 && keywordsIdx < len(r) {
			for _, kw := range strings.Split(r[keywordsIdx], ",") {
				if kw = strings.TrimSpace(kw); kw != "" {
					q.Keywords = append(q.Keywords, kw)
				}
			}
		}
		if categoryIdx >= 0 && categoryIdx < len(r) {
			q.Category = strings.TrimSpace(r[categoryIdx])
		}
		bank.questions = append(bank.questions, q)
		bank.byID[q.ID] = q
	}
	return bank, nil
}

func (b *Bank) All() []Question {
	if b.questions == nil {
		return []Question{}
	}
	return b.questions
}

func (b *Bank) Get(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

func (b *Bank) Len() int { return len(b.questions) }
