package inference

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"interview-insights-go/internal/logger"
)

const coachPrompt = `You are an expert interview coach. Analyze this interview response and provide constructive feedback.

The candidate has been asked the following question:
%s

Transcription:
"%s"

Please provide feedback regarding the candidate's response in the following format:

**Overall Performance:** [Rate 1-10 and brief summary]

**Strengths:**
- [List 2-3 specific strengths]

**Areas for Improvement:**
- [List 2-3 specific areas to work on]

**Specific Suggestions:**
- [Provide 3-4 actionable tips]

**Communication Quality:**
- Clarity: [Score/10]
- Confidence: [Score/10]
- Structure: [Score/10]

**Key Advice:**
[One paragraph of the most important advice for this candidate]

Keep feedback constructive, specific, and actionable. Focus on both content and delivery.`

// Coach generates the free-form coaching narrative through an
// OpenAI-compatible chat endpoint.
type Coach struct {
	client *openai.Client
	model  string
	log    *logrus.Entry
}

func NewCoach(apiBase, apiKey, model string) *Coach {
	cfg := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		cfg.BaseURL = apiBase
	}
	return &Coach{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    logger.New().WithComponent("coach"),
	}
}

// Narrative never fails: any error is absorbed into the returned string so a
// broken coach endpoint degrades the report instead of aborting it.
func (c *Coach) Narrative(ctx context.Context, transcript, question string) string {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(coachPrompt, question, transcript)},
		},
	})
	if err != nil {
		c.log.WithError(err).Warn("coach narrative failed")
		return fmt.Sprintf("Error generating feedback: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "Error generating feedback: empty response"
	}
	return resp.Choices[0].Message.Content
}
