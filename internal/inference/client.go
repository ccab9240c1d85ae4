// Package inference wraps the external pretrained-model collaborators:
// grammar correction, embeddings, zero-shot classification and speech
// recognition via the HuggingFace Inference API, plus the chat-based
// coaching narrative. The models themselves are opaque; this package only
// moves bytes and decodes their outputs.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/types"
)

// Options configures the HuggingFace Inference API client.
type Options struct {
	BaseURL string
	APIKey  string

	GrammarModel   string
	EmbeddingModel string
	ZeroShotModel  string
	ASRModel       string

	// Timeout bounds each model call, retries included.
	Timeout time.Duration
}

type Client struct {
	opts       Options
	httpClient *http.Client
	log        *logrus.Entry
}

func NewClient(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Client{
		opts:       opts,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        logger.New().WithComponent("inference"),
	}
}

func (c *Client) modelURL(model string) string {
	return strings.TrimRight(c.opts.BaseURL, "/") + "/models/" + model
}

// Correct returns the model-corrected version of text (text2text task).
func (c *Client) Correct(ctx context.Context, text string) (string, error) {
	payload := map[string]any{
		"inputs":     text,
		"parameters": map[string]any{"max_length": 512},
	}
	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := c.postJSON(ctx, c.modelURL(c.opts.GrammarModel), payload, &out); err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty correction response: %w", types.ErrModelFailure)
	}
	return out[0].GeneratedText, nil
}

// Embed returns the embedding vector for text (feature-extraction task).
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	var raw json.RawMessage
	if err := c.postJSON(ctx, c.modelURL(c.opts.EmbeddingModel), map[string]any{"inputs": text}, &raw); err != nil {
		return nil, err
	}
	return decodeEmbedding(raw)
}

// decodeEmbedding tolerates the shapes different feature-extraction backends
// return: a flat vector, a batch of vectors, or batch x tokens x dims (the
// first token vector is taken, same as the reference pipeline).
func decodeEmbedding(raw json.RawMessage) ([]float64, error) {
	var flat []float64
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}
	var nested [][]float64
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}
	var deep [][][]float64
	if err := json.Unmarshal(raw, &deep); err == nil && len(deep) > 0 && len(deep[0]) > 0 {
		return deep[0][0], nil
	}
	return nil, fmt.Errorf("unexpected embedding shape: %w", types.ErrModelFailure)
}

// ClassifyZeroShot returns the ranked label/score list for text.
func (c *Client) ClassifyZeroShot(ctx context.Context, text string, labels []string) ([]types.LabelScore, error) {
	payload := map[string]any{
		"inputs":     text,
		"parameters": map[string]any{"candidate_labels": labels},
	}
	var out struct {
		Labels []string  `json:"labels"`
		Scores []float64 `json:"scores"`
	}
	if err := c.postJSON(ctx, c.modelURL(c.opts.ZeroShotModel), payload, &out); err != nil {
		return nil, err
	}
	if len(out.Labels) == 0 || len(out.Labels) != len(out.Scores) {
		return nil, fmt.Errorf("malformed zero-shot response: %w", types.ErrModelFailure)
	}
	ranked := make([]types.LabelScore, len(out.Labels))
	for i := range out.Labels {
		ranked[i] = types.LabelScore{Label: out.Labels[i], Score: out.Scores[i]}
	}
	return ranked, nil
}

// Transcribe sends raw audio bytes to the ASR model and returns the text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	var out struct {
		Text string `json:"text"`
	}
	contentType := "application/octet-stream"
	if i := strings.LastIndex(filename, "."); i >= 0 {
		contentType = "audio/" + strings.ToLower(filename[i+1:])
	}
	if err := c.post(ctx, c.modelURL(c.opts.ASRModel), contentType, audio, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload, target any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.post(ctx, url, "application/json", data, target)
}

// post sends the request with bounded exponential-backoff retries. 5xx
// responses (including 503 while a model loads) are retried, 4xx are not.
// A blown deadline maps to ErrModelTimeout, anything else to ErrModelFailure.
func (c *Client) post(ctx context.Context, url, contentType string, body []byte, target any) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.opts.Timeout
	var lastErr error

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", contentType)
		if c.opts.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %s", string(respBody))
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("request rejected (%d): %s", resp.StatusCode, string(respBody))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(respBody, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(respBody))
			return lastErr
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if ctx.Err() != nil {
			c.log.WithField("url", url).Warn("model call timed out")
			return fmt.Errorf("%s: %w", url, types.ErrModelTimeout)
		}
		if lastErr == nil {
			lastErr = err
		}
		return fmt.Errorf("%w: %v", types.ErrModelFailure, lastErr)
	}
	return nil
}
