package sentiment

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/tastemood/internal/model"
	"github.com/go-resty/resty/v2"
)

const openAISystemPrompt = `You are a sentiment classifier for restaurant and food reviews. ` +
	`Classify the overall sentiment of the user's text as POSITIVE, NEGATIVE or NEUTRAL. ` +
	`You MUST respond with ONLY a valid JSON object of the form {"label": "POSITIVE", "score": 0.97} ` +
	`where score is your confidence between 0 and 1. Do not include any other text.`

// openAIClassifier asks an OpenAI-compatible chat completions API for a label.
type openAIClassifier struct {
	client *resty.Client
	model  string
}

func newOpenAIClassifier(cfg Config) (*openAIClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &openAIClassifier{
		client: client,
		model:  cfg.Model,
	}, nil
}

// Classify sends a classification request to OpenAI.
func (c *openAIClassifier) Classify(ctx context.Context, text string) (model.Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return model.Prediction{}, fmt.Errorf("text is empty")
	}

	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": openAISystemPrompt},
			{"role": "user", "content": text},
		},
		"temperature": 0,
		"max_tokens":  50,
	}

	var response openAIResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&response).
		ForceContentType("application/json").
		Post("/chat/completions")
	if err != nil {
		return model.Prediction{}, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return model.Prediction{}, fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	if len(response.Choices) == 0 {
		return model.Prediction{}, fmt.Errorf("no completion choices returned")
	}

	return parsePrediction(response.Choices[0].Message.Content)
}

type openAIResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
	} `json:"choices"`
}
