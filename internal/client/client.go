// Package client talks to the sentiment API over HTTP.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Veraticus/tastemood/internal/common"
	"github.com/Veraticus/tastemood/internal/model"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// StatusError is returned when the service answers with a non-200 status.
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sentiment API returned status %d", e.Code)
	}
	return fmt.Sprintf("sentiment API returned status %d: %s", e.Code, e.Message)
}

type errorBody struct {
	Message string `json:"message"`
}

type historyBody struct {
	Sentiments []model.SentimentRecord `json:"sentiments"`
}

// Client is a thin HTTP client for the sentiment API.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*resty.Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// New creates a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

// Predict asks the service to classify text.
func (c *Client) Predict(ctx context.Context, text string) (model.Prediction, error) {
	var prediction model.Prediction
	var apiErr errorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		SetResult(&prediction).
		SetError(&apiErr).
		Post("/predict/")
	if err != nil {
		return model.Prediction{}, fmt.Errorf("%w: predict request failed: %w", common.ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return model.Prediction{}, &StatusError{Code: resp.StatusCode(), Message: apiErr.Message}
	}
	return prediction, nil
}

// History fetches every stored record in insertion order.
func (c *Client) History(ctx context.Context) ([]model.SentimentRecord, error) {
	var body historyBody
	var apiErr errorBody

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		SetError(&apiErr).
		Get("/history/")
	if err != nil {
		return nil, fmt.Errorf("%w: history request failed: %w", common.ErrNetwork, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode(), Message: apiErr.Message}
	}
	if body.Sentiments == nil {
		body.Sentiments = []model.SentimentRecord{}
	}
	return body.Sentiments, nil
}
