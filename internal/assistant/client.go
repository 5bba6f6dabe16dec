// Package assistant is a client for the backend's AI endpoints: chat,
// content generation and mini-game rounds.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/datagotchi/datagotchi/internal/api"
	"github.com/datagotchi/datagotchi/internal/config"
)

type Client struct {
	httpClient *resty.Client
}

func NewClient(cfg config.APIConfig) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/api/v1/ai").
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	if cfg.TimeoutSeconds > 0 {
		client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	}
	return &Client{httpClient: client}
}

func (c *Client) Chat(ctx context.Context, request ChatRequest) (*ChatResponse, error) {
	var response ChatResponse
	if err := c.post(ctx, "/chat", request, &response); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &response, nil
}

func (c *Client) GenerateContent(ctx context.Context, request GenerateContentRequest) (*GenerateContentResponse, error) {
	var response GenerateContentResponse
	if err := c.post(ctx, "/generate-content", request, &response); err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	return &response, nil
}

func (c *Client) GenerateTriviaQuestions(ctx context.Context, request RoundRequest) ([]TriviaQuestion, error) {
	var response TriviaResponse
	if err := c.post(ctx, "/generate-trivia-questions", request, &response); err != nil {
		return nil, fmt.Errorf("generate trivia questions: %w", err)
	}
	return response.Questions, nil
}

func (c *Client) GenerateSentimentTexts(ctx context.Context, request RoundRequest) ([]SentimentText, error) {
	var response SentimentResponse
	if err := c.post(ctx, "/generate-sentiment-texts", request, &response); err != nil {
		return nil, fmt.Errorf("generate sentiment texts: %w", err)
	}
	return response.Texts, nil
}

func (c *Client) GenerateFlashcards(ctx context.Context, request FlashcardsRequest) ([]Flashcard, error) {
	var response FlashcardsResponse
	if err := c.post(ctx, "/generate-flashcards", request, &response); err != nil {
		return nil, fmt.Errorf("generate flashcards: %w", err)
	}
	return response.Flashcards, nil
}

func (c *Client) GetImageQualityRound(ctx context.Context, request RoundRequest) (*ImageQualityRound, error) {
	var round ImageQualityRound
	if err := c.post(ctx, "/get-image-quality-round", request, &round); err != nil {
		return nil, fmt.Errorf("get image quality round: %w", err)
	}
	return &round, nil
}

// CompleteSession reports a finished play-through of game, e.g. "trivia"
// posts to /complete-trivia-session.
func (c *Client) CompleteSession(ctx context.Context, game string, request CompleteSessionRequest) (*CompleteSessionResponse, error) {
	var response CompleteSessionResponse
	if err := c.post(ctx, "/complete-"+game+"-session", request, &response); err != nil {
		return nil, fmt.Errorf("complete %s session: %w", game, err)
	}
	return &response, nil
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return err
	}
	if res.IsError() {
		return api.NewError(res.StatusCode(), res.Body())
	}
	return nil
}
