package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Model represents an OpenAI model identifier
type Model string

const (
	ModelGPT41Mini Model = "gpt-4.1-mini"
	ModelGPT41     Model = "gpt-4.1"
	ModelGPT4o     Model = "gpt-4o"
)

var DefaultModel Model = ModelGPT41Mini

const defaultBaseURL = "https://api.openai.com"

var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")
var ErrMalformedResponse = errors.New("no assistant message content in response")

// StatusError is returned when the API responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openai API returned status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	apiKey     string
	model      Model
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, model Model) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type chatRequest struct {
	Model    Model         `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CreateChatCompletion performs one synchronous request and returns the raw
// response body. One attempt, no retry.
func (c *Client) CreateChatCompletion(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type contentPart struct {
	Text *string `json:"text"`
}

// ExtractContent pulls the assistant reply text out of a raw chat-completions
// response body. The content field is usually a plain string, but some models
// return an array of typed parts; every text-bearing part is concatenated in
// order. Any other shape is ErrMalformedResponse.
func ExtractContent(raw []byte) (string, error) {
	var res chatResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(res.Choices) == 0 {
		return "", ErrMalformedResponse
	}

	content := res.Choices[0].Message.Content
	if len(content) == 0 || string(content) == "null" {
		return "", ErrMalformedResponse
	}

	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s, nil
	}

	var parts []contentPart
	if err := json.Unmarshal(content, &parts); err != nil {
		return "", ErrMalformedResponse
	}
	var sb strings.Builder
	for _, p := range parts {
		if p.Text != nil {
			sb.WriteString(*p.Text)
		}
	}
	return sb.String(), nil
}

// Complete implements llm.Client.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	raw, err := c.CreateChatCompletion(ctx, prompt)
	if err != nil {
		return "", err
	}
	return ExtractContent(raw)
}
