// services/inference.go - Hosted chat-completion client
package services

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultInferenceBaseURL = "https://router.huggingface.co/v1"
	defaultInferenceModel   = "mistralai/Mistral-7B-Instruct-v0.2"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InferenceClient talks to an OpenAI-compatible chat-completions endpoint
// (the Hugging Face router by default). It supports a streaming call and a
// blocking call; the chatbot tries streaming first and falls back.
type InferenceClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewInferenceClient(apiKey string) *InferenceClient {
	model := os.Getenv("INFERENCE_MODEL")
	if model == "" {
		model = defaultInferenceModel
	}
	baseURL := os.Getenv("INFERENCE_BASE_URL")
	if baseURL == "" {
		baseURL = defaultInferenceBaseURL
	}

	return &InferenceClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatCompletionChoice struct {
	Message      ChatMessage `json:"message"`
	Delta        ChatMessage `json:"delta"`
	FinishReason string      `json:"finish_reason"`
}

type inferenceError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

type chatCompletionResponse struct {
	Choices []chatCompletionChoice `json:"choices"`
	Error   *inferenceError        `json:"error,omitempty"`
}

// ChatCompletion performs a single blocking completion call.
func (c *InferenceClient) ChatCompletion(ctx context.Context, messages []ChatMessage, maxTokens int, temperature float64) (string, error) {
	resp, err := c.post(ctx, chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", httpStatusError(resp)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("inference error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// ChatCompletionStream performs a streaming completion call, concatenating
// delta fragments in arrival order. onDelta, when non-nil, observes each
// fragment as it arrives. If the stream breaks before the server signals
// completion the partial text is discarded and an error is returned, so the
// caller can retry with the blocking variant.
func (c *InferenceClient) ChatCompletionStream(ctx context.Context, messages []ChatMessage, maxTokens int, temperature float64, onDelta func(string)) (string, error) {
	resp, err := c.post(ctx, chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Stream:      true,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", httpStatusError(resp)
	}

	var text strings.Builder
	done := false

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			done = true
			break
		}

		var chunk chatCompletionResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return "", fmt.Errorf("decoding stream chunk: %w", err)
		}
		if chunk.Error != nil {
			return "", fmt.Errorf("inference error: %s", chunk.Error.Message)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			text.WriteString(delta)
			if onDelta != nil {
				onDelta(delta)
			}
		}
		if chunk.Choices[0].FinishReason != "" {
			done = true
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading stream: %w", err)
	}
	if !done {
		return "", errors.New("stream ended before completion")
	}
	return text.String(), nil
}

func (c *InferenceClient) post(ctx context.Context, payload chatCompletionRequest) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if payload.Stream {
		req.Header.Set("Accept", "text/event-stream")
	}

	return c.httpClient.Do(req)
}

func httpStatusError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("inference endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
}
