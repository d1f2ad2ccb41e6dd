package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"tripmate/internal/models"
	"tripmate/internal/services"
)

// Message is one chat turn sent to the completion API
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient abstracts the OpenAI-compatible chat completion call so
// the parser and synthesizer can be tested without a live provider
type CompletionClient interface {
	// Complete sends messages and returns the assistant's text content.
	// jsonMode requests a strictly-JSON response from the model.
	Complete(ctx context.Context, messages []Message, jsonMode bool) (string, error)
}

// ProviderSource yields the completion provider to call. Satisfied by
// services.ProviderService.
type ProviderSource interface {
	Active(ctx context.Context) (*models.LLMProvider, error)
}

// HTTPCompletionClient calls an OpenAI-compatible /chat/completions endpoint
type HTTPCompletionClient struct {
	providers ProviderSource
	client    *http.Client
}

// NewHTTPCompletionClient creates a completion client with the given timeout
func NewHTTPCompletionClient(providers ProviderSource, timeout time.Duration) *HTTPCompletionClient {
	return &HTTPCompletionClient{
		providers: providers,
		client:    &http.Client{Timeout: timeout},
	}
}

// Complete makes the actual HTTP call to the active provider
func (c *HTTPCompletionClient) Complete(ctx context.Context, messages []Message, jsonMode bool) (string, error) {
	provider, err := c.providers.Active(ctx)
	if err != nil {
		return "", fmt.Errorf("no completion provider: %w", err)
	}

	requestBody := map[string]interface{}{
		"model":       provider.Model,
		"messages":    messages,
		"stream":      false,
		"temperature": 0.2,
	}
	if jsonMode {
		requestBody["response_format"] = map[string]interface{}{
			"type": "json_object",
		}
	}

	reqBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()
	content, err := c.send(ctx, provider, reqBody)

	if m := services.GetMetrics(); m != nil {
		m.LLMRequestLatency.Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		m.LLMRequests.WithLabelValues(outcome).Inc()
	}

	return content, err
}

func (c *HTTPCompletionClient) send(ctx context.Context, provider *models.LLMProvider, reqBody []byte) (string, error) {
	url := strings.TrimSuffix(provider.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if provider.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+provider.APIKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ [ASSISTANT] API error from %s: %s", provider.Name, string(body))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if len(apiResponse.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}

	return apiResponse.Choices[0].Message.Content, nil
}

// stripMarkdownCodeBlock removes ```json ... ``` wrapping that some models
// add even when response_format is specified
func stripMarkdownCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return s
}
