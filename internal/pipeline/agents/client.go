// Package agents implements the Maker and Checker collaborators on top
// of the Anthropic messages API. No SDK is used; the surface needed is
// a single POST with three headers.
package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/munimji/munimji/internal/config"
	"github.com/munimji/munimji/internal/pipeline/domain"
	"go.uber.org/zap"
)

const apiVersion = "2023-06-01"

type client struct {
	http      *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
	log       *zap.Logger
}

func newClient(cfg config.Config, log *zap.Logger) *client {
	return &client{
		http:      &http.Client{Timeout: 60 * time.Second},
		baseURL:   strings.TrimRight(cfg.AgentBaseURL, "/"),
		apiKey:    cfg.AgentAPIKey,
		model:     cfg.AgentModel,
		maxTokens: cfg.AgentMaxTokens,
		log:       log,
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// complete sends one user prompt and returns the text of the reply with
// its usage telemetry. The telemetry is filled in even on failure so
// callers can log what was attempted.
func (c *client) complete(ctx context.Context, prompt string) (string, domain.Telemetry, error) {
	t := domain.Telemetry{Prompt: prompt}
	start := time.Now()

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", t, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", t, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		t.DurationMs = int(time.Since(start).Milliseconds())
		return "", t, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	t.DurationMs = int(time.Since(start).Milliseconds())
	if err != nil {
		return "", t, err
	}

	var parsed messagesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", t, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", t, fmt.Errorf("api error %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", t, fmt.Errorf("api error %d", resp.StatusCode)
	}
	if len(parsed.Content) == 0 {
		return "", t, fmt.Errorf("empty response content")
	}

	text := parsed.Content[0].Text
	t.Response = text
	t.InputTokens = parsed.Usage.InputTokens
	t.OutputTokens = parsed.Usage.OutputTokens
	return text, t, nil
}

// extractJSON strips a markdown code fence when the model wrapped its
// JSON in one.
func extractJSON(text string) string {
	if i := strings.Index(text, "```json"); i >= 0 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
	}
	if i := strings.Index(text, "```"); i >= 0 {
		rest := text[i+3:]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
	}
	return strings.TrimSpace(text)
}
