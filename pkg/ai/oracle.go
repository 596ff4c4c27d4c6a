package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saiydurnetcom/nexuspm/pkg/config"
)

// Draft is a normalized suggestion produced by the oracle before it is bound
// to a meeting and persisted. The caller assigns id and meeting.
type Draft struct {
	OriginalText         string
	SuggestedTask        string
	SuggestedDescription string
	ConfidenceScore      float64
}

// Settings is the resolved reasoning-service configuration for one call.
type Settings struct {
	APIURL      string
	APIKey      string
	Model       string
	Temperature float64
}

// SettingsProvider resolves the per-deployment settings record. A nil
// settings result (without error) means no record exists and the
// environment configuration applies.
type SettingsProvider interface {
	AISettings(ctx context.Context) (*Settings, error)
}

const (
	defaultConfidence    = 0.8
	excerptLimit         = 100
	placeholderTask      = "Review meeting notes and define follow-up task"
	retryInitialInterval = 500 * time.Millisecond
	retryMaxElapsed      = 10 * time.Second
)

// Client calls the external reasoning service to extract task suggestions
// from meeting notes. It never returns an error: any failure to reach or
// parse the service degrades into the deterministic fallback set.
type Client struct {
	cfg      *config.AIConfig
	settings SettingsProvider
	client   *http.Client
	logger   *zap.Logger
}

// NewClient creates an oracle client. settings may be nil, in which case only
// the environment configuration is consulted. logger may be nil.
func NewClient(cfg *config.AIConfig, settings SettingsProvider, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:      cfg,
		settings: settings,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage is a single chat turn
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat hints the service to answer with a JSON document
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateSuggestions extracts task drafts from meeting notes. projectID is
// passed through for log context only. The returned list always holds at
// least one draft.
func (c *Client) GenerateSuggestions(ctx context.Context, notes string, projectID *uuid.UUID, existing []TaskSummary) []Draft {
	settings := c.resolveSettings(ctx)

	// Unconfigured deployments are an expected operating mode, not an error:
	// serve the fallback set without touching the network.
	if settings.APIKey == "" || settings.APIURL == "" {
		c.logInfo("oracle not configured, serving fallback suggestions",
			zap.Stringp("project_id", uuidString(projectID)),
		)
		return FallbackDrafts(notes)
	}

	content, err := c.complete(ctx, settings, notes, existing)
	if err != nil {
		c.logWarn("oracle call failed, serving fallback suggestions",
			zap.Stringp("project_id", uuidString(projectID)),
			zap.Error(err),
		)
		return FallbackDrafts(notes)
	}

	drafts := decodeDrafts(content, notes)
	if len(drafts) == 0 {
		c.logWarn("oracle response had no usable suggestions, serving fallback",
			zap.Int("content_length", len(content)),
		)
		return FallbackDrafts(notes)
	}

	return drafts
}

// resolveSettings applies the precedence order: per-deployment settings
// record first, environment configuration second.
func (c *Client) resolveSettings(ctx context.Context) Settings {
	if c.settings != nil {
		record, err := c.settings.AISettings(ctx)
		if err != nil {
			c.logWarn("failed to load AI settings record, using environment", zap.Error(err))
		} else if record != nil {
			return *record
		}
	}
	return Settings{
		APIURL:      c.cfg.APIURL,
		APIKey:      c.cfg.APIKey,
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
	}
}

// complete performs one bounded chat-completion call. Transport-level errors
// are retried under backoff inside the client timeout; HTTP error statuses
// and malformed bodies are permanent.
func (c *Client) complete(ctx context.Context, settings Settings, notes string, existing []TaskSummary) (string, error) {
	system, user := BuildPrompt(notes, existing)

	reqBody := ChatRequest{
		Model: settings.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    settings.Temperature,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	var content string
	call := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, settings.APIURL, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+settings.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("oracle returned status %d", resp.StatusCode))
		}

		var cr ChatResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			return backoff.Permanent(fmt.Errorf("decode oracle response: %w", err))
		}
		if len(cr.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("empty choices in oracle response"))
		}
		content = cr.Choices[0].Message.Content
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.MaxElapsedTime = retryMaxElapsed

	if err := backoff.Retry(call, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return content, nil
}

func (c *Client) logInfo(msg string, fields ...zap.Field) {
	if c.logger != nil {
		c.logger.Info(msg, fields...)
	}
}

func (c *Client) logWarn(msg string, fields ...zap.Field) {
	if c.logger != nil {
		c.logger.Warn(msg, fields...)
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
