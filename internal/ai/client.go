// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai talks to the hosted text-generation model and turns its raw
// output into a branding bundle. Every failure is reported as one of two
// sentinel errors so callers can fall back without inspecting details.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultURL is the Hugging Face inference endpoint used when none is configured.
	DefaultURL = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"

	DefaultTimeout     = 10 * time.Second
	DefaultMaxLength   = 512
	DefaultTemperature = 0.7
)

var (
	// ErrUnavailable means no usable response came back: no credential,
	// a transport failure, a timeout, or a body that is not JSON.
	ErrUnavailable = errors.New("ai: remote generation unavailable")

	// ErrInvalid means a response arrived but did not contain a bundle.
	ErrInvalid = errors.New("ai: invalid generation output")

	// ErrNotConfigured is the ErrUnavailable returned when no API key is set.
	ErrNotConfigured = fmt.Errorf("%w: no API key configured", ErrUnavailable)
)

// Config holds the credential and fixed generation parameters. It is built
// once at startup and never re-read from the environment.
type Config struct {
	APIKey      string
	URL         string
	Timeout     time.Duration
	MaxLength   int
	Temperature float64
}

// RawResult is the decoded-but-unvalidated JSON payload of a successful call.
type RawResult json.RawMessage

// Client calls the text-generation inference API.
type Client struct {
	config Config
	client *http.Client
}

// New creates a Client, filling unset parameters with defaults.
func New(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Configured reports whether a credential is present.
func (c *Client) Configured() bool {
	return c.config.APIKey != ""
}

// Name identifies the backend in logs.
func (c *Client) Name() string { return "huggingface" }

// Complete sends one prompt and returns the raw JSON payload. Without a
// credential it returns ErrNotConfigured without touching the network. All
// other failures are wrapped in ErrUnavailable.
func (c *Client) Complete(ctx context.Context, prompt string) (RawResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxLength:      c.config.MaxLength,
			Temperature:    c.config.Temperature,
			ReturnFullText: false,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: request: %v", ErrUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: http: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, truncate(string(respBody), 200))
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%w: response is not JSON", ErrUnavailable)
	}

	return RawResult(respBody), nil
}

// --- Inference API request types ---

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxLength      int     `json:"max_length"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

// truncate cuts a string to maxLen bytes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
