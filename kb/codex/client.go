// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package codex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted Codex API endpoint.
const DefaultBaseURL = "https://api.codex.cleanlab.ai"

var (
	// ErrAccessKeyRequired indicates an empty access key.
	ErrAccessKeyRequired = errors.New("codex: access key is required")

	// ErrUnauthorized indicates the access key was rejected.
	ErrUnauthorized = errors.New("codex: access key rejected")

	// ErrMissingProject indicates the access key does not match any
	// existing project.
	ErrMissingProject = errors.New("codex: valid project ID or access key is required to authenticate access")
)

// Client is a thin HTTP client for the Codex API. It is safe for
// concurrent use.
type Client struct {
	baseURL         string
	accessKey       string
	integrationType string
	httpClient      *http.Client
	logger          *slog.Logger
}

// ClientOption is a functional option for configuring a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, for self-hosted deployments.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client. Timeout and transport policy
// live here, not in this package.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithIntegrationType sets the integration type reported to the service
// for usage attribution, for example "validator" or "backup".
func WithIntegrationType(integrationType string) ClientOption {
	return func(c *Client) {
		if integrationType != "" {
			c.integrationType = integrationType
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewClient creates a Codex API client authenticated with a project-level
// access key.
func NewClient(accessKey string, opts ...ClientOption) (*Client, error) {
	if accessKey == "" {
		return nil, ErrAccessKeyRequired
	}
	c := &Client{
		baseURL:         DefaultBaseURL,
		accessKey:       accessKey,
		integrationType: DefaultIntegrationType,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		logger:          slog.Default().With("component", "codex-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// do executes one API call, encoding body and decoding the response into
// out when non-nil. A 204 or empty body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	setAnalyticsHeaders(req.Header, c.integrationType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrMissingProject
	case resp.StatusCode >= 400:
		c.logger.Error("codex API error", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("codex: %s %s: unexpected status %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, out)
}
