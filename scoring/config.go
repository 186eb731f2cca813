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


package scoring

import (
	"errors"
	"strings"
)

// Eval describes one evaluation metric a provider should score.
type Eval struct {
	// Name is the metric name reported in the ScoreSet.
	Name string

	// Criteria is the instruction given to the scoring model describing
	// what a high-scoring response looks like for this metric.
	Criteria string
}

// DefaultEvals returns the evaluations run by default, excluding
// trustworthiness, which conforming providers always compute.
func DefaultEvals() []Eval {
	return []Eval{
		{
			Name: MetricResponseHelpfulness,
			Criteria: "Assess whether the AI Assistant Response is a helpful answer to the User Query. " +
				"Responses that are off-topic, incomplete, vague, or that abstain from answering " +
				"(for example 'I don't know' or 'no information available') are not helpful.",
		},
	}
}

// Config holds configuration for scoring service providers.
type Config struct {
	// Host is the base URL for the scoring service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	Host string

	// Model is the model identifier used for evaluation prompts.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	Model string

	// Evals are the evaluation metrics to score, in the order their
	// results should be reported. Trustworthiness is always computed and
	// must not be listed here.
	Evals []Eval

	// LogExplanations controls whether providers request a short
	// justification for each score. Default: true
	LogExplanations bool
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the scoring service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the scoring model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithEvals replaces the default evaluation set.
func WithEvals(evals ...Eval) ConfigOption {
	return func(c *Config) {
		c.Evals = evals
	}
}

// WithAdditionalEvals appends custom evaluations to the configured set.
func WithAdditionalEvals(evals ...Eval) ConfigOption {
	return func(c *Config) {
		c.Evals = append(c.Evals, evals...)
	}
}

// WithExplanations toggles score explanation logging.
func WithExplanations(enabled bool) ConfigOption {
	return func(c *Config) {
		c.LogExplanations = enabled
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		Host:            "http://localhost:11434/v1",
		Model:           "qwen2.5:3b",
		Evals:           DefaultEvals(),
		LogExplanations: true,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config.
//
// Example:
//
//	cfg := scoring.NewConfig(
//	    scoring.WithHost("http://localhost:11434/v1"),
//	    scoring.WithModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("scoring config: Host is required")
	}
	if c.Model == "" {
		return errors.New("scoring config: Model is required")
	}
	seen := make(map[string]bool, len(c.Evals)+1)
	seen[MetricTrustworthiness] = true
	for _, eval := range c.Evals {
		if eval.Name == "" {
			return errors.New("scoring config: eval name is required")
		}
		if eval.Name == MetricTrustworthiness {
			return errors.New("scoring config: trustworthiness is always computed and cannot be configured as an eval")
		}
		if seen[eval.Name] {
			return errors.New("scoring config: duplicate eval name " + eval.Name)
		}
		seen[eval.Name] = true
		if eval.Criteria == "" {
			return errors.New("scoring config: eval criteria is required for " + eval.Name)
		}
	}
	return nil
}
