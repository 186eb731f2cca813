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


package openai

import (
	"log/slog"

	"github.com/poiesic/remedy/scoring"
)

// Provider implements scoring.Provider using OpenAI-compatible services.
// It manages evaluator and prompter instances.
type Provider struct {
	config    *scoring.Config
	evaluator *Evaluator
	prompter  *Prompter
	logger    *slog.Logger
}

// NewProvider creates a new scoring provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns scoring.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *scoring.Config) (scoring.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	evaluator, err := newEvaluator(config)
	if err != nil {
		return nil, err
	}

	prompter, err := newPrompter(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		evaluator: evaluator,
		prompter:  prompter,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Evaluator returns the metric scoring service.
func (p *Provider) Evaluator() scoring.Evaluator {
	return p.evaluator
}

// Prompter returns the constrained prompting service.
func (p *Provider) Prompter() scoring.Prompter {
	return p.prompter
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI scoring provider")
	return nil
}
