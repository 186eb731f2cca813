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


package kb

import (
	"context"
	"log/slog"
)

// Gateway implements the lookup-or-register contract over a KnowledgeBase.
// It is stateless apart from its configuration and safe for concurrent use.
type Gateway struct {
	kb     KnowledgeBase
	logger *slog.Logger
}

// GatewayOption is a functional option for configuring a Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
	}
}

// NewGateway creates a gateway over the given knowledge base.
func NewGateway(knowledgeBase KnowledgeBase, opts ...GatewayOption) (*Gateway, error) {
	if knowledgeBase == nil {
		return nil, ErrKnowledgeBaseRequired
	}
	g := &Gateway{
		kb:     knowledgeBase,
		logger: slog.Default().With("component", "kb-gateway"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Query looks up the question and returns the best available answer:
//
//   - a matching answered entry returns that answer and the entry
//   - a matching unanswered entry returns fallbackAnswer and the entry
//   - no match registers the question (side effect: a new pending entry,
//     unless readOnly is set) and returns fallbackAnswer
//
// In read-only mode the backend is never mutated and a missing entry
// returns (fallbackAnswer, nil, nil). Backend errors propagate unmodified.
func (g *Gateway) Query(ctx context.Context, question, fallbackAnswer string, readOnly bool) (string, *Entry, error) {
	if question == "" {
		return "", nil, ErrEmptyQuestion
	}

	entry, err := g.kb.Query(ctx, question)
	if err != nil {
		return "", nil, err
	}

	if entry != nil {
		if entry.Answered() {
			g.logger.Debug("expert answer found", "entry_id", entry.ID)
			return *entry.Answer, entry, nil
		}
		g.logger.Debug("question already logged, still unanswered", "entry_id", entry.ID)
		return fallbackAnswer, entry, nil
	}

	if readOnly {
		return fallbackAnswer, nil, nil
	}

	created, err := g.kb.AddQuestion(ctx, question)
	if err != nil {
		return "", nil, err
	}
	g.logger.Debug("question logged for expert review", "entry_id", created.ID)
	return fallbackAnswer, created, nil
}

// AddQuestion registers an unanswered question for expert review. If the
// question is already present the existing entry is returned unchanged.
func (g *Gateway) AddQuestion(ctx context.Context, question string) (*Entry, error) {
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	return g.kb.AddQuestion(ctx, question)
}

// AddRemediation records an expert-verified question/answer pair. Returns
// ErrRemediationUnsupported when the backend lacks the capability.
func (g *Gateway) AddRemediation(ctx context.Context, question string, answer *string) (*Entry, error) {
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	writer, ok := g.kb.(RemediationWriter)
	if !ok {
		return nil, ErrRemediationUnsupported
	}
	return writer.AddRemediation(ctx, question, answer)
}
