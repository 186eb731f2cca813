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
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/remedy/scoring"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Prompter implements scoring.Prompter using OpenAI-compatible chat APIs.
type Prompter struct {
	client llms.Model
	logger *slog.Logger
}

// answer is an internal type used for JSON unmarshaling.
type answer struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

// newPrompter is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newPrompter(config *scoring.Config) (*Prompter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Prompter{
		client: client,
		logger: slog.Default().With("component", "openai-prompter"),
	}, nil
}

// NewPrompter creates a new prompter using the provided configuration.
//
// Returns scoring.Prompter interface to enforce abstraction.
func NewPrompter(config *scoring.Config) (scoring.Prompter, error) {
	return newPrompter(config)
}

// Prompt asks the model the given question and returns its answer together
// with the model's self-assessed confidence. When constrainOutputs is
// non-empty, an answer outside the allowed set counts as a parse failure
// and is retried.
func (p *Prompter) Prompt(ctx context.Context, prompt string, constrainOutputs []string) (*scoring.PromptResult, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(answerSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAnswerPrompt(prompt, constrainOutputs)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON or an out-of-set answer
	var result answer
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		reply, err := p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			p.logger.Error("failed to generate answer", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(reply.Choices) < 1 {
			p.logger.Debug("no choices returned from model")
			return &scoring.PromptResult{}, nil
		}

		text := repairJSON(stripFences(reply.Choices[0].Content))
		if err := json.Unmarshal([]byte(text), &result); err != nil {
			lastErr = err
			p.logger.Warn("error parsing answer response",
				"attempt", attempt+1,
				"response", text,
				"err", err)
			continue
		}

		if canonical, ok := matchConstraint(result.Answer, constrainOutputs); ok {
			result.Answer = canonical
			lastErr = nil
			break
		}

		lastErr = errOutOfSet(result.Answer)
		p.logger.Warn("answer outside constrained outputs",
			"attempt", attempt+1,
			"answer", result.Answer)
	}

	if lastErr != nil {
		p.logger.Error("failed to get usable answer after retries", "err", lastErr)
		return nil, lastErr
	}

	return &scoring.PromptResult{
		Response:             result.Answer,
		TrustworthinessScore: clamp(result.Confidence),
	}, nil
}

// matchConstraint resolves the model's answer against the allowed outputs,
// case-insensitively. With no constraints every answer matches.
func matchConstraint(answer string, constrainOutputs []string) (string, bool) {
	if len(constrainOutputs) == 0 {
		return answer, true
	}
	trimmed := strings.TrimSpace(answer)
	for _, allowed := range constrainOutputs {
		if strings.EqualFold(trimmed, allowed) {
			return allowed, true
		}
	}
	return answer, false
}

type errOutOfSet string

func (e errOutOfSet) Error() string {
	return "answer not in constrained outputs: " + string(e)
}
