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
	"fmt"
	"log/slog"

	"github.com/poiesic/remedy/scoring"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Evaluator implements scoring.Evaluator using OpenAI-compatible chat APIs.
// Each metric is graded with a separate JSON-mode call.
type Evaluator struct {
	client          llms.Model
	evals           []scoring.Eval
	logExplanations bool
	logger          *slog.Logger
}

// grade is an internal type used for JSON unmarshaling.
// It matches the structure the grading prompt asks the LLM for.
type grade struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// newEvaluator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEvaluator(config *scoring.Config) (*Evaluator, error) {
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

	return &Evaluator{
		client:          client,
		evals:           config.Evals,
		logExplanations: config.LogExplanations,
		logger:          slog.Default().With("component", "openai-evaluator"),
	}, nil
}

// NewEvaluator creates a new evaluator using the provided configuration.
//
// Returns scoring.Evaluator interface to enforce abstraction.
func NewEvaluator(config *scoring.Config) (scoring.Evaluator, error) {
	return newEvaluator(config)
}

// Score grades the response along trustworthiness plus every configured
// eval. Metrics the model declines to grade come back with a nil score.
func (e *Evaluator) Score(ctx context.Context, prompt, response string) (scoring.ScoreSet, error) {
	scores := make(scoring.ScoreSet, len(e.evals)+1)

	metric, err := e.scoreOne(ctx, trustworthinessCriteria, prompt, response)
	if err != nil {
		return nil, fmt.Errorf("scoring %s: %w", scoring.MetricTrustworthiness, err)
	}
	scores[scoring.MetricTrustworthiness] = metric

	for _, eval := range e.evals {
		metric, err := e.scoreOne(ctx, eval.Criteria, prompt, response)
		if err != nil {
			return nil, fmt.Errorf("scoring %s: %w", eval.Name, err)
		}
		scores[eval.Name] = metric
	}

	e.logger.Debug("scored response", "metrics", len(scores))
	return scores, nil
}

// scoreOne grades the response against a single criterion.
func (e *Evaluator) scoreOne(ctx context.Context, criteria, prompt, response string) (scoring.MetricScore, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(evalSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildEvalPrompt(criteria, prompt, response)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result grade
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		reply, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate grade", "attempt", attempt+1, "err", err)
			return scoring.MetricScore{}, err
		}

		if len(reply.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return scoring.MetricScore{}, nil
		}

		text := repairJSON(stripFences(reply.Choices[0].Content))
		if err := json.Unmarshal([]byte(text), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing grade response",
				"attempt", attempt+1,
				"response", text,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse grade response after retries", "err", lastErr)
		return scoring.MetricScore{}, lastErr
	}

	score := clamp(result.Score)
	metric := scoring.MetricScore{Score: &score}
	if e.logExplanations {
		metric.Explanation = result.Explanation
	}
	return metric, nil
}

// clamp bounds a model-reported score to [0,1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
