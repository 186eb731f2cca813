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

import "context"

// Evaluator scores an AI-generated response along named quality metrics.
// Implementations must be thread-safe for concurrent use.
type Evaluator interface {
	// Score evaluates the response against the prompt that produced it and
	// returns one MetricScore per configured evaluation metric. A metric
	// whose score could not be computed is reported with a nil Score, not
	// omitted and not treated as an error.
	// Returns an error if the scoring service call fails.
	Score(ctx context.Context, prompt, response string) (ScoreSet, error)
}

// Prompter asks the scoring model a question and reports the model's answer
// together with a trustworthiness score for that answer.
// Implementations must be thread-safe for concurrent use.
type Prompter interface {
	// Prompt sends the given prompt to the model. When constrainOutputs is
	// non-empty, the model's answer is restricted to one of the given
	// strings (for example []string{"Yes", "No"} for binary judgments).
	// Returns an error if the scoring service call fails.
	Prompt(ctx context.Context, prompt string, constrainOutputs []string) (*PromptResult, error)
}

// Provider aggregates scoring capabilities for convenient initialization and
// lifecycle management. A provider creates and manages Evaluator and
// Prompter instances, ensuring they share configuration and resources.
type Provider interface {
	// Evaluator returns the metric scoring service.
	// The returned Evaluator is safe for concurrent use.
	Evaluator() Evaluator

	// Prompter returns the constrained prompting service.
	// The returned Prompter is safe for concurrent use.
	Prompter() Prompter

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
