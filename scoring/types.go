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

// Well-known metric names produced by scoring providers. Providers may emit
// arbitrary additional metrics for custom evaluations.
const (
	// MetricTrustworthiness estimates how likely the response is to be
	// correct given the prompt. Always computed by conforming providers.
	MetricTrustworthiness = "trustworthiness"

	// MetricResponseHelpfulness estimates whether the response actually
	// helps the user rather than deflecting or abstaining.
	MetricResponseHelpfulness = "response_helpfulness"

	// MetricContextSufficiency estimates whether the retrieved context
	// contains enough information to answer the query.
	MetricContextSufficiency = "context_sufficiency"

	// MetricQueryEase estimates how straightforward the user query is to
	// answer from the given context.
	MetricQueryEase = "query_ease"
)

// MetricScore is a single quality score produced by a scoring provider.
type MetricScore struct {
	// Score is the metric value in [0,1], or nil when the provider could
	// not compute this metric. Nil scores are never treated as failing.
	Score *float64

	// Explanation is an optional model-provided justification for the
	// score. Empty when explanation logging is disabled.
	Explanation string
}

// ScoreSet maps metric names to their scores for a single evaluation.
type ScoreSet map[string]MetricScore

// PromptResult is the outcome of a constrained Prompter call.
type PromptResult struct {
	// Response is the model's answer. When the call constrained outputs,
	// this is one of the allowed strings.
	Response string

	// TrustworthinessScore is the model's confidence in its own answer,
	// in [0,1].
	TrustworthinessScore float64
}

// Float is a convenience helper for building ScoreSet literals.
func Float(v float64) *float64 {
	return &v
}
