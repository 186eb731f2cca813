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


package detect

import "github.com/poiesic/remedy/scoring"

// Response labels assigned by Label, in priority order.
const (
	// LabelSearchFailure means the retrieved context could not support an
	// answer at all.
	LabelSearchFailure = "search_failure"

	// LabelUnhelpful means the response does not usefully address the
	// query.
	LabelUnhelpful = "unhelpful"

	// LabelHallucination means the response is unsupported by the context.
	LabelHallucination = "hallucination"

	// LabelOtherIssues covers failures on custom metrics.
	LabelOtherIssues = "other_issues"
)

// EvalScore is a metric score annotated with its threshold verdict.
type EvalScore struct {
	// Score is the metric value in [0,1], or nil when the scoring service
	// could not compute it.
	Score *float64

	// Explanation is an optional model-provided justification.
	Explanation string

	// IsBad reports whether the score is non-nil and strictly below the
	// metric's threshold. A score exactly at the threshold is not bad.
	IsBad bool
}

// ThresholdedScores maps metric names to their thresholded scores.
type ThresholdedScores map[string]EvalScore

// ApplyThresholds annotates every metric in scores with its threshold
// verdict. Nil scores pass through with IsBad=false; they are skipped, not
// treated as failing.
func ApplyThresholds(scores scoring.ScoreSet, thresholds *Thresholds) ThresholdedScores {
	out := make(ThresholdedScores, len(scores))
	for name, metric := range scores {
		out[name] = EvalScore{
			Score:       metric.Score,
			Explanation: metric.Explanation,
			IsBad:       metric.Score != nil && *metric.Score < thresholds.Get(name),
		}
	}
	return out
}

// IsBadResponse reports whether any metric was flagged as bad.
func (s ThresholdedScores) IsBadResponse() bool {
	for _, eval := range s {
		if eval.IsBad {
			return true
		}
	}
	return false
}

// IsBadResponse reports whether any metric in scores falls strictly below
// its threshold, stopping at the first failing metric. Nil scores never
// fail.
func IsBadResponse(scores scoring.ScoreSet, thresholds *Thresholds) bool {
	for name, metric := range scores {
		if metric.Score != nil && *metric.Score < thresholds.Get(name) {
			return true
		}
	}
	return false
}

// Label assigns a best-effort categorical explanation for a bad response.
// Evaluated in fixed priority order, first match wins: failing context
// sufficiency means retrieval found nothing usable (search failure), before
// helpfulness or query ease (unhelpful), before trustworthiness
// (hallucination). Anything else that failed is grouped as other issues.
func (s ThresholdedScores) Label() string {
	if s.failed(scoring.MetricContextSufficiency) {
		return LabelSearchFailure
	}
	if s.failed(scoring.MetricResponseHelpfulness) || s.failed(scoring.MetricQueryEase) {
		return LabelUnhelpful
	}
	if s.failed(scoring.MetricTrustworthiness) {
		return LabelHallucination
	}
	return LabelOtherIssues
}

func (s ThresholdedScores) failed(name string) bool {
	eval, ok := s[name]
	return ok && eval.IsBad
}
