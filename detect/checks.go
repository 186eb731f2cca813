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

import (
	"context"
	"log/slog"
	"strings"

	fuzz "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/poiesic/remedy/scoring"
)

// CheckName identifies a detection check.
type CheckName string

const (
	// CheckFallback is the fallback-similarity check.
	CheckFallback CheckName = "fallback"
	// CheckUntrustworthy is the trustworthiness check.
	CheckUntrustworthy CheckName = "untrustworthy"
	// CheckUnhelpful is the helpfulness check.
	CheckUnhelpful CheckName = "unhelpful"
	// CheckBad names the aggregate of all checks.
	CheckBad CheckName = "bad"
)

// CheckResult is the structured outcome of a single check.
type CheckResult struct {
	// Name identifies which check produced this result.
	Name CheckName

	// FailsCheck is true when the check flagged the response as bad.
	FailsCheck bool

	// Scores holds the check's numeric evidence, keyed by score name.
	Scores map[string]float64

	// Metadata carries free-form details such as the threshold applied.
	Metadata map[string]any
}

// Fails reports the check's verdict. It is the externally observable truth
// value of the result.
func (r CheckResult) Fails() bool {
	return r.FailsCheck
}

// AggregateResult is the combined outcome of a check pipeline run. It
// records every check that executed, in order, so callers can see which
// sub-check failed.
type AggregateResult struct {
	// Name is always CheckBad.
	Name CheckName

	// Results are the individual check outcomes in execution order. When
	// the pipeline short-circuits, checks after the failing one are absent.
	Results []CheckResult
}

// Fails reports whether any executed check failed.
func (a AggregateResult) Fails() bool {
	for _, r := range a.Results {
		if r.FailsCheck {
			return true
		}
	}
	return false
}

// Checker runs the bad-response check pipeline. Construct with NewChecker;
// a Checker is immutable and safe for concurrent use.
type Checker struct {
	fallbackAnswer               string
	similarityThreshold          float64
	trustworthinessThreshold     float64
	unhelpfulConfidenceThreshold float64
	formatPrompt                 FormatPrompt
	provider                     scoring.Provider
	logger                       *slog.Logger
}

// NewChecker creates a check pipeline with the default configuration and
// applies the provided options. Configuration errors are returned here,
// never at check time.
func NewChecker(opts ...CheckOption) (*Checker, error) {
	c := &Checker{
		fallbackAnswer:               DefaultFallbackAnswer,
		similarityThreshold:          DefaultSimilarityThreshold,
		trustworthinessThreshold:     DefaultCheckTrustworthinessThreshold,
		unhelpfulConfidenceThreshold: DefaultUnhelpfulConfidenceThreshold,
		formatPrompt:                 DefaultFormatPrompt,
		logger:                       slog.Default().With("component", "detect-checker"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// IsBadResponse runs the checks in fixed order (fallback, untrustworthy,
// unhelpful) and stops at the first failure. Checks whose inputs are
// unavailable are skipped: the untrustworthiness check needs query, context,
// and a scoring provider; the unhelpfulness check needs query and a
// provider. Empty query or context means "not supplied".
//
// The aggregate fails when any executed check failed. Scoring service
// errors abort the run and propagate unmodified.
func (c *Checker) IsBadResponse(ctx context.Context, response, query, contextText string) (*AggregateResult, error) {
	agg := &AggregateResult{Name: CheckBad}

	fallback := c.FallbackCheck(response)
	agg.Results = append(agg.Results, fallback)
	if fallback.FailsCheck {
		c.logger.Debug("response flagged by fallback check",
			"similarity", fallback.Scores["similarity_score"])
		return agg, nil
	}

	if query != "" && contextText != "" && c.provider != nil {
		result, err := c.UntrustworthyCheck(ctx, response, query, contextText)
		if err != nil {
			return nil, err
		}
		agg.Results = append(agg.Results, result)
		if result.FailsCheck {
			c.logger.Debug("response flagged by untrustworthy check",
				"score", result.Scores["trustworthiness_score"])
			return agg, nil
		}
	}

	if query != "" && c.provider != nil {
		result, err := c.UnhelpfulCheck(ctx, response, query)
		if err != nil {
			return nil, err
		}
		agg.Results = append(agg.Results, result)
		if result.FailsCheck {
			c.logger.Debug("response flagged by unhelpful check",
				"confidence", result.Scores["confidence_score"])
		}
	}

	return agg, nil
}

// FallbackCheck compares the response against the known non-answer template
// using fuzzy partial-ratio matching. The similarity is normalized to
// [0,1]; the check fails when similarity >= the configured threshold.
func (c *Checker) FallbackCheck(response string) CheckResult {
	ratio := fuzz.PartialRatio(strings.ToLower(c.fallbackAnswer), strings.ToLower(response))
	similarity := float64(ratio) / 100.0

	return CheckResult{
		Name:       CheckFallback,
		FailsCheck: similarity >= c.similarityThreshold,
		Scores:     map[string]float64{"similarity_score": similarity},
		Metadata:   map[string]any{"threshold": c.similarityThreshold},
	}
}

// UntrustworthyCheck scores the response's trustworthiness against the
// prompt built from query and context. The check fails when the score is
// strictly below the configured threshold; a missing score never fails.
func (c *Checker) UntrustworthyCheck(ctx context.Context, response, query, contextText string) (CheckResult, error) {
	prompt := c.formatPrompt(query, contextText)

	scores, err := c.provider.Evaluator().Score(ctx, prompt, response)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{
		Name:     CheckUntrustworthy,
		Scores:   map[string]float64{},
		Metadata: map[string]any{"threshold": c.trustworthinessThreshold},
	}
	metric, ok := scores[scoring.MetricTrustworthiness]
	if ok && metric.Score != nil {
		result.Scores["trustworthiness_score"] = *metric.Score
		result.FailsCheck = *metric.Score < c.trustworthinessThreshold
		if metric.Explanation != "" {
			result.Metadata["explanation"] = metric.Explanation
		}
	}
	return result, nil
}

// The question and the expected "unhelpful" answer are linked: asking "is
// this unhelpful?" makes "Yes" the bad answer, while asking "is this
// helpful?" would make it "No". Changing the question phrasing requires
// simultaneously flipping either the expected answer or the comparison.
const unhelpfulQuestion = "Does the AI Assistant Response seem unhelpful? " +
	"Things that are not helpful include answers that:\n" +
	"- Are not useful, incomplete, incorrect, uncertain or unclear.\n" +
	"- Abstain or refuse to answer the question\n" +
	"- Statements which are similar to 'I don't know', 'Sorry', or 'No information available'.\n" +
	"- Leave the original question unresolved\n" +
	"- Are irrelevant to the question\n" +
	"Answer Yes/No only."

const expectedUnhelpfulAnswer = "yes"

// UnhelpfulCheck asks the scoring model to judge, Yes or No, whether the
// response is unhelpful for the query. The check fails only when the model
// answers Yes and its confidence strictly exceeds the configured threshold.
func (c *Checker) UnhelpfulCheck(ctx context.Context, response, query string) (CheckResult, error) {
	prompt := "Consider the following User Query and AI Assistant Response.\n\n" +
		"User Query: " + query + "\n\n" +
		"AI Assistant Response: " + response + "\n\n" +
		unhelpfulQuestion

	output, err := c.provider.Prompter().Prompt(ctx, prompt, []string{"Yes", "No"})
	if err != nil {
		return CheckResult{}, err
	}

	markedUnhelpful := strings.EqualFold(strings.TrimSpace(output.Response), expectedUnhelpfulAnswer)
	confident := output.TrustworthinessScore > c.unhelpfulConfidenceThreshold

	return CheckResult{
		Name:       CheckUnhelpful,
		FailsCheck: markedUnhelpful && confident,
		Scores:     map[string]float64{"confidence_score": output.TrustworthinessScore},
		Metadata: map[string]any{
			"threshold": c.unhelpfulConfidenceThreshold,
			"answer":    output.Response,
		},
	}, nil
}
