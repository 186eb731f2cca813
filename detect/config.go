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
	"log/slog"

	"github.com/poiesic/remedy/scoring"
)

// DefaultFallbackAnswer is the canonical non-answer template responses are
// compared against by the fallback similarity check.
const DefaultFallbackAnswer = "Based on the available information, I cannot provide a complete answer to this question."

// Default check pipeline thresholds. All scores and thresholds in this
// package live on a single normalized [0,1] scale, including the fallback
// similarity ratio.
const (
	// DefaultSimilarityThreshold is the normalized partial-ratio
	// similarity at or above which a response counts as a fallback.
	DefaultSimilarityThreshold = 0.7

	// DefaultCheckTrustworthinessThreshold is the trustworthiness score
	// below which the untrustworthiness check fails.
	DefaultCheckTrustworthinessThreshold = 0.5

	// DefaultUnhelpfulConfidenceThreshold is the confidence the scoring
	// model must exceed for an "unhelpful" judgment to stand.
	DefaultUnhelpfulConfidenceThreshold = 0.5
)

// CheckOption is a functional option for configuring a Checker.
type CheckOption func(*Checker) error

// WithFallbackAnswer sets the known non-answer template for the fallback
// similarity check.
func WithFallbackAnswer(answer string) CheckOption {
	return func(c *Checker) error {
		if answer == "" {
			return ErrEmptyFallbackAnswer
		}
		c.fallbackAnswer = answer
		return nil
	}
}

// WithSimilarityThreshold sets the fallback similarity threshold in [0,1].
func WithSimilarityThreshold(v float64) CheckOption {
	return func(c *Checker) error {
		if err := validateThreshold("similarity", v); err != nil {
			return err
		}
		c.similarityThreshold = v
		return nil
	}
}

// WithTrustworthinessThreshold sets the untrustworthiness check threshold.
func WithTrustworthinessThreshold(v float64) CheckOption {
	return func(c *Checker) error {
		if err := validateThreshold("trustworthiness", v); err != nil {
			return err
		}
		c.trustworthinessThreshold = v
		return nil
	}
}

// WithUnhelpfulConfidenceThreshold sets the confidence threshold for the
// unhelpfulness check.
func WithUnhelpfulConfidenceThreshold(v float64) CheckOption {
	return func(c *Checker) error {
		if err := validateThreshold("unhelpful confidence", v); err != nil {
			return err
		}
		c.unhelpfulConfidenceThreshold = v
		return nil
	}
}

// WithFormatPrompt sets the prompt formatter used by the untrustworthiness
// check.
func WithFormatPrompt(fn FormatPrompt) CheckOption {
	return func(c *Checker) error {
		if fn == nil {
			return ErrNilFormatPrompt
		}
		c.formatPrompt = fn
		return nil
	}
}

// WithProvider sets the scoring service handle. Without one, the
// untrustworthiness and unhelpfulness checks are skipped.
func WithProvider(provider scoring.Provider) CheckOption {
	return func(c *Checker) error {
		c.provider = provider
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CheckOption {
	return func(c *Checker) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}
