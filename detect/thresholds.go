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
	"fmt"
	"math"

	"github.com/poiesic/remedy/scoring"
)

// Default threshold values. Lineage variants disagree on these (0.5, 0.7,
// and 0.23 have all shipped for the same metric), so every one of them is
// plain configuration, overridable per Thresholds instance.
const (
	// DefaultTrustworthinessThreshold is the score below which a response
	// is considered untrustworthy.
	DefaultTrustworthinessThreshold = 0.7

	// DefaultResponseHelpfulnessThreshold is the score below which a
	// response is considered unhelpful.
	DefaultResponseHelpfulnessThreshold = 0.7

	// DefaultMetricThreshold applies to any metric with no explicit
	// threshold configured.
	DefaultMetricThreshold = 0.5
)

// Thresholds maps evaluation metric names to score cutoffs. A response is
// flagged as bad whenever any metric's score falls strictly below its
// threshold.
//
// Lookup is two-tier: the named fields cover the built-in metrics, and an
// auxiliary map holds thresholds for arbitrary custom evaluations. Get is
// total; metrics configured nowhere fall back to the default threshold.
//
// Thresholds are immutable once constructed.
type Thresholds struct {
	trustworthiness     float64
	responseHelpfulness float64
	custom              map[string]float64
	defaultThreshold    float64
}

// ThresholdOption is a functional option for configuring Thresholds.
type ThresholdOption func(*Thresholds) error

// WithTrustworthiness sets the trustworthiness threshold.
func WithTrustworthiness(v float64) ThresholdOption {
	return func(t *Thresholds) error {
		if err := validateThreshold(scoring.MetricTrustworthiness, v); err != nil {
			return err
		}
		t.trustworthiness = v
		return nil
	}
}

// WithResponseHelpfulness sets the response helpfulness threshold.
func WithResponseHelpfulness(v float64) ThresholdOption {
	return func(t *Thresholds) error {
		if err := validateThreshold(scoring.MetricResponseHelpfulness, v); err != nil {
			return err
		}
		t.responseHelpfulness = v
		return nil
	}
}

// WithMetricThreshold sets the threshold for an arbitrary metric. Built-in
// metric names are routed to their named fields, so this is also a safe way
// to apply a map of thresholds wholesale.
func WithMetricThreshold(name string, v float64) ThresholdOption {
	return func(t *Thresholds) error {
		if name == "" {
			return ErrEmptyMetricName
		}
		if err := validateThreshold(name, v); err != nil {
			return err
		}
		switch name {
		case scoring.MetricTrustworthiness:
			t.trustworthiness = v
		case scoring.MetricResponseHelpfulness:
			t.responseHelpfulness = v
		default:
			t.custom[name] = v
		}
		return nil
	}
}

// WithDefaultThreshold sets the fallback threshold returned for metrics
// with no explicit configuration.
func WithDefaultThreshold(v float64) ThresholdOption {
	return func(t *Thresholds) error {
		if err := validateThreshold("default", v); err != nil {
			return err
		}
		t.defaultThreshold = v
		return nil
	}
}

// NewThresholds creates a Thresholds with the default values and applies
// the provided options. Every supplied value is validated to be a number
// in [0,1]; a violation returns ErrInvalidThreshold.
func NewThresholds(opts ...ThresholdOption) (*Thresholds, error) {
	t := &Thresholds{
		trustworthiness:     DefaultTrustworthinessThreshold,
		responseHelpfulness: DefaultResponseHelpfulnessThreshold,
		custom:              make(map[string]float64),
		defaultThreshold:    DefaultMetricThreshold,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewThresholdsFromMap creates a Thresholds from a metric-name-to-threshold
// map, keeping defaults for anything absent.
func NewThresholdsFromMap(thresholds map[string]float64) (*Thresholds, error) {
	opts := make([]ThresholdOption, 0, len(thresholds))
	for name, v := range thresholds {
		opts = append(opts, WithMetricThreshold(name, v))
	}
	return NewThresholds(opts...)
}

// Get returns the threshold for a metric. It is total: built-in fields
// first, then custom overrides, then the default threshold. It never fails
// for an unknown metric name.
func (t *Thresholds) Get(name string) float64 {
	switch name {
	case scoring.MetricTrustworthiness:
		return t.trustworthiness
	case scoring.MetricResponseHelpfulness:
		return t.responseHelpfulness
	}
	if v, ok := t.custom[name]; ok {
		return v
	}
	return t.defaultThreshold
}

// Custom returns a copy of the custom metric thresholds.
func (t *Thresholds) Custom() map[string]float64 {
	out := make(map[string]float64, len(t.custom))
	for name, v := range t.custom {
		out[name] = v
	}
	return out
}

func validateThreshold(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not a finite number", ErrInvalidThreshold, name)
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: %s = %v", ErrInvalidThreshold, name, v)
	}
	return nil
}
