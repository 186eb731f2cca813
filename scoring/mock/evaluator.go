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


package mock

import (
	"context"

	"github.com/poiesic/remedy/scoring"
)

// MockEvaluator is a test double for scoring.Evaluator.
type MockEvaluator struct {
	// ScoreFunc is called by Score if set.
	// If nil, uses default deterministic behavior.
	ScoreFunc func(ctx context.Context, prompt, response string) (scoring.ScoreSet, error)

	callCount int
}

// NewMockEvaluator creates a mock evaluator with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockEvaluator().
func NewMockEvaluator() *MockEvaluator {
	return &MockEvaluator{}
}

// Score returns canned high-quality scores unless ScoreFunc is set.
func (m *MockEvaluator) Score(ctx context.Context, prompt, response string) (scoring.ScoreSet, error) {
	m.callCount++

	if m.ScoreFunc != nil {
		return m.ScoreFunc(ctx, prompt, response)
	}

	// Default: everything looks fine
	return scoring.ScoreSet{
		scoring.MetricTrustworthiness:     {Score: scoring.Float(0.9)},
		scoring.MetricResponseHelpfulness: {Score: scoring.Float(0.9)},
	}, nil
}

// CallCount returns the number of times Score was called.
func (m *MockEvaluator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockEvaluator) Reset() {
	m.callCount = 0
	m.ScoreFunc = nil
}
