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
	"strings"

	"github.com/poiesic/remedy/scoring"
)

// MockPrompter is a test double for scoring.Prompter.
type MockPrompter struct {
	// PromptFunc is called by Prompt if set.
	// If nil, uses default deterministic behavior.
	PromptFunc func(ctx context.Context, prompt string, constrainOutputs []string) (*scoring.PromptResult, error)

	callCount int
}

// NewMockPrompter creates a mock prompter with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockPrompter().
func NewMockPrompter() *MockPrompter {
	return &MockPrompter{}
}

// Prompt answers "No" (with "No" preferred among constrained outputs)
// unless PromptFunc is set.
func (m *MockPrompter) Prompt(ctx context.Context, prompt string, constrainOutputs []string) (*scoring.PromptResult, error) {
	m.callCount++

	if m.PromptFunc != nil {
		return m.PromptFunc(ctx, prompt, constrainOutputs)
	}

	// Default: a benign answer, so checks built on binary judgments pass
	response := "No"
	if len(constrainOutputs) > 0 && !containsFold(constrainOutputs, response) {
		response = constrainOutputs[0]
	}
	return &scoring.PromptResult{
		Response:             response,
		TrustworthinessScore: 0.9,
	}, nil
}

// CallCount returns the number of times Prompt was called.
func (m *MockPrompter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockPrompter) Reset() {
	m.callCount = 0
	m.PromptFunc = nil
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
