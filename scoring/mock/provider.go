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

import "github.com/poiesic/remedy/scoring"

// MockProvider is a test double for scoring.Provider.
// It aggregates mock evaluator and prompter instances.
type MockProvider struct {
	evaluator *MockEvaluator
	prompter  *MockPrompter
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns scoring.Provider interface for consistency with production
// constructors. Use GetMockEvaluator()/GetMockPrompter() to access concrete
// types for test assertions.
func NewMockProvider() scoring.Provider {
	return &MockProvider{
		evaluator: NewMockEvaluator(),
		prompter:  NewMockPrompter(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock
// services. This allows full control over the behavior of each service.
func NewMockProviderWithServices(evaluator *MockEvaluator, prompter *MockPrompter) scoring.Provider {
	return &MockProvider{
		evaluator: evaluator,
		prompter:  prompter,
	}
}

// Evaluator returns the mock evaluator.
func (p *MockProvider) Evaluator() scoring.Evaluator {
	return p.evaluator
}

// Prompter returns the mock prompter.
func (p *MockProvider) Prompter() scoring.Prompter {
	return p.prompter
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEvaluator returns the underlying mock evaluator for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockEvaluator() *MockEvaluator {
	return p.evaluator
}

// GetMockPrompter returns the underlying mock prompter for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockPrompter() *MockPrompter {
	return p.prompter
}
