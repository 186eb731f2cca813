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


// Package mock provides test double implementations of the scoring
// interfaces.
//
// The mocks allow tests to run without an external scoring service and
// enable controlled, deterministic behavior. Call counts are recorded so
// tests can assert that short-circuit logic avoided scoring calls entirely.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewMockProvider()
//	scores, err := provider.Evaluator().Score(ctx, prompt, response)
//
//	// Custom behavior injection
//	eval := mock.NewMockEvaluator()
//	eval.ScoreFunc = func(ctx context.Context, prompt, response string) (scoring.ScoreSet, error) {
//	    return scoring.ScoreSet{"trustworthiness": {Score: scoring.Float(0.2)}}, nil
//	}
//
//	// Check call counts
//	count := eval.CallCount()
//
// # Default Behavior
//
//   - MockEvaluator: returns high scores (0.9) for trustworthiness and
//     response helpfulness
//   - MockPrompter: answers the first constrained output (or "No") with
//     confidence 0.9
//   - MockProvider: aggregates mock evaluator and prompter
package mock
