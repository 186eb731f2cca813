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

import "errors"

var (
	// ErrInvalidThreshold indicates a threshold value outside [0,1] or not
	// a valid number.
	ErrInvalidThreshold = errors.New("threshold must be a number between 0 and 1")

	// ErrEmptyMetricName indicates a threshold was configured without a
	// metric name.
	ErrEmptyMetricName = errors.New("metric name cannot be empty")

	// ErrEmptyFallbackAnswer indicates the fallback answer is empty.
	ErrEmptyFallbackAnswer = errors.New("fallback answer cannot be empty")

	// ErrNilFormatPrompt indicates the prompt formatter is nil.
	ErrNilFormatPrompt = errors.New("format prompt function cannot be nil")
)
