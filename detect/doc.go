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


// Package detect implements bad-response detection for RAG applications.
//
// Detection runs in one of two modes:
//
//   - Score thresholding: quality scores from a scoring.Evaluator are
//     compared against per-metric Thresholds (ApplyThresholds,
//     ThresholdedScores).
//   - Check pipeline: a Checker runs an ordered series of independent
//     checks (fallback similarity, untrustworthiness, unhelpfulness) and
//     short-circuits at the first failure.
//
// Both modes treat a missing score or a missing capability as "cannot
// tell", never as a failure. A response is bad only when a check with all
// of its inputs available says so.
//
// # Thread Safety
//
// Thresholds, Config, and Checker are immutable after construction and safe
// for concurrent use.
package detect
