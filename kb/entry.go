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


package kb

import "time"

// Entry is a question/answer record in a knowledge base. Entries are
// created when a question has no matching answer; a human expert supplies
// the answer asynchronously. Entries are never deleted by this library.
type Entry struct {
	// ID uniquely identifies the entry within its project.
	ID string `json:"id"`

	// Question is the logged user question.
	Question string `json:"question"`

	// Answer is the expert-provided answer, or nil while the question is
	// still pending.
	Answer *string `json:"answer,omitempty"`

	// CreatedAt is when the question was logged.
	CreatedAt time.Time `json:"created_at"`

	// AnswerAt is when the answer was provided, or nil while pending.
	AnswerAt *time.Time `json:"answer_at,omitempty"`
}

// Answered reports whether the entry carries an expert answer.
func (e *Entry) Answered() bool {
	return e != nil && e.Answer != nil && *e.Answer != ""
}
