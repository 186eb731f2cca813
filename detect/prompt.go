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

import "fmt"

// FormatPrompt combines a user query and retrieved context into the prompt
// given to the scoring service. RAG applications should supply the same
// formatter their own LLM is prompted with.
type FormatPrompt func(query, context string) string

// DefaultFormatPrompt is the prompt formatter used when none is configured.
func DefaultFormatPrompt(query, context string) string {
	return fmt.Sprintf(
		"Using only information from the following Context, answer the following Query.\n\n"+
			"Context:\n%s\n\nQuery: %s",
		context, query)
}
