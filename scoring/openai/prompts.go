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


package openai

import (
	"fmt"
	"strings"
)

const evalSystemPrompt = `You grade AI assistant responses against a single quality criterion and return the result as JSON.

Output ONLY valid JSON. Do not include any preamble, explanation, greeting, or acknowledgment.
Start your response directly with the opening brace { and end with the closing brace }.
Your output must exactly follow this schema:

{
  "score": <number between 0.0 and 1.0>,
  "explanation": "<one or two sentences justifying the score>"
}

Rules:
- A score of 1.0 means the response fully satisfies the criterion; 0.0 means it completely fails it.
- Judge only the stated criterion, not overall quality.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

const trustworthinessCriteria = "Assess whether the AI Assistant Response is factually correct and fully supported " +
	"by the information in the prompt. Responses that contradict the prompt, invent unsupported details, " +
	"or answer with unfounded certainty are untrustworthy."

// buildEvalPrompt formats a single grading request for the model.
func buildEvalPrompt(criteria, prompt, response string) string {
	var b strings.Builder
	b.WriteString("Criterion: ")
	b.WriteString(criteria)
	b.WriteString("\n\nPrompt given to the AI Assistant:\n")
	b.WriteString(prompt)
	b.WriteString("\n\nAI Assistant Response:\n")
	b.WriteString(response)
	return b.String()
}

const answerSystemPrompt = `You answer questions and report how confident you are, as JSON.

Output ONLY valid JSON. Do not include any preamble, explanation, greeting, or acknowledgment.
Start your response directly with the opening brace { and end with the closing brace }.
Your output must exactly follow this schema:

{
  "answer": "<your answer>",
  "confidence": <number between 0.0 and 1.0>
}

Rules:
- The confidence value reflects how certain you are that your answer is correct.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildAnswerPrompt formats a prompter request, appending the output
// constraint when one is given.
func buildAnswerPrompt(prompt string, constrainOutputs []string) string {
	if len(constrainOutputs) == 0 {
		return prompt
	}
	return fmt.Sprintf("%s\n\nYour answer must be exactly one of: %s.",
		prompt, strings.Join(constrainOutputs, ", "))
}
