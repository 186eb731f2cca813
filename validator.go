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


// Package remedy detects and remediates bad responses in RAG applications.
//
// A Validator scores each AI response with a scoring provider, flags it
// against configurable thresholds, and, when the response is bad, looks up
// or logs the query in an expert knowledge base so a human-provided answer
// can be served instead.
package remedy

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/remedy/detect"
	"github.com/poiesic/remedy/kb"
	"github.com/poiesic/remedy/kb/codex"
	"github.com/poiesic/remedy/scoring"
)

// ValidateRequest carries the inputs for one validation.
type ValidateRequest struct {
	// Query is the user question that produced the response.
	Query string

	// Context is the text retrieved from the RAG knowledge base and given
	// to the LLM when generating the response.
	Context string

	// Response is the AI-generated answer under evaluation.
	Response string

	// Prompt optionally carries the exact prompt the LLM saw. When empty,
	// the prompt is built from Query and Context.
	Prompt string

	// FormPrompt optionally builds the prompt from Query and Context.
	// Cannot be combined with Prompt.
	FormPrompt detect.FormatPrompt

	// Metadata is free-form context attached to log records when the
	// response is flagged. It does not influence scoring.
	Metadata map[string]any
}

// ValidateResult is the structured verdict for one response.
type ValidateResult struct {
	// IsBadResponse is true when any evaluation metric fell below its
	// threshold.
	IsBadResponse bool

	// ExpertAnswer is the expert-provided answer from the knowledge base,
	// or nil when the response was good or no expert answer exists yet.
	ExpertAnswer *string

	// Label categorizes why the response was flagged. Empty for good
	// responses.
	Label string

	// EvalScores holds every metric's score and threshold verdict.
	EvalScores detect.ThresholdedScores
}

// Validator evaluates AI responses and remediates bad ones through an
// expert knowledge base. Safe for concurrent use; configuration is
// immutable after construction.
type Validator struct {
	gateway      *kb.Gateway
	provider     scoring.Provider
	thresholds   *detect.Thresholds
	formatPrompt detect.FormatPrompt
	lookupPool   *ants.Pool
	logger       *slog.Logger
}

// ValidatorOption is a functional option for configuring a Validator.
type ValidatorOption func(*Validator) error

// WithThresholds sets the per-metric detection thresholds.
// Default is detect.NewThresholds() defaults.
func WithThresholds(thresholds *detect.Thresholds) ValidatorOption {
	return func(v *Validator) error {
		if thresholds != nil {
			v.thresholds = thresholds
		}
		return nil
	}
}

// WithFormatPrompt sets the default prompt formatter applied when a
// request supplies neither Prompt nor FormPrompt.
func WithFormatPrompt(fn detect.FormatPrompt) ValidatorOption {
	return func(v *Validator) error {
		if fn == nil {
			return detect.ErrNilFormatPrompt
		}
		v.formatPrompt = fn
		return nil
	}
}

// WithConcurrentLookup makes Validate fire the knowledge-base lookup
// concurrently with scoring instead of sequentially after it. The two
// branches are independent reads; the question is still only registered
// after both complete and the verdict is bad.
func WithConcurrentLookup() ValidatorOption {
	return func(v *Validator) error {
		if v.lookupPool != nil {
			return nil
		}
		size := runtime.NumCPU() / 2
		if size < 1 {
			size = 1
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		v.lookupPool = pool
		return nil
	}
}

// WithValidatorLogger sets a custom logger.
// Default is slog.Default().
func WithValidatorLogger(logger *slog.Logger) ValidatorOption {
	return func(v *Validator) error {
		if logger == nil {
			logger = slog.Default()
		}
		v.logger = logger
		return nil
	}
}

// NewValidator creates a Validator over the given knowledge base and
// scoring provider. Configuration errors surface here, never at validate
// time.
func NewValidator(knowledgeBase kb.KnowledgeBase, provider scoring.Provider, opts ...ValidatorOption) (*Validator, error) {
	if knowledgeBase == nil {
		return nil, ErrKnowledgeBaseRequired
	}
	if provider == nil {
		return nil, ErrScoringProviderRequired
	}

	gateway, err := kb.NewGateway(knowledgeBase)
	if err != nil {
		return nil, err
	}

	thresholds, err := detect.NewThresholds()
	if err != nil {
		return nil, err
	}

	v := &Validator{
		gateway:      gateway,
		provider:     provider,
		thresholds:   thresholds,
		formatPrompt: detect.DefaultFormatPrompt,
		logger:       slog.Default().With("component", "validator"),
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			v.Close()
			return nil, err
		}
	}
	return v, nil
}

// NewValidatorFromAccessKey creates a Validator bound to the hosted Codex
// project identified by the access key.
func NewValidatorFromAccessKey(accessKey string, provider scoring.Provider, opts ...ValidatorOption) (*Validator, error) {
	project, err := codex.FromAccessKey(accessKey)
	if err != nil {
		return nil, err
	}
	return NewValidator(project, provider, opts...)
}

// Close releases the concurrent-lookup pool, if any. It does not close the
// knowledge base or scoring provider; their lifecycles belong to the
// caller.
func (v *Validator) Close() error {
	if v.lookupPool != nil {
		v.lookupPool.Release()
		v.lookupPool = nil
	}
	return nil
}

// Validate evaluates the response and, when it is flagged as bad, looks up
// an expert answer for the query, logging the query for expert review if
// none exists. Scoring or knowledge-base errors abort the call and
// propagate unmodified; no partial result is returned.
func (v *Validator) Validate(ctx context.Context, req ValidateRequest) (*ValidateResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if v.lookupPool != nil {
		return v.validateConcurrent(ctx, req)
	}

	result, err := v.score(ctx, req)
	if err != nil {
		return nil, err
	}
	if !result.IsBadResponse {
		return result, nil
	}

	_, entry, err := v.gateway.Query(ctx, req.Query, "", false)
	if err != nil {
		return nil, err
	}
	if entry.Answered() {
		result.ExpertAnswer = entry.Answer
	}
	return result, nil
}

// Detect is the side-effect-free subset of Validate: scoring only, no
// knowledge-base reads or writes. Intended for threshold tuning without
// polluting the expert question log.
func (v *Validator) Detect(ctx context.Context, req ValidateRequest) (*ValidateResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return v.score(ctx, req)
}

// validateConcurrent fans out the knowledge-base lookup while scoring
// runs, then joins. The lookup branch is read-only; registration happens
// only after the verdict is known.
func (v *Validator) validateConcurrent(ctx context.Context, req ValidateRequest) (*ValidateResult, error) {
	type lookup struct {
		entry *kb.Entry
		err   error
	}
	lookupCh := make(chan lookup, 1)

	err := v.lookupPool.Submit(func() {
		_, entry, err := v.gateway.Query(ctx, req.Query, "", true)
		lookupCh <- lookup{entry: entry, err: err}
	})
	if err != nil {
		return nil, err
	}

	result, scoreErr := v.score(ctx, req)
	looked := <-lookupCh

	if scoreErr != nil {
		return nil, scoreErr
	}
	if looked.err != nil {
		return nil, looked.err
	}
	if !result.IsBadResponse {
		return result, nil
	}

	entry := looked.entry
	if entry == nil {
		created, err := v.gateway.AddQuestion(ctx, req.Query)
		if err != nil {
			return nil, err
		}
		entry = created
	}
	if entry.Answered() {
		result.ExpertAnswer = entry.Answer
	}
	return result, nil
}

// score runs the evaluator and applies thresholds.
func (v *Validator) score(ctx context.Context, req ValidateRequest) (*ValidateResult, error) {
	prompt := req.Prompt
	if prompt == "" {
		format := req.FormPrompt
		if format == nil {
			format = v.formatPrompt
		}
		prompt = format(req.Query, req.Context)
	}

	scores, err := v.provider.Evaluator().Score(ctx, prompt, req.Response)
	if err != nil {
		return nil, err
	}

	thresholded := detect.ApplyThresholds(scores, v.thresholds)
	result := &ValidateResult{
		IsBadResponse: thresholded.IsBadResponse(),
		EvalScores:    thresholded,
	}
	if result.IsBadResponse {
		result.Label = thresholded.Label()
		v.logger.Debug("response flagged as bad", "label", result.Label, "metadata", req.Metadata)
	}
	return result, nil
}

func validateRequest(req ValidateRequest) error {
	if req.Query == "" {
		return ErrEmptyQuery
	}
	if req.Context == "" && req.Prompt == "" {
		return ErrEmptyContext
	}
	if req.Response == "" {
		return ErrEmptyResponse
	}
	if req.Prompt != "" && req.FormPrompt != nil {
		return ErrConflictingPromptOptions
	}
	return nil
}
