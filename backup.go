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


package remedy

import (
	"context"
	"log/slog"

	"github.com/poiesic/remedy/detect"
	"github.com/poiesic/remedy/kb"
)

// BackupHandler is invoked when an expert answer replaces a flagged
// response, before the answer is returned to the caller. Typical uses are
// logging or updating conversational state so the replacement is visible
// downstream.
type BackupHandler func(ctx context.Context, expertAnswer string) error

// Backup wraps a multi-check detector and a knowledge base into a
// fall-back pipeline: flagged responses are swapped for an expert answer
// when one exists, otherwise passed through unchanged.
type Backup struct {
	gateway        *kb.Gateway
	checker        *detect.Checker
	handler        BackupHandler
	fallbackAnswer string
	logger         *slog.Logger
}

// BackupOption is a functional option for configuring a Backup.
type BackupOption func(*Backup) error

// WithBackupHandler sets the callback invoked when an expert answer is
// served in place of the original response.
func WithBackupHandler(handler BackupHandler) BackupOption {
	return func(b *Backup) error {
		b.handler = handler
		return nil
	}
}

// WithBackupFallbackAnswer sets the answer returned by the knowledge base
// lookup when the question has no expert answer yet. Default is empty,
// which makes Run fall through to the original response.
func WithBackupFallbackAnswer(answer string) BackupOption {
	return func(b *Backup) error {
		b.fallbackAnswer = answer
		return nil
	}
}

// WithBackupLogger sets a custom logger.
// Default is slog.Default().
func WithBackupLogger(logger *slog.Logger) BackupOption {
	return func(b *Backup) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBackup creates a Backup over the given knowledge base and checker.
func NewBackup(knowledgeBase kb.KnowledgeBase, checker *detect.Checker, opts ...BackupOption) (*Backup, error) {
	if knowledgeBase == nil {
		return nil, ErrKnowledgeBaseRequired
	}
	if checker == nil {
		return nil, ErrCheckerRequired
	}

	gateway, err := kb.NewGateway(knowledgeBase)
	if err != nil {
		return nil, err
	}

	b := &Backup{
		gateway: gateway,
		checker: checker,
		logger:  slog.Default().With("component", "backup"),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Run screens the response through the checker and returns the text the
// caller should serve: the original response when it passes, the expert
// answer when it fails and one exists, or the original response again when
// the knowledge base has nothing better. The boolean reports whether a
// replacement happened.
func (b *Backup) Run(ctx context.Context, response, query, contextText string) (string, bool, error) {
	verdict, err := b.checker.IsBadResponse(ctx, response, query, contextText)
	if err != nil {
		return "", false, err
	}
	if !verdict.Fails() {
		return response, false, nil
	}
	b.logger.Debug("response failed checks", "check", failedCheck(verdict))

	answer, _, err := b.gateway.Query(ctx, query, b.fallbackAnswer, false)
	if err != nil {
		return "", false, err
	}
	if answer == "" || answer == response {
		return response, false, nil
	}

	if b.handler != nil {
		if err := b.handler(ctx, answer); err != nil {
			return "", false, err
		}
	}
	return answer, true, nil
}

func failedCheck(verdict *detect.AggregateResult) string {
	for _, result := range verdict.Results {
		if result.Fails() {
			return string(result.Name)
		}
	}
	return string(verdict.Name)
}
