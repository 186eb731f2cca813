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


package codex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/poiesic/remedy/kb"
)

// Project is a handle to one Codex project's knowledge base. It owns no
// client-side state beyond the project ID and an HTTP client.
type Project struct {
	client *Client
	id     string
}

var _ kb.KnowledgeBase = (*Project)(nil)
var _ kb.RemediationWriter = (*Project)(nil)

// entryPayload mirrors the API's entry representation.
type entryPayload struct {
	Entry *kb.Entry `json:"entry"`
}

// FromAccessKey resolves the project associated with a project-level access
// key and returns a handle to it.
//
// Returns kb.KnowledgeBase via the concrete *Project so callers can also
// reach AddRemediation.
func FromAccessKey(accessKey string, opts ...ClientOption) (*Project, error) {
	client, err := NewClient(accessKey, opts...)
	if err != nil {
		return nil, err
	}

	var resolved struct {
		ProjectID string `json:"project_id"`
	}
	if err := client.do(context.Background(), http.MethodGet, "/api/projects/id_from_access_key", nil, &resolved); err != nil {
		return nil, err
	}
	if resolved.ProjectID == "" {
		return nil, ErrMissingProject
	}

	return &Project{client: client, id: resolved.ProjectID}, nil
}

// NewProject creates a handle for a known project ID without verifying its
// existence remotely.
func NewProject(client *Client, projectID string) (*Project, error) {
	if client == nil {
		return nil, fmt.Errorf("codex: client is required")
	}
	if projectID == "" {
		return nil, ErrMissingProject
	}
	return &Project{client: client, id: projectID}, nil
}

// ID returns the project ID.
func (p *Project) ID() string {
	return p.id
}

// Query asks the service for an entry matching the question. The service
// matches by semantic similarity; (nil, nil) means nothing was close
// enough.
func (p *Project) Query(ctx context.Context, question string) (*kb.Entry, error) {
	if question == "" {
		return nil, kb.ErrEmptyQuestion
	}

	path := fmt.Sprintf("/api/projects/%s/entries/query?question=%s",
		url.PathEscape(p.id), url.QueryEscape(question))

	var payload entryPayload
	if err := p.client.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Entry, nil
}

// AddQuestion logs a new unanswered question in the project.
func (p *Project) AddQuestion(ctx context.Context, question string) (*kb.Entry, error) {
	return p.createEntry(ctx, question, nil)
}

// AddRemediation records a question with its expert-verified answer.
func (p *Project) AddRemediation(ctx context.Context, question string, answer *string) (*kb.Entry, error) {
	return p.createEntry(ctx, question, answer)
}

func (p *Project) createEntry(ctx context.Context, question string, answer *string) (*kb.Entry, error) {
	if question == "" {
		return nil, kb.ErrEmptyQuestion
	}

	body := struct {
		Question string  `json:"question"`
		Answer   *string `json:"answer,omitempty"`
	}{Question: question, Answer: answer}

	var payload entryPayload
	path := fmt.Sprintf("/api/projects/%s/entries", url.PathEscape(p.id))
	if err := p.client.do(ctx, http.MethodPost, path, body, &payload); err != nil {
		return nil, err
	}
	return payload.Entry, nil
}

// Close is a no-op; the underlying HTTP client needs no cleanup.
func (p *Project) Close() error {
	return nil
}
