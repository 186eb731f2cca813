package codex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/remedy/kb"
)

func TestNewClient(t *testing.T) {
	t.Run("empty access key rejected", func(t *testing.T) {
		c, err := NewClient("")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrAccessKeyRequired)
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := NewClient("sk-test-key")
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, c.baseURL)
	})

	t.Run("base URL trailing slash trimmed", func(t *testing.T) {
		c, err := NewClient("sk-test-key", WithBaseURL("http://localhost:8080/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", c.baseURL)
	})
}

func TestFromAccessKey(t *testing.T) {
	t.Run("resolves project ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/projects/id_from_access_key", r.URL.Path)
			assert.Equal(t, "Bearer sk-test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "remedy-go-sdk", r.Header.Get("X-Source"))
			assert.Equal(t, DefaultIntegrationType, r.Header.Get("X-Integration-Type"))
			assert.Equal(t, Version, r.Header.Get("X-Client-Library-Version"))

			json.NewEncoder(w).Encode(map[string]string{"project_id": "proj-42"})
		}))
		defer server.Close()

		project, err := FromAccessKey("sk-test-key", WithBaseURL(server.URL))
		require.NoError(t, err)
		assert.Equal(t, "proj-42", project.ID())
	})

	t.Run("rejected key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := FromAccessKey("sk-bad-key", WithBaseURL(server.URL))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := FromAccessKey("sk-unknown", WithBaseURL(server.URL))
		assert.ErrorIs(t, err, ErrMissingProject)
	})

	t.Run("empty project ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"project_id": ""})
		}))
		defer server.Close()

		_, err := FromAccessKey("sk-test-key", WithBaseURL(server.URL))
		assert.ErrorIs(t, err, ErrMissingProject)
	})
}

func newTestProject(t *testing.T, handler http.HandlerFunc) *Project {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("sk-test-key", WithBaseURL(server.URL))
	require.NoError(t, err)
	project, err := NewProject(client, "proj-42")
	require.NoError(t, err)
	return project
}

func TestProjectQuery(t *testing.T) {
	t.Run("match found", func(t *testing.T) {
		answer := "Returns are accepted within 30 days."
		project := newTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/projects/proj-42/entries/query", r.URL.Path)
			assert.Equal(t, "What is the refund policy?", r.URL.Query().Get("question"))

			json.NewEncoder(w).Encode(entryPayload{Entry: &kb.Entry{
				ID:       "entry-1",
				Question: "What is the refund policy?",
				Answer:   &answer,
			}})
		})

		entry, err := project.Query(context.Background(), "What is the refund policy?")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, entry.Answered())
		assert.Equal(t, answer, *entry.Answer)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		project := newTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(entryPayload{Entry: nil})
		})

		entry, err := project.Query(context.Background(), "Unmatched question?")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("empty question rejected", func(t *testing.T) {
		project := newTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		})

		_, err := project.Query(context.Background(), "")
		assert.ErrorIs(t, err, kb.ErrEmptyQuestion)
	})

	t.Run("server error surfaces status", func(t *testing.T) {
		project := newTestProject(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		})

		_, err := project.Query(context.Background(), "any question")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}

func TestProjectAddQuestion(t *testing.T) {
	project := newTestProject(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/projects/proj-42/entries", r.URL.Path)

		var body struct {
			Question string  `json:"question"`
			Answer   *string `json:"answer"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "How do I cancel my order?", body.Question)
		assert.Nil(t, body.Answer)

		json.NewEncoder(w).Encode(entryPayload{Entry: &kb.Entry{
			ID:       "entry-2",
			Question: body.Question,
		}})
	})

	entry, err := project.AddQuestion(context.Background(), "How do I cancel my order?")
	require.NoError(t, err)
	assert.Equal(t, "entry-2", entry.ID)
	assert.False(t, entry.Answered())
}

func TestProjectAddRemediation(t *testing.T) {
	answer := "Go to Orders and click Cancel."
	project := newTestProject(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Question string  `json:"question"`
			Answer   *string `json:"answer"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotNil(t, body.Answer)
		assert.Equal(t, answer, *body.Answer)

		json.NewEncoder(w).Encode(entryPayload{Entry: &kb.Entry{
			ID:       "entry-3",
			Question: body.Question,
			Answer:   body.Answer,
		}})
	})

	entry, err := project.AddRemediation(context.Background(), "How do I cancel my order?", &answer)
	require.NoError(t, err)
	assert.True(t, entry.Answered())
}

func TestNewProject(t *testing.T) {
	client, err := NewClient("sk-test-key")
	require.NoError(t, err)

	t.Run("nil client rejected", func(t *testing.T) {
		_, err := NewProject(nil, "proj-42")
		assert.Error(t, err)
	})

	t.Run("empty project ID rejected", func(t *testing.T) {
		_, err := NewProject(client, "")
		assert.ErrorIs(t, err, ErrMissingProject)
	})
}
