package kb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKB is an in-memory KnowledgeBase keyed by exact question text.
type fakeKB struct {
	entries  map[string]*Entry
	addCalls int
	queryErr error
	addErr   error
}

func newFakeKB() *fakeKB {
	return &fakeKB{entries: make(map[string]*Entry)}
}

func (f *fakeKB) Query(ctx context.Context, question string) (*Entry, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.entries[question], nil
}

func (f *fakeKB) AddQuestion(ctx context.Context, question string) (*Entry, error) {
	f.addCalls++
	if f.addErr != nil {
		return nil, f.addErr
	}
	entry := &Entry{
		ID:        question,
		Question:  question,
		CreatedAt: time.Now().UTC(),
	}
	f.entries[question] = entry
	return entry, nil
}

func (f *fakeKB) Close() error {
	return nil
}

// fakeRemediationKB adds RemediationWriter on top of fakeKB.
type fakeRemediationKB struct {
	*fakeKB
}

func (f *fakeRemediationKB) AddRemediation(ctx context.Context, question string, answer *string) (*Entry, error) {
	now := time.Now().UTC()
	entry := &Entry{
		ID:        question,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
	}
	if answer != nil {
		entry.AnswerAt = &now
	}
	f.entries[question] = entry
	return entry, nil
}

func TestNewGateway(t *testing.T) {
	t.Run("nil knowledge base rejected", func(t *testing.T) {
		g, err := NewGateway(nil)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrKnowledgeBaseRequired)
	})

	t.Run("valid", func(t *testing.T) {
		g, err := NewGateway(newFakeKB())
		require.NoError(t, err)
		assert.NotNil(t, g)
	})
}

func TestGatewayQuery(t *testing.T) {
	const fallback = "I cannot answer that."

	t.Run("answered entry returns expert answer", func(t *testing.T) {
		kb := newFakeKB()
		answer := "The limit is 100 km/h."
		kb.entries["What is the speed limit?"] = &Entry{
			ID:       "e1",
			Question: "What is the speed limit?",
			Answer:   &answer,
		}
		g, err := NewGateway(kb)
		require.NoError(t, err)

		got, entry, err := g.Query(context.Background(), "What is the speed limit?", fallback, false)
		require.NoError(t, err)
		assert.Equal(t, answer, got)
		require.NotNil(t, entry)
		assert.True(t, entry.Answered())
		assert.Equal(t, 0, kb.addCalls)
	})

	t.Run("unanswered entry returns fallback without re-adding", func(t *testing.T) {
		kb := newFakeKB()
		kb.entries["pending question"] = &Entry{ID: "e2", Question: "pending question"}
		g, err := NewGateway(kb)
		require.NoError(t, err)

		got, entry, err := g.Query(context.Background(), "pending question", fallback, false)
		require.NoError(t, err)
		assert.Equal(t, fallback, got)
		require.NotNil(t, entry)
		assert.False(t, entry.Answered())
		assert.Equal(t, 0, kb.addCalls)
	})

	t.Run("missing entry registers the question", func(t *testing.T) {
		kb := newFakeKB()
		g, err := NewGateway(kb)
		require.NoError(t, err)

		got, entry, err := g.Query(context.Background(), "new question", fallback, false)
		require.NoError(t, err)
		assert.Equal(t, fallback, got)
		require.NotNil(t, entry)
		assert.Nil(t, entry.Answer)
		assert.Equal(t, 1, kb.addCalls)
	})

	t.Run("read-only never mutates", func(t *testing.T) {
		kb := newFakeKB()
		g, err := NewGateway(kb)
		require.NoError(t, err)

		got, entry, err := g.Query(context.Background(), "new question", fallback, true)
		require.NoError(t, err)
		assert.Equal(t, fallback, got)
		assert.Nil(t, entry)
		assert.Equal(t, 0, kb.addCalls)
		assert.Empty(t, kb.entries)
	})

	t.Run("empty question rejected", func(t *testing.T) {
		g, err := NewGateway(newFakeKB())
		require.NoError(t, err)

		_, _, err = g.Query(context.Background(), "", fallback, false)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})

	t.Run("backend errors propagate", func(t *testing.T) {
		kb := newFakeKB()
		kb.queryErr = errors.New("connection reset")
		g, err := NewGateway(kb)
		require.NoError(t, err)

		_, _, err = g.Query(context.Background(), "any", fallback, false)
		assert.ErrorIs(t, err, kb.queryErr)
	})

	t.Run("add errors propagate", func(t *testing.T) {
		kb := newFakeKB()
		kb.addErr = errors.New("write refused")
		g, err := NewGateway(kb)
		require.NoError(t, err)

		_, _, err = g.Query(context.Background(), "new question", fallback, false)
		assert.ErrorIs(t, err, kb.addErr)
	})
}

func TestGatewayAddQuestion(t *testing.T) {
	t.Run("registers the question", func(t *testing.T) {
		kb := newFakeKB()
		g, err := NewGateway(kb)
		require.NoError(t, err)

		entry, err := g.AddQuestion(context.Background(), "a question")
		require.NoError(t, err)
		assert.Equal(t, "a question", entry.Question)
		assert.Equal(t, 1, kb.addCalls)
	})

	t.Run("empty question rejected", func(t *testing.T) {
		g, err := NewGateway(newFakeKB())
		require.NoError(t, err)

		_, err = g.AddQuestion(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})
}

func TestGatewayAddRemediation(t *testing.T) {
	t.Run("unsupported backend", func(t *testing.T) {
		g, err := NewGateway(newFakeKB())
		require.NoError(t, err)

		answer := "an answer"
		_, err = g.AddRemediation(context.Background(), "a question", &answer)
		assert.ErrorIs(t, err, ErrRemediationUnsupported)
	})

	t.Run("supported backend", func(t *testing.T) {
		kb := &fakeRemediationKB{fakeKB: newFakeKB()}
		g, err := NewGateway(kb)
		require.NoError(t, err)

		answer := "an answer"
		entry, err := g.AddRemediation(context.Background(), "a question", &answer)
		require.NoError(t, err)
		assert.True(t, entry.Answered())
		assert.NotNil(t, entry.AnswerAt)
	})

	t.Run("empty question rejected", func(t *testing.T) {
		kb := &fakeRemediationKB{fakeKB: newFakeKB()}
		g, err := NewGateway(kb)
		require.NoError(t, err)

		_, err = g.AddRemediation(context.Background(), "", nil)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})
}

func TestEntryAnswered(t *testing.T) {
	answer := "something"
	empty := ""

	assert.False(t, (*Entry)(nil).Answered())
	assert.False(t, (&Entry{}).Answered())
	assert.False(t, (&Entry{Answer: &empty}).Answered())
	assert.True(t, (&Entry{Answer: &answer}).Answered())
}
