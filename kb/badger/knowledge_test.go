package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/remedy/kb"
)

func newTestKB(t *testing.T) *KnowledgeBase {
	t.Helper()
	k, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { k.Close() })
	return k
}

func TestAddQuestionAndQuery(t *testing.T) {
	k := newTestKB(t)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		created, err := k.AddQuestion(ctx, "What is the refund policy?")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "What is the refund policy?", created.Question)
		assert.Nil(t, created.Answer)
		assert.False(t, created.CreatedAt.IsZero())

		found, err := k.Query(ctx, "What is the refund policy?")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.False(t, found.Answered())
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		found, err := k.Query(ctx, "Never asked before?")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("lookup normalizes case and whitespace", func(t *testing.T) {
		_, err := k.AddQuestion(ctx, "How do I reset my password?")
		require.NoError(t, err)

		found, err := k.Query(ctx, "  HOW DO I RESET MY PASSWORD?  ")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "How do I reset my password?", found.Question)
	})

	t.Run("re-adding returns existing entry unchanged", func(t *testing.T) {
		first, err := k.AddQuestion(ctx, "Is parking available?")
		require.NoError(t, err)

		second, err := k.AddQuestion(ctx, "Is parking available?")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)
	})

	t.Run("empty question rejected", func(t *testing.T) {
		_, err := k.AddQuestion(ctx, "")
		assert.ErrorIs(t, err, kb.ErrEmptyQuestion)

		_, err = k.Query(ctx, "")
		assert.ErrorIs(t, err, kb.ErrEmptyQuestion)
	})
}

func TestAddRemediation(t *testing.T) {
	k := newTestKB(t)
	ctx := context.Background()

	t.Run("answers a pending question in place", func(t *testing.T) {
		pending, err := k.AddQuestion(ctx, "What are the store hours?")
		require.NoError(t, err)

		answer := "Open 9am to 6pm, Monday through Saturday."
		remediated, err := k.AddRemediation(ctx, "What are the store hours?", &answer)
		require.NoError(t, err)

		assert.Equal(t, pending.ID, remediated.ID)
		assert.Equal(t, pending.CreatedAt, remediated.CreatedAt)
		assert.True(t, remediated.Answered())
		require.NotNil(t, remediated.AnswerAt)

		found, err := k.Query(ctx, "What are the store hours?")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Answered())
		assert.Equal(t, answer, *found.Answer)
	})

	t.Run("creates answered entry directly", func(t *testing.T) {
		answer := "Yes, international shipping is available."
		entry, err := k.AddRemediation(ctx, "Do you ship internationally?", &answer)
		require.NoError(t, err)
		assert.True(t, entry.Answered())
	})

	t.Run("overwrites a previous answer", func(t *testing.T) {
		oldAnswer := "No."
		_, err := k.AddRemediation(ctx, "Is there a free tier?", &oldAnswer)
		require.NoError(t, err)

		newAnswer := "Yes, up to 100 requests per day."
		_, err = k.AddRemediation(ctx, "Is there a free tier?", &newAnswer)
		require.NoError(t, err)

		found, err := k.Query(ctx, "Is there a free tier?")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, newAnswer, *found.Answer)
	})
}

func TestClosedKnowledgeBase(t *testing.T) {
	k, err := NewMemory()
	require.NoError(t, err)
	require.NoError(t, k.Close())

	ctx := context.Background()

	_, err = k.Query(ctx, "anything")
	assert.ErrorIs(t, err, kb.ErrStorageClosed)

	_, err = k.AddQuestion(ctx, "anything")
	assert.ErrorIs(t, err, kb.ErrStorageClosed)
}

func TestEntryID(t *testing.T) {
	a := entryID("What is the speed limit?")
	b := entryID("  what IS the speed limit?  ")
	c := entryID("A different question entirely")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
