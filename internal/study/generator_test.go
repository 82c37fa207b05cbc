package study

import (
	"context"
	"errors"
	"testing"

	"github.com/jusunglee/studydeck/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubClient) Complete(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestFlashcardsFencedReply(t *testing.T) {
	// A model that wraps its JSON in a markdown fence must still produce a
	// clean deck.
	stub := &stubClient{
		reply: "```json\n{\"flashcards\":[{\"question\":\"What does photosynthesis convert?\",\"answer\":\"Light to energy.\"}]}\n```",
	}
	g := NewGenerator(stub)

	deck, err := g.Flashcards(context.Background(), "Photosynthesis converts light to energy.")
	require.NoError(t, err)
	require.Len(t, deck, 1)
	assert.Equal(t, "What does photosynthesis convert?", deck[0].Question)
	assert.Equal(t, "Light to energy.", deck[0].Answer)

	assert.Contains(t, stub.lastPrompt, "Photosynthesis converts light to energy.")
	assert.Contains(t, stub.lastPrompt, `"flashcards"`)
}

func TestSummarizeEmbedsTextInPrompt(t *testing.T) {
	stub := &stubClient{reply: `{"summary":"short","key_points":[],"definitions":[]}`}
	g := NewGenerator(stub)

	result, err := g.Summarize(context.Background(), "The mitochondria is the powerhouse of the cell.")
	require.NoError(t, err)
	assert.Equal(t, "short", result.Summary)
	assert.Contains(t, stub.lastPrompt, "The mitochondria is the powerhouse of the cell.")
	assert.Contains(t, stub.lastPrompt, `"key_points"`)
}

func TestSummarizePropagatesClientError(t *testing.T) {
	wantErr := errors.New("boom")
	g := NewGenerator(&stubClient{err: wantErr})

	_, err := g.Summarize(context.Background(), "text")
	assert.ErrorIs(t, err, wantErr)
}

func TestFlashcardsNoJSONInReply(t *testing.T) {
	g := NewGenerator(&stubClient{reply: "Sorry, I can't help with that."})

	_, err := g.Flashcards(context.Background(), "text")
	assert.ErrorIs(t, err, llm.ErrNoJSONObject)
}

func TestFlashcardsInvalidJSONInReply(t *testing.T) {
	g := NewGenerator(&stubClient{reply: `{"flashcards": [oops]}`})

	_, err := g.Flashcards(context.Background(), "text")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}
