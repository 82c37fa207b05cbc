package study

import (
	"context"

	"github.com/jusunglee/studydeck/internal/llm"
)

// Generator runs the full pipeline for one piece of study text:
// prompt build -> LLM completion -> candidate JSON extraction -> parse.
type Generator struct {
	llm llm.Client
}

func NewGenerator(client llm.Client) *Generator {
	return &Generator{llm: client}
}

func (g *Generator) Summarize(ctx context.Context, text string) (SummaryResult, error) {
	content, err := g.llm.Complete(ctx, SummaryPrompt(text))
	if err != nil {
		return SummaryResult{}, err
	}
	jsonText, err := llm.CandidateJSON(content)
	if err != nil {
		return SummaryResult{}, err
	}
	return ParseSummary([]byte(jsonText))
}

func (g *Generator) Flashcards(ctx context.Context, text string) (Deck, error) {
	content, err := g.llm.Complete(ctx, FlashcardPrompt(text))
	if err != nil {
		return nil, err
	}
	jsonText, err := llm.CandidateJSON(content)
	if err != nil {
		return nil, err
	}
	return ParseFlashcards([]byte(jsonText))
}
