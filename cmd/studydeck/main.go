package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jusunglee/studydeck/internal/anthropic"
	"github.com/jusunglee/studydeck/internal/google"
	"github.com/jusunglee/studydeck/internal/llm"
	"github.com/jusunglee/studydeck/internal/logger"
	"github.com/jusunglee/studydeck/internal/openai"
	"github.com/jusunglee/studydeck/internal/session"
	"github.com/jusunglee/studydeck/internal/study"
	"github.com/jusunglee/studydeck/internal/viewer"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	logger.Init()

	fs := ff.NewFlagSet("studydeck")
	var (
		provider = fs.StringLong("provider", "openai", "LLM provider (openai, anthropic, google)")
		model    = fs.StringLong("model", "", "model identifier (provider default if empty)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	ctx := context.Background()

	client, err := newLLMClient(ctx, *provider, *model)
	if err != nil {
		return err
	}

	console := session.NewConsole(os.Stdin, os.Stdout)

	choice := console.ReadChoice()
	text, err := console.ReadStudyText()
	if errors.Is(err, session.ErrNoInput) {
		fmt.Println("No text entered. Exiting.")
		return nil
	}
	if err != nil {
		return err
	}

	gen := study.NewGenerator(client)

	if choice.IncludesSummary() {
		slog.Debug("requesting summary", "provider", *provider, "chars", len(text))
		result, err := gen.Summarize(ctx, text)
		if err != nil {
			return fmt.Errorf("summarizing text: %w", err)
		}
		console.PrintSummary(result)
	}

	if choice.IncludesFlashcards() {
		slog.Debug("requesting flashcards", "provider", *provider, "chars", len(text))
		deck, err := gen.Flashcards(ctx, text)
		if err != nil {
			return fmt.Errorf("generating flashcards: %w", err)
		}
		if err := viewer.Run(deck); err != nil {
			return err
		}
	}

	return nil
}

func newLLMClient(ctx context.Context, provider, model string) (llm.Client, error) {
	switch provider {
	case "openai":
		return openai.NewClient(os.Getenv("OPENAI_API_KEY"), openai.Model(model))

	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, errors.New("ANTHROPIC_API_KEY is not set")
		}
		return anthropic.NewClient(apiKey, anthropic.Model(model)), nil

	case "google":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("GEMINI_API_KEY is not set")
		}
		return google.NewClient(ctx, apiKey, google.Model(model))

	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
