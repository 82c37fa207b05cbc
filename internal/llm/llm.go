package llm

import (
	"context"
	"errors"
	"strings"
)

// Client is a text-completion backend. Complete sends a single user prompt
// and returns the assistant's reply text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var ErrNoJSONObject = errors.New("no JSON object found in response")

// CandidateJSON isolates the JSON object embedded in an LLM reply: the
// substring from the first '{' to the last '}' inclusive. Models routinely
// wrap their JSON in prose or ```json fences; only the outermost brace pair
// is trusted. The result may still fail to parse, that is the caller's
// problem.
func CandidateJSON(content string) (string, error) {
	first := strings.Index(content, "{")
	last := strings.LastIndex(content, "}")
	if first == -1 || last == -1 || last <= first {
		return "", ErrNoJSONObject
	}
	return content[first : last+1], nil
}
