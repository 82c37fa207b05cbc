// Package study turns pasted study text into summaries and flashcard decks
// by prompting an LLM and permissively parsing the JSON it replies with.
package study

// Definition is a term the model pulled out of the study text, restated in
// its own words.
type Definition struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type SummaryResult struct {
	Summary     string       `json:"summary"`
	KeyPoints   []string     `json:"key_points"`
	Definitions []Definition `json:"definitions"`
}

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Deck is one session's flashcards, in model output order.
type Deck []Flashcard
