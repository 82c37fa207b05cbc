package study

const summaryTemplate = `You are an AI study assistant.

TASK:
1. Read the following text.
2. Write a concise summary (150-250 words) in simple language.
3. List 3-5 key points.
4. If there are definitions, include them in your own words.

Return ONLY valid JSON with this structure:
{
  "summary": "string",
  "key_points": ["string", "string"],
  "definitions": [
    {"term": "string", "definition": "string"}
  ]
}

TEXT:
`

const flashcardTemplate = `You are an AI that creates study flashcards.

Given the TEXT below, create 10-20 flashcards that help a student study.

Rules:
- Questions should be clear and specific.
- Answers should be brief (1-3 sentences).
- Mix definitions, concepts, and reasoning questions.

Return ONLY valid JSON with this structure:
{
  "flashcards": [
    {"question": "string", "answer": "string"}
  ]
}

TEXT:
`

// SummaryPrompt builds the summarization prompt. The cardinality hints and
// the JSON shape are advisory to the model; the parsers never assume they
// were honored.
func SummaryPrompt(text string) string {
	return summaryTemplate + text
}

// FlashcardPrompt builds the flashcard-generation prompt.
func FlashcardPrompt(text string) string {
	return flashcardTemplate + text
}
