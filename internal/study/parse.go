package study

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrInvalidJSON = errors.New("model reply is not valid JSON")

// The parsers are deliberately permissive: models drift from the requested
// shape all the time, and a summary with a missing field is still worth
// showing. The only hard failure is a payload that does not parse at all.
// Fields that fail to decode keep their zero value; array elements that fail
// to decode are dropped.

func parseObject(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return obj, nil
}

func decodeString(raw json.RawMessage) string {
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}

func decodeElements(raw json.RawMessage) []json.RawMessage {
	var elems []json.RawMessage
	_ = json.Unmarshal(raw, &elems)
	return elems
}

// ParseSummary decodes a summary reply. Missing or mistyped fields default
// to empty rather than failing the parse.
func ParseSummary(data []byte) (SummaryResult, error) {
	obj, err := parseObject(data)
	if err != nil {
		return SummaryResult{}, err
	}

	result := SummaryResult{Summary: decodeString(obj["summary"])}

	result.KeyPoints = lo.FilterMap(decodeElements(obj["key_points"]), func(raw json.RawMessage, _ int) (string, bool) {
		var kp string
		if err := json.Unmarshal(raw, &kp); err != nil {
			return "", false
		}
		return kp, true
	})

	result.Definitions = lo.FilterMap(decodeElements(obj["definitions"]), func(raw json.RawMessage, _ int) (Definition, bool) {
		var def Definition
		if err := json.Unmarshal(raw, &def); err != nil {
			return Definition{}, false
		}
		return def, true
	})

	return result, nil
}

// ParseFlashcards decodes a flashcard reply into a Deck. Cards missing a
// question or answer keep an empty string for that field; elements that are
// not objects are dropped.
func ParseFlashcards(data []byte) (Deck, error) {
	obj, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	deck := lo.FilterMap(decodeElements(obj["flashcards"]), func(raw json.RawMessage, _ int) (Flashcard, bool) {
		var card Flashcard
		if err := json.Unmarshal(raw, &card); err != nil {
			return Flashcard{}, false
		}
		return card, true
	})

	return Deck(deck), nil
}
