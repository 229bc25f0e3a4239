package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quizforge/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// MaxTopics caps the number of topics kept from a topic-extraction reply.
const MaxTopics = 8

// ErrNoJSONObject is reported when a reply holds no '{'...'}' span.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// Result is the outcome of parsing a reply. Degraded results carry the
// fallback payload in Value and the parse failure in Reason.
type Result[T any] struct {
	Value    T
	Degraded bool
	Reason   error
}

func accepted[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func degraded[T any](v T, reason error) Result[T] {
	return Result[T]{Value: v, Degraded: true, Reason: reason}
}

// decode runs the extract, decode and validate stages and unmarshals the
// accepted candidate into out.
func decode(raw string, schema *jsonschema.Schema, out any) error {
	candidate, found := ExtractJSONObject(StripThinking(raw))
	if !found {
		return ErrNoJSONObject
	}

	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("unexpected shape: %w", err)
	}
	if err := json.Unmarshal([]byte(candidate), out); err != nil {
		return fmt.Errorf("map JSON: %w", err)
	}
	return nil
}

// ParseSummary reads {"content", "tags"} from raw. On failure the reply,
// minus any reasoning block, becomes the summary content with generic tags.
func ParseSummary(raw string) Result[domain.Summary] {
	var summary domain.Summary
	if err := decode(raw, summarySchema, &summary); err != nil {
		return degraded(FallbackSummary(StripThinking(raw)), err)
	}
	if summary.Tags == nil {
		summary.Tags = []string{}
	}
	return accepted(summary)
}

// ParseQuiz reads {"questions": [...]} from raw and keeps at most limit
// questions. Fewer questions than requested are accepted as is.
func ParseQuiz(raw string, limit int) Result[domain.Quiz] {
	var quiz domain.Quiz
	if err := decode(raw, quizSchema, &quiz); err != nil {
		return degraded(FallbackQuiz(), err)
	}
	quiz.Questions = clamp(quiz.Questions, limit)
	return accepted(quiz)
}

// ParseFlashcards reads {"flashcards": [...]} from raw and keeps at most
// limit cards.
func ParseFlashcards(raw string, limit int, subject string) Result[domain.FlashcardSet] {
	var set domain.FlashcardSet
	if err := decode(raw, flashcardSchema, &set); err != nil {
		return degraded(FallbackFlashcards(subject), err)
	}
	set.Flashcards = clamp(set.Flashcards, limit)
	return accepted(set)
}

// ParseTopics splits a comma-separated reply into at most MaxTopics trimmed
// entries.
func ParseTopics(raw string) []string {
	parts := strings.Split(StripThinking(raw), ",")
	topics := make([]string, 0, min(len(parts), MaxTopics))
	for _, p := range parts {
		if len(topics) == MaxTopics {
			break
		}
		topics = append(topics, strings.TrimSpace(p))
	}
	return topics
}

func clamp[T any](items []T, limit int) []T {
	if items == nil {
		return []T{}
	}
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
