package domain

import (
	"context"
	"fmt"
)

// Role is the author of a chat message sent to the LLM
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// ChatMessage is a single entry of a chat-completion request
type ChatMessage struct {
	Role    Role
	Content string
}

// SummaryType selects the shape of a generated summary
type SummaryType string

const (
	SummaryShort        SummaryType = "short"
	SummaryBulletPoints SummaryType = "bullet_points"
	SummaryDetailed     SummaryType = "detailed"
)

// SummaryTypes lists the accepted summary types in display order
var SummaryTypes = []SummaryType{SummaryShort, SummaryBulletPoints, SummaryDetailed}

func (t SummaryType) Valid() bool {
	switch t {
	case SummaryShort, SummaryBulletPoints, SummaryDetailed:
		return true
	}
	return false
}

// Difficulty is the cognitive demand of a generated quiz
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CardType is the kind of flashcards requested
type CardType string

const (
	CardDefinition CardType = "definition"
	CardConcept    CardType = "concept"
	CardFact       CardType = "fact"
	CardMixed      CardType = "mixed"
)

var CardTypes = []CardType{CardDefinition, CardConcept, CardFact, CardMixed}

func (c CardType) Valid() bool {
	switch c {
	case CardDefinition, CardConcept, CardFact, CardMixed:
		return true
	}
	return false
}

// SummaryRequest carries the inputs of a summary generation
type SummaryRequest struct {
	Content string
	Type    SummaryType
	Subject string // optional
}

// QuizRequest carries the inputs of a quiz generation
type QuizRequest struct {
	Content      string
	NumQuestions int
	Subject      string
	Difficulty   Difficulty
}

// FlashcardRequest carries the inputs of a flashcard generation
type FlashcardRequest struct {
	Content  string
	NumCards int
	Subject  string
	CardType CardType
}

// Summary is a generated summary with topic tags
type Summary struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// QuizQuestion is a single multiple-choice question.
// CorrectAnswer is expected to equal one of Options but this is not enforced.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is an ordered list of questions
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// Flashcard is a two-sided study card
type Flashcard struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category,omitempty"`
}

// FlashcardSet is an ordered list of flashcards
type FlashcardSet struct {
	Flashcards []Flashcard `json:"flashcards"`
}

// PassingScore is the minimum percentage for a quiz attempt to pass
const PassingScore = 60.0

// AnswerCheckResult is the outcome of grading a quiz attempt
type AnswerCheckResult struct {
	Score        float64
	CorrectCount int
	Total        int
	Feedback     string
	Suggestion   string
	Passed       bool
}

// ChatCompleter sends a message sequence to an LLM and returns the reply text
type ChatCompleter interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// TextExtractor pulls the text layer out of a document on disk
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// ParseSummaryType converts raw input into a SummaryType
func ParseSummaryType(s string) (SummaryType, error) {
	t := SummaryType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown summary type %q", s)
	}
	return t, nil
}

// ParseDifficulty converts raw input into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// ParseCardType converts raw input into a CardType
func ParseCardType(s string) (CardType, error) {
	c := CardType(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown card type %q", s)
	}
	return c, nil
}
