// Package prompt turns study content and task parameters into the chat
// messages sent to the LLM. Every function here is pure.
package prompt

import (
	"fmt"

	"quizforge/internal/domain"
)

// SystemMessage is the fixed role prompt sent ahead of every task.
const SystemMessage = "You are QuizForge AI, an expert educational assistant specialized in creating summaries and quizzes from academic content. Always provide accurate, well-structured responses."

// Content limits in characters, applied before the text is embedded.
const (
	SummaryContentLimit   = 15000
	QuizContentLimit      = 12000
	FlashcardContentLimit = 12000
	TopicContentLimit     = 5000
)

const ellipsis = "..."

// Truncate keeps the first max characters of content and appends an
// ellipsis when anything was cut. Content at or under the limit is returned
// unchanged.
func Truncate(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + ellipsis
}

func head(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max])
}

func messages(user string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: SystemMessage},
		{Role: domain.RoleUser, Content: user},
	}
}

var summaryTemplates = map[domain.SummaryType]string{
	domain.SummaryShort: `Create a concise summary of the following text%s.
Keep it to 2-3 paragraphs maximum, focusing on the most important points.

Text: %s

Provide your response in this JSON format:
{
    "content": "your summary here",
    "tags": ["key", "topic", "tags"]
}`,
	domain.SummaryBulletPoints: `Create a bullet-point summary of the following text%s.
Organize key points into clear, actionable bullet points with sub-points where needed.

Text: %s

Provide your response in this JSON format:
{
    "content": "• Main point 1\n  - Sub-point\n• Main point 2\n  - Sub-point",
    "tags": ["key", "topic", "tags"]
}`,
	domain.SummaryDetailed: `Create a comprehensive, detailed summary of the following text%s.
Include all major concepts, methodologies, findings, and conclusions.
Organize into clear sections with headings.

Text: %s

Provide your response in this JSON format:
{
    "content": "your detailed summary with sections and headings",
    "tags": ["key", "topic", "tags"]
}`,
}

// Summary builds the messages for a summary of the requested type.
func Summary(req domain.SummaryRequest) ([]domain.ChatMessage, error) {
	tmpl, ok := summaryTemplates[req.Type]
	if !ok {
		return nil, fmt.Errorf("unknown summary type %q", req.Type)
	}

	subjectContext := ""
	if req.Subject != "" {
		subjectContext = fmt.Sprintf(" in the field of %s", req.Subject)
	}

	content := Truncate(req.Content, SummaryContentLimit)
	return messages(fmt.Sprintf(tmpl, subjectContext, content)), nil
}

var difficultyInstructions = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "Focus on basic concepts, definitions, and straightforward facts. Avoid complex reasoning.",
	domain.DifficultyMedium: "Include some analysis and application questions. Mix factual and conceptual questions.",
	domain.DifficultyHard:   "Focus on critical thinking, analysis, synthesis, and complex problem-solving.",
}

const quizTemplate = `Create a %[1]s level quiz with %[2]d multiple-choice questions based on the following %[3]s content.

Difficulty level: %[1]s
Instructions: %[4]s

Content: %[5]s

For each question:
1. Create a clear, specific question
2. Provide 4 answer options (A, B, C, D)
3. Mark the correct answer
4. Optionally provide a brief explanation

Provide your response in this JSON format:
{
    "questions": [
        {
            "question": "What is...?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": "Option B",
            "explanation": "Brief explanation of why this is correct"
        }
    ]
}

Ensure questions are directly based on the provided content and test understanding rather than memorization.`

// Quiz builds the messages for a multiple-choice quiz.
func Quiz(req domain.QuizRequest) ([]domain.ChatMessage, error) {
	instruction, ok := difficultyInstructions[req.Difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", req.Difficulty)
	}

	content := Truncate(req.Content, QuizContentLimit)
	return messages(fmt.Sprintf(quizTemplate, req.Difficulty, req.NumQuestions, req.Subject, instruction, content)), nil
}

var cardTypeInstructions = map[domain.CardType]string{
	domain.CardDefinition: "Create cards with terms/concepts on the front and their definitions on the back.",
	domain.CardConcept:    "Create cards with conceptual questions on the front and explanations on the back.",
	domain.CardFact:       "Create cards with factual questions on the front and specific answers on the back.",
	domain.CardMixed:      "Create a mix of definitions, concepts, and factual questions.",
}

const flashcardTemplate = `Create %d flashcards based on the following %s content.

Card type: %s
Instructions: %s

Content: %s

For each flashcard:
1. Front: Question, term, or concept
2. Back: Answer, definition, or explanation
3. Keep both sides concise but informative
4. Ensure the back fully answers what's on the front

Provide your response in this JSON format:
{
    "flashcards": [
        {
            "front": "What is photosynthesis?",
            "back": "The process by which plants convert light energy into chemical energy",
            "category": "Biology"
        }
    ]
}

Make sure flashcards are directly based on the provided content and test key concepts.`

// Flashcards builds the messages for a flashcard set.
func Flashcards(req domain.FlashcardRequest) ([]domain.ChatMessage, error) {
	instruction, ok := cardTypeInstructions[req.CardType]
	if !ok {
		return nil, fmt.Errorf("unknown card type %q", req.CardType)
	}

	content := Truncate(req.Content, FlashcardContentLimit)
	return messages(fmt.Sprintf(flashcardTemplate, req.NumCards, req.Subject, req.CardType, instruction, content)), nil
}

const topicTemplate = `Analyze the following text and extract 5-8 key topics or themes.
Return only the topics as a comma-separated list.

Text: %s...

Topics:`

// Topics builds the messages for a comma-separated topic list. The reply is
// plain text, not JSON.
func Topics(content string) []domain.ChatMessage {
	return messages(fmt.Sprintf(topicTemplate, head(content, TopicContentLimit)))
}
