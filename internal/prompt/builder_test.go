package prompt

import (
	"strings"
	"testing"

	"quizforge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    string
	}{
		{name: "under limit", content: "abc", max: 5, want: "abc"},
		{name: "at limit", content: "abcde", max: 5, want: "abcde"},
		{name: "over limit", content: "abcdef", max: 5, want: "abcde..."},
		{name: "counts characters not bytes", content: "héllo wörld", max: 5, want: "héllo..."},
		{name: "empty", content: "", max: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.content, tt.max))
		})
	}
}

func userMessage(t *testing.T, msgs []domain.ChatMessage) string {
	t.Helper()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.RoleSystem, msgs[0].Role)
	assert.Equal(t, SystemMessage, msgs[0].Content)
	assert.Equal(t, domain.RoleUser, msgs[1].Role)
	return msgs[1].Content
}

func TestSummary_DistinctTemplatePerType(t *testing.T) {
	seen := make(map[string]domain.SummaryType)
	for _, st := range domain.SummaryTypes {
		msgs, err := Summary(domain.SummaryRequest{Content: "Cells divide.", Type: st})
		require.NoError(t, err)

		user := userMessage(t, msgs)
		assert.Contains(t, user, "Text: Cells divide.")
		assert.Contains(t, user, `"tags"`)

		prev, dup := seen[user]
		assert.False(t, dup, "summary types %s and %s produced the same prompt", prev, st)
		seen[user] = st
	}

	short, _ := Summary(domain.SummaryRequest{Content: "x", Type: domain.SummaryShort})
	assert.Contains(t, short[1].Content, "2-3 paragraphs")
	bullets, _ := Summary(domain.SummaryRequest{Content: "x", Type: domain.SummaryBulletPoints})
	assert.Contains(t, bullets[1].Content, "bullet-point summary")
	detailed, _ := Summary(domain.SummaryRequest{Content: "x", Type: domain.SummaryDetailed})
	assert.Contains(t, detailed[1].Content, "sections with headings")
}

func TestSummary_Subject(t *testing.T) {
	msgs, err := Summary(domain.SummaryRequest{Content: "x", Type: domain.SummaryShort, Subject: "Biology"})
	require.NoError(t, err)
	assert.Contains(t, msgs[1].Content, "following text in the field of Biology.")

	msgs, err = Summary(domain.SummaryRequest{Content: "x", Type: domain.SummaryShort})
	require.NoError(t, err)
	assert.NotContains(t, msgs[1].Content, "in the field of")
}

func TestSummary_UnknownType(t *testing.T) {
	msgs, err := Summary(domain.SummaryRequest{Content: "x", Type: "haiku"})
	assert.Nil(t, msgs)
	assert.Error(t, err)
}

func TestSummary_TruncatesContent(t *testing.T) {
	long := strings.Repeat("a", SummaryContentLimit+10)
	msgs, err := Summary(domain.SummaryRequest{Content: long, Type: domain.SummaryShort})
	require.NoError(t, err)

	assert.Contains(t, msgs[1].Content, "Text: "+strings.Repeat("a", SummaryContentLimit)+"...\n")
	assert.NotContains(t, msgs[1].Content, strings.Repeat("a", SummaryContentLimit+1))

	exact := strings.Repeat("b", SummaryContentLimit)
	msgs, err = Summary(domain.SummaryRequest{Content: exact, Type: domain.SummaryShort})
	require.NoError(t, err)
	assert.Contains(t, msgs[1].Content, "Text: "+exact+"\n")
}

func TestQuiz(t *testing.T) {
	msgs, err := Quiz(domain.QuizRequest{
		Content:      "Mitochondria produce ATP.",
		NumQuestions: 5,
		Subject:      "Biology",
		Difficulty:   domain.DifficultyHard,
	})
	require.NoError(t, err)

	user := userMessage(t, msgs)
	assert.Contains(t, user, "Create a hard level quiz with 5 multiple-choice questions based on the following Biology content.")
	assert.Contains(t, user, "Difficulty level: hard")
	assert.Contains(t, user, "Instructions: "+difficultyInstructions[domain.DifficultyHard])
	assert.Contains(t, user, "Content: Mitochondria produce ATP.")
	assert.Contains(t, user, `"correct_answer"`)
}

func TestQuiz_InstructionPerDifficulty(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range domain.Difficulties {
		msgs, err := Quiz(domain.QuizRequest{Content: "x", NumQuestions: 1, Subject: "s", Difficulty: d})
		require.NoError(t, err)
		assert.False(t, seen[msgs[1].Content])
		seen[msgs[1].Content] = true
	}
}

func TestQuiz_UnknownDifficulty(t *testing.T) {
	_, err := Quiz(domain.QuizRequest{Content: "x", NumQuestions: 1, Subject: "s", Difficulty: "extreme"})
	assert.Error(t, err)
}

func TestQuiz_TruncatesContent(t *testing.T) {
	long := strings.Repeat("q", QuizContentLimit+1)
	msgs, err := Quiz(domain.QuizRequest{Content: long, NumQuestions: 1, Subject: "s", Difficulty: domain.DifficultyEasy})
	require.NoError(t, err)
	assert.Contains(t, msgs[1].Content, "Content: "+strings.Repeat("q", QuizContentLimit)+"...\n")
}

func TestFlashcards(t *testing.T) {
	for _, ct := range domain.CardTypes {
		msgs, err := Flashcards(domain.FlashcardRequest{Content: "x", NumCards: 3, Subject: "History", CardType: ct})
		require.NoError(t, err)

		user := userMessage(t, msgs)
		assert.Contains(t, user, "Create 3 flashcards based on the following History content.")
		assert.Contains(t, user, "Card type: "+string(ct))
		assert.Contains(t, user, "Instructions: "+cardTypeInstructions[ct])
	}

	long := strings.Repeat("f", FlashcardContentLimit+100)
	msgs, err := Flashcards(domain.FlashcardRequest{Content: long, NumCards: 1, Subject: "s", CardType: domain.CardFact})
	require.NoError(t, err)
	assert.Contains(t, msgs[1].Content, "Content: "+strings.Repeat("f", FlashcardContentLimit)+"...\n")
}

func TestFlashcards_UnknownCardType(t *testing.T) {
	_, err := Flashcards(domain.FlashcardRequest{Content: "x", NumCards: 1, Subject: "s", CardType: "riddle"})
	assert.Error(t, err)
}

func TestTopics(t *testing.T) {
	long := strings.Repeat("t", TopicContentLimit+50)
	user := userMessage(t, Topics(long))
	assert.Contains(t, user, "Text: "+strings.Repeat("t", TopicContentLimit)+"...\n")
	assert.NotContains(t, user, strings.Repeat("t", TopicContentLimit+1))
	assert.Contains(t, user, "comma-separated list")

	short := userMessage(t, Topics("cells"))
	assert.Contains(t, short, "Text: cells...\n")
}
