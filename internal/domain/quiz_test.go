package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mcq(correct string) QuizQuestion {
	return QuizQuestion{
		Type:          QuestionTypeMCQ,
		QuestionText:  "Which option is correct?",
		Options:       []string{"A) one", "B) two", "C) three", "D) four"},
		CorrectAnswer: correct,
	}
}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyLow, ParseDifficulty(""))
	assert.Equal(t, DifficultyLow, ParseDifficulty("low"))
	assert.Equal(t, DifficultyLow, ParseDifficulty("easy"))
	assert.Equal(t, DifficultyMedium, ParseDifficulty("Medium"))
	assert.Equal(t, DifficultyMedium, ParseDifficulty(" medium "))
	assert.Equal(t, DifficultyHigh, ParseDifficulty("HIGH"))
	assert.Equal(t, DifficultyHigh, ParseDifficulty("hard"))
}

func TestQuizQuestionValidate(t *testing.T) {
	q := mcq("B) two")
	assert.NoError(t, q.Validate())

	q = mcq("B) two")
	q.Type = "essay"
	assert.Error(t, q.Validate())

	q = mcq("B) two")
	q.QuestionText = "   "
	assert.Error(t, q.Validate())

	q = mcq("B) two")
	q.Options = []string{"A) one"}
	assert.Error(t, q.Validate())

	// The correct answer has to match an option byte for byte.
	q = mcq("b) two")
	assert.Error(t, q.Validate())
	q = mcq("B) two ")
	assert.Error(t, q.Validate())
}

func TestQuizAttemptLifecycle(t *testing.T) {
	attempt := NewQuizAttempt("01HATTEMPT", "Backend Developer", DifficultyLow, []QuizQuestion{mcq("B) two"), mcq("C) three")})
	assert.Equal(t, AttemptGenerated, attempt.Status)
	assert.Equal(t, 2, attempt.TotalQuestions)

	require.NoError(t, attempt.RecordAnswer(0, "B) two"))
	assert.Equal(t, AttemptInProgress, attempt.Status)

	// Re-answering a question replaces the previous choice.
	require.NoError(t, attempt.RecordAnswer(0, "A) one"))
	assert.Equal(t, "A) one", attempt.Answers[0])

	require.NoError(t, attempt.Grade())
	assert.Equal(t, AttemptGraded, attempt.Status)
	assert.Equal(t, 0, attempt.Score)
	require.NotNil(t, attempt.GradedAt)
}

func TestQuizAttemptRecordAnswerBounds(t *testing.T) {
	attempt := NewQuizAttempt("01HATTEMPT", "Backend Developer", DifficultyLow, []QuizQuestion{mcq("B) two")})

	assert.Error(t, attempt.RecordAnswer(-1, "A) one"))
	assert.Error(t, attempt.RecordAnswer(1, "A) one"))
}

func TestQuizAttemptGradeExactMatch(t *testing.T) {
	attempt := NewQuizAttempt("01HATTEMPT", "Backend Developer", DifficultyLow, []QuizQuestion{
		mcq("B) two"), mcq("B) two"), mcq("B) two"), mcq("B) two"),
	})
	require.NoError(t, attempt.RecordAnswer(0, "B) two"))
	require.NoError(t, attempt.RecordAnswer(1, "b) two"))
	require.NoError(t, attempt.RecordAnswer(2, "B) two "))
	// question 3 left unanswered

	require.NoError(t, attempt.Grade())
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 4, attempt.TotalQuestions)
}

func TestQuizAttemptGradedIsImmutable(t *testing.T) {
	attempt := NewQuizAttempt("01HATTEMPT", "Backend Developer", DifficultyLow, []QuizQuestion{mcq("B) two")})
	require.NoError(t, attempt.Grade())

	err := attempt.RecordAnswer(0, "B) two")
	require.Error(t, err)
	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeAttemptAlreadyGraded, domainErr.Code)

	err = attempt.Grade()
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeAttemptAlreadyGraded, domainErr.Code)
}
