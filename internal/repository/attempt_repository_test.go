package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hireready/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func sampleAttempt() *domain.QuizAttempt {
	return domain.NewQuizAttempt("01HTEST", "Backend Developer", domain.DifficultyMedium,
		[]domain.QuizQuestion{
			{
				Type:          domain.QuestionTypeMCQ,
				QuestionText:  "Which HTTP status signals a missing resource?",
				Options:       []string{"A) 200", "B) 301", "C) 404", "D) 500"},
				CorrectAnswer: "C) 404",
			},
		})
}

func TestCreateAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quiz_attempts")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateAttempt(context.Background(), sampleAttempt())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttempt_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quiz_attempts")).
		WillReturnError(assert.AnError)

	err := repo.CreateAttempt(context.Background(), sampleAttempt())
	assert.Error(t, err)
}

func TestGetAttemptByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	questionsJSON := `[{"type":"mcq","question":"Q1","options":["A) x","B) y"],"correctAnswer":"A) x"}]`
	answersJSON := `{"0":"A) x"}`
	created := time.Now()

	rows := sqlmock.NewRows([]string{
		"ID", "ROLE", "DIFFICULTY", "QUESTIONS", "ANSWERS",
		"SCORE", "TOTAL_QUESTIONS", "STATUS", "RETEST_OF", "CREATED_AT", "GRADED_AT",
	}).AddRow(
		"01HTEST", "Backend Developer", "Medium", questionsJSON, answersJSON,
		0, 1, "IN_PROGRESS", nil, created, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, ROLE, DIFFICULTY")).
		WithArgs("01HTEST").
		WillReturnRows(rows)

	attempt, err := repo.GetAttemptByID(context.Background(), "01HTEST")
	require.NoError(t, err)

	assert.Equal(t, "01HTEST", attempt.ID)
	assert.Equal(t, domain.DifficultyMedium, attempt.Difficulty)
	assert.Equal(t, domain.AttemptInProgress, attempt.Status)
	require.Len(t, attempt.Questions, 1)
	assert.Equal(t, "A) x", attempt.Questions[0].CorrectAnswer)
	assert.Equal(t, "A) x", attempt.Answers[0])
	assert.Empty(t, attempt.RetestOf)
	assert.Nil(t, attempt.GradedAt)
}

func TestGetAttemptByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT ID, ROLE, DIFFICULTY")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))

	_, err := repo.GetAttemptByID(context.Background(), "missing")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeAttemptNotFound, domainErr.Code)
}

func TestUpdateAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	attempt := sampleAttempt()
	require.NoError(t, attempt.RecordAnswer(0, "C) 404"))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE quiz_attempts")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateAttempt(context.Background(), attempt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAttempt_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXAttemptRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE quiz_attempts")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAttempt(context.Background(), sampleAttempt())
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeAttemptNotFound, domainErr.Code)
}
