package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hireready/internal/domain"
	"hireready/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toModelAttempt(a *domain.QuizAttempt) *models.QuizAttempt {
	var retestOf sql.NullString
	if a.RetestOf != "" {
		retestOf = sql.NullString{String: a.RetestOf, Valid: true}
	}
	var gradedAt sql.NullTime
	if a.GradedAt != nil {
		gradedAt = sql.NullTime{Time: *a.GradedAt, Valid: true}
	}
	return &models.QuizAttempt{
		ID:             a.ID,
		Role:           a.Role,
		Difficulty:     string(a.Difficulty),
		Questions:      models.JSONColumn[[]domain.QuizQuestion]{Val: a.Questions},
		Answers:        models.JSONColumn[map[int]string]{Val: a.Answers},
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Status:         string(a.Status),
		RetestOf:       retestOf,
		CreatedAt:      a.CreatedAt,
		GradedAt:       gradedAt,
	}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.QuizAttempt {
	var gradedAt *time.Time
	if m.GradedAt.Valid {
		t := m.GradedAt.Time
		gradedAt = &t
	}
	answers := m.Answers.Val
	if answers == nil {
		answers = make(map[int]string)
	}
	return &domain.QuizAttempt{
		ID:             m.ID,
		Role:           m.Role,
		Difficulty:     domain.Difficulty(m.Difficulty),
		Questions:      m.Questions.Val,
		Answers:        answers,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		Status:         domain.AttemptStatus(m.Status),
		RetestOf:       m.RetestOf.String,
		CreatedAt:      m.CreatedAt,
		GradedAt:       gradedAt,
	}
}

// CreateAttempt inserts a new quiz attempt.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	m := toModelAttempt(attempt)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO quiz_attempts (ID, ROLE, DIFFICULTY, QUESTIONS, ANSWERS, SCORE, TOTAL_QUESTIONS, STATUS, RETEST_OF, CREATED_AT, GRADED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Role,
		m.Difficulty,
		m.Questions,
		m.Answers,
		m.Score,
		m.TotalQuestions,
		m.Status,
		m.RetestOf,
		m.CreatedAt,
		m.GradedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// GetAttemptByID loads one attempt, returning ATTEMPT_NOT_FOUND when no
// row matches.
func (r *sqlxAttemptRepository) GetAttemptByID(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	query := `SELECT ID, ROLE, DIFFICULTY, QUESTIONS, ANSWERS, SCORE, TOTAL_QUESTIONS, STATUS, RETEST_OF, CREATED_AT, GRADED_AT
	          FROM quiz_attempts WHERE ID = :1`

	var m models.QuizAttempt
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewAttemptNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get quiz attempt %s: %w", id, err)
	}
	return toDomainAttempt(&m), nil
}

// UpdateAttempt persists answer and grading changes for an attempt.
func (r *sqlxAttemptRepository) UpdateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	m := toModelAttempt(attempt)

	query := `UPDATE quiz_attempts
	          SET ANSWERS = :1, SCORE = :2, TOTAL_QUESTIONS = :3, STATUS = :4, GRADED_AT = :5
	          WHERE ID = :6`

	result, err := r.db.ExecContext(ctx, query,
		m.Answers,
		m.Score,
		m.TotalQuestions,
		m.Status,
		m.GradedAt,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update quiz attempt %s: %w", attempt.ID, err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return domain.NewAttemptNotFoundError(attempt.ID)
	}
	return nil
}
