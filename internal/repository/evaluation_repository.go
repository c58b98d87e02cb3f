package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hireready/internal/domain"
	"hireready/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxEvaluationRepository implements domain.EvaluationRepository using sqlx.
type sqlxEvaluationRepository struct {
	db *sqlx.DB
}

// NewSQLXEvaluationRepository creates a new instance of sqlxEvaluationRepository.
func NewSQLXEvaluationRepository(db *sqlx.DB) domain.EvaluationRepository {
	return &sqlxEvaluationRepository{db: db}
}

// SaveSnapshot stores one completed evaluation for later review.
func (r *sqlxEvaluationRepository) SaveSnapshot(ctx context.Context, snapshot *domain.EvaluationSnapshot) error {
	m := &models.EvaluationSnapshot{
		ID:               snapshot.ID,
		ResumePreview:    snapshot.ResumeTextPreview,
		Certifications:   models.StringSlice(snapshot.Certifications),
		Features:         models.JSONColumn[domain.FeatureVector]{Val: snapshot.Features},
		Score:            snapshot.Score,
		Category:         string(snapshot.Category),
		RecommendedRoles: models.JSONColumn[[]domain.RoleScore]{Val: snapshot.RecommendedRoles},
		CreatedAt:        snapshot.CreatedAt,
	}
	if snapshot.GitHubUsername != "" {
		m.GitHubUsername = sql.NullString{String: snapshot.GitHubUsername, Valid: true}
	}
	if snapshot.LeetCodeUsername != "" {
		m.LeetCodeUsername = sql.NullString{String: snapshot.LeetCodeUsername, Valid: true}
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO analysis_snapshots (ID, RESUME_PREVIEW, GITHUB_USERNAME, LEETCODE_USERNAME, CERTIFICATIONS, FEATURES, SCORE, CATEGORY, RECOMMENDED_ROLES, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ResumePreview,
		m.GitHubUsername,
		m.LeetCodeUsername,
		m.Certifications,
		m.Features,
		m.Score,
		m.Category,
		m.RecommendedRoles,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save evaluation snapshot: %w", err)
	}
	return nil
}
