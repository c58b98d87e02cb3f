package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hireready/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSaveSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXEvaluationRepository(db)

	snapshot := &domain.EvaluationSnapshot{
		ID:                "01HSNAP",
		ResumeTextPreview: "Python developer with Docker experience",
		GitHubUsername:    "octocat",
		Certifications:    []string{"AWS Certified", "CKA"},
		Features:          domain.NewFeatureVector(),
		Score:             82,
		Category:          domain.CategoryReady,
		RecommendedRoles: []domain.RoleScore{
			{Role: "Backend Developer", Confidence: 0.7},
		},
		CreatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analysis_snapshots")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSnapshot(context.Background(), snapshot)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_CertificationsStoredAsJSON(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXEvaluationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analysis_snapshots")).
		WithArgs(
			"01HSNAP",
			"",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			`["AWS Certified","CKA"]`,
			sqlmock.AnyArg(),
			0,
			"NotReady",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSnapshot(context.Background(), &domain.EvaluationSnapshot{
		ID:             "01HSNAP",
		Certifications: []string{"AWS Certified", "CKA"},
		Features:       domain.NewFeatureVector(),
		Category:       domain.CategoryNotReady,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSQLXEvaluationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analysis_snapshots")).
		WillReturnError(assert.AnError)

	err := repo.SaveSnapshot(context.Background(), &domain.EvaluationSnapshot{
		ID:       "01HSNAP",
		Features: domain.NewFeatureVector(),
	})
	assert.Error(t, err)
}
