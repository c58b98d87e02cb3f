package service

import (
	"context"
	"time"

	"hireready/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockReadinessModel struct {
	mock.Mock
}

func (m *MockReadinessModel) Predict(ctx context.Context, vector domain.FeatureVector) (float64, error) {
	args := m.Called(ctx, vector)
	return args.Get(0).(float64), args.Error(1)
}

type MockRoleModel struct {
	mock.Mock
}

func (m *MockRoleModel) PredictRole(ctx context.Context, role string, vector domain.FeatureVector) (float64, error) {
	args := m.Called(ctx, role, vector)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRoleModel) Roles() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

type MockGitHubFetcher struct {
	mock.Mock
}

func (m *MockGitHubFetcher) FetchGitHub(ctx context.Context, username string) domain.GitHubMetrics {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.GitHubMetrics)
}

type MockLeetCodeFetcher struct {
	mock.Mock
}

func (m *MockLeetCodeFetcher) FetchLeetCode(ctx context.Context, username string) domain.LeetCodeMetrics {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.LeetCodeMetrics)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetAttemptByID(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizAttempt), args.Error(1)
}

func (m *MockAttemptRepository) UpdateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) SaveSnapshot(ctx context.Context, snapshot *domain.EvaluationSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) GenerateQuestions(ctx context.Context, role string, difficulty domain.Difficulty, count int, strict bool) ([]domain.QuizQuestion, error) {
	args := m.Called(ctx, role, difficulty, count, strict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizQuestion), args.Error(1)
}
