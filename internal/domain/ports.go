package domain

import (
	"context"
	"time"
)

// ReadinessModel is the predictive-model port for the overall readiness
// score. Implementations are loaded once and must be stateless per call.
type ReadinessModel interface {
	// Predict returns a probability in [0, 1] for the given vector.
	Predict(ctx context.Context, vector FeatureVector) (float64, error)
}

// RoleModel scores a vector against a single target role.
type RoleModel interface {
	// PredictRole returns a confidence in [0, 1] for the given role.
	PredictRole(ctx context.Context, role string, vector FeatureVector) (float64, error)
	// Roles lists every role the model can score.
	Roles() []string
}

// QuestionGenerator is the generative-text port for quiz creation. The
// backing call may suspend for tens of seconds and must honor ctx
// cancellation; implementations perform no retries of their own.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, role string, difficulty Difficulty, count int, strict bool) ([]QuizQuestion, error)
}

// GitHubMetrics are the signals mined from a public GitHub profile.
type GitHubMetrics struct {
	TotalRepos        int
	TotalCommits      int
	ContributionScore int
	ProjectCounts     map[string]int // feature column -> repo count
}

// LeetCodeMetrics are the solved-problem counts and contest rating from a
// public LeetCode profile.
type LeetCodeMetrics struct {
	Easy          int
	Medium        int
	Hard          int
	Total         int
	ContestRating int
}

// GitHubFetcher retrieves activity metrics for a GitHub user. A fetch
// failure resolves to zero metrics, never to an error: missing activity
// data degrades the feature vector but must not abort an evaluation.
type GitHubFetcher interface {
	FetchGitHub(ctx context.Context, username string) GitHubMetrics
}

// LeetCodeFetcher retrieves solved stats for a LeetCode user, with the
// same fail-soft contract as GitHubFetcher.
type LeetCodeFetcher interface {
	FetchLeetCode(ctx context.Context, username string) LeetCodeMetrics
}

// AttemptRepository persists quiz attempts. Attempts are the durable
// source for retests: the original question sequence must be retrievable
// by attempt identity.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	GetAttemptByID(ctx context.Context, id string) (*QuizAttempt, error)
	UpdateAttempt(ctx context.Context, attempt *QuizAttempt) error
}

// EvaluationSnapshot is a stored record of one completed evaluation.
type EvaluationSnapshot struct {
	ID                string
	ResumeTextPreview string
	GitHubUsername    string
	LeetCodeUsername  string
	Certifications    []string
	Features          FeatureVector
	Score             int
	Category          ReadinessCategory
	RecommendedRoles  []RoleScore
	CreatedAt         time.Time
}

// EvaluationRepository stores evaluation snapshots for later review.
type EvaluationRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *EvaluationSnapshot) error
}

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the port for caching operations. Implementations are the
// adapters (e.g. the Redis cache adapter).
type Cache interface {
	// Get retrieves an item. Returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set stores an item, overwriting any existing value. A zero
	// expiration caches indefinitely if the adapter supports it.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}
