package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"hireready/internal/analyzer"
	"hireready/internal/cache"
	"hireready/internal/domain"
	"hireready/internal/logger"
	"hireready/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TopRoles is the number of role recommendations per evaluation.
const TopRoles = 3

const snapshotPreviewLimit = 500

// EvaluateRequest carries every signal of one candidate evaluation.
// Usernames may be bare names or profile URLs; everything but the resume
// text is optional.
type EvaluateRequest struct {
	ResumeText       string
	GitHubUsername   string
	LeetCodeUsername string
	CGPA             *float64
	Certifications   []string
}

// EvaluationService evaluates a candidate's placement readiness.
type EvaluationService interface {
	Evaluate(ctx context.Context, req EvaluateRequest) (*domain.EvaluationResult, error)
}

type evaluationService struct {
	readiness domain.ReadinessModel
	roles     domain.RoleModel
	github    domain.GitHubFetcher
	leetcode  domain.LeetCodeFetcher
	cache     domain.Cache
	snapshots domain.EvaluationRepository
	cacheTTL  time.Duration
}

// NewEvaluationService wires the evaluation pipeline. Cache and snapshot
// repository are optional; passing nil disables the respective concern.
func NewEvaluationService(
	readiness domain.ReadinessModel,
	roles domain.RoleModel,
	github domain.GitHubFetcher,
	leetcode domain.LeetCodeFetcher,
	cacheClient domain.Cache,
	snapshots domain.EvaluationRepository,
	cacheTTL time.Duration,
) EvaluationService {
	return &evaluationService{
		readiness: readiness,
		roles:     roles,
		github:    github,
		leetcode:  leetcode,
		cache:     cacheClient,
		snapshots: snapshots,
		cacheTTL:  cacheTTL,
	}
}

// Evaluate normalizes the request's signals into a feature vector, scores
// it, and ranks role recommendations. Activity fetches run concurrently
// and fail soft; scoring fails closed.
func (s *evaluationService) Evaluate(ctx context.Context, req EvaluateRequest) (*domain.EvaluationResult, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("resume_text")}
	}

	var githubMetrics domain.GitHubMetrics
	var leetcodeMetrics domain.LeetCodeMetrics

	g, gctx := errgroup.WithContext(ctx)
	if req.GitHubUsername != "" && s.github != nil {
		g.Go(func() error {
			githubMetrics = s.github.FetchGitHub(gctx, req.GitHubUsername)
			return nil
		})
	}
	if req.LeetCodeUsername != "" && s.leetcode != nil {
		g.Go(func() error {
			leetcodeMetrics = s.leetcode.FetchLeetCode(gctx, req.LeetCodeUsername)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	vector, err := analyzer.BuildFeatureVector(req.ResumeText, githubMetrics, leetcodeMetrics,
		domain.AcademicFields{CGPA: req.CGPA, Certifications: req.Certifications})
	if err != nil {
		return nil, err
	}

	cacheKey := s.cacheKeyFor(vector)
	if cached := s.cachedResult(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	result, err := s.scoreAndRank(ctx, vector)
	if err != nil {
		return nil, err
	}

	s.storeResult(ctx, cacheKey, result)
	s.saveSnapshot(req, vector, result)

	return result, nil
}

// scoreAndRank runs the readiness model and the per-role ranking over a
// validated vector.
func (s *evaluationService) scoreAndRank(ctx context.Context, vector domain.FeatureVector) (*domain.EvaluationResult, error) {
	p, err := s.readiness.Predict(ctx, vector)
	if err != nil {
		return nil, domain.NewScoringUnavailableError(err)
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, domain.NewScoringUnavailableError(nil)
	}
	score := int(math.Round(p * 100))

	ranked, err := s.rankRoles(ctx, vector)
	if err != nil {
		return nil, domain.NewScoringUnavailableError(err)
	}

	featuresUsed := 0
	for _, val := range vector {
		if val != 0 {
			featuresUsed++
		}
	}

	return &domain.EvaluationResult{
		Score:            score,
		Category:         domain.CategoryForScore(score),
		RecommendedRoles: ranked,
		FeaturesUsed:     featuresUsed,
	}, nil
}

// rankRoles scores every supported role and returns the top entries in
// descending confidence, lexical role-name tie-break.
func (s *evaluationService) rankRoles(ctx context.Context, vector domain.FeatureVector) ([]domain.RoleScore, error) {
	roleNames := s.roles.Roles()
	scores := make([]domain.RoleScore, 0, len(roleNames))
	for _, role := range roleNames {
		confidence, err := s.roles.PredictRole(ctx, role, vector)
		if err != nil {
			return nil, err
		}
		scores = append(scores, domain.RoleScore{Role: role, Confidence: confidence})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Confidence != scores[j].Confidence {
			return scores[i].Confidence > scores[j].Confidence
		}
		return scores[i].Role < scores[j].Role
	})

	if len(scores) > TopRoles {
		scores = scores[:TopRoles]
	}
	return scores, nil
}

// cacheKeyFor derives the cache key from the canonical vector rendering,
// so identical signals hit the same entry regardless of request shape.
func (s *evaluationService) cacheKeyFor(vector domain.FeatureVector) string {
	sum := sha256.Sum256([]byte(vector.Canonical()))
	return cache.GenerateCacheKey("evaluation", "result", hex.EncodeToString(sum[:]))
}

func (s *evaluationService) cachedResult(ctx context.Context, key string) *domain.EvaluationResult {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("evaluation cache read failed", zap.Error(err))
		}
		return nil
	}
	var result domain.EvaluationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Get().Warn("evaluation cache entry corrupt", zap.Error(err))
		return nil
	}
	return &result
}

func (s *evaluationService) storeResult(ctx context.Context, key string, result *domain.EvaluationResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		logger.Get().Warn("evaluation cache write failed", zap.Error(err))
	}
}

// saveSnapshot stores the evaluation for later review. Runs in the
// background with its own deadline; a failure is logged, never surfaced.
func (s *evaluationService) saveSnapshot(req EvaluateRequest, vector domain.FeatureVector, result *domain.EvaluationResult) {
	if s.snapshots == nil {
		return
	}

	preview := truncatePreview(req.ResumeText)
	snapshot := &domain.EvaluationSnapshot{
		ID:                util.NewULID(),
		ResumeTextPreview: preview,
		GitHubUsername:    req.GitHubUsername,
		LeetCodeUsername:  req.LeetCodeUsername,
		Certifications:    req.Certifications,
		Features:          vector.Clone(),
		Score:             result.Score,
		Category:          result.Category,
		RecommendedRoles:  result.RecommendedRoles,
		CreatedAt:         time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
			logger.Get().Warn("evaluation snapshot save failed",
				zap.String("snapshot_id", snapshot.ID), zap.Error(err))
		}
	}()
}

// truncatePreview caps the stored resume preview, backing off to a rune
// boundary so the cut never leaves invalid UTF-8 behind.
func truncatePreview(text string) string {
	if len(text) <= snapshotPreviewLimit {
		return text
	}
	cut := snapshotPreviewLimit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
