package service

import (
	"context"
	"errors"
	"strings"

	"hireready/internal/domain"
	"hireready/internal/logger"
	"hireready/internal/util"

	"go.uber.org/zap"
)

// QuizService drives the quiz attempt lifecycle: generation, answer
// recording, grading, and exact retests.
type QuizService interface {
	// StartQuiz creates a Generated attempt. With retestOf set, the new
	// attempt reuses the prior attempt's exact question sequence instead
	// of generating fresh material.
	StartQuiz(ctx context.Context, role string, difficulty domain.Difficulty, retestOf string) (*domain.QuizAttempt, error)
	// RecordAnswer stores the chosen option for one question of an
	// ungraded attempt.
	RecordAnswer(ctx context.Context, attemptID string, questionIndex int, option string) (*domain.QuizAttempt, error)
	// SubmitQuiz grades the attempt and freezes it.
	SubmitQuiz(ctx context.Context, attemptID string, answers map[int]string) (*domain.QuizAttempt, error)
	// GetAttempt loads one attempt by ID.
	GetAttempt(ctx context.Context, attemptID string) (*domain.QuizAttempt, error)
}

type quizService struct {
	generator domain.QuestionGenerator
	attempts  domain.AttemptRepository
}

func NewQuizService(generator domain.QuestionGenerator, attempts domain.AttemptRepository) QuizService {
	return &quizService{generator: generator, attempts: attempts}
}

func (s *quizService) StartQuiz(ctx context.Context, role string, difficulty domain.Difficulty, retestOf string) (*domain.QuizAttempt, error) {
	if strings.TrimSpace(role) == "" {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("role")}
	}

	var questions []domain.QuizQuestion
	var err error
	if retestOf != "" {
		questions, err = s.retestQuestions(ctx, retestOf)
	} else {
		questions, err = s.generateQuestions(ctx, role, difficulty)
	}
	if err != nil {
		return nil, err
	}

	attempt := domain.NewQuizAttempt(util.NewULID(), role, difficulty, questions)
	attempt.RetestOf = retestOf

	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to persist quiz attempt", err)
	}

	logger.Get().Info("quiz attempt created",
		zap.String("attempt_id", attempt.ID),
		zap.String("role", role),
		zap.String("difficulty", string(difficulty)),
		zap.Bool("retest", retestOf != ""))

	return attempt, nil
}

// generateQuestions asks the generator for a full quiz, retrying once
// with a stricter prompt when the first response fails validation.
func (s *quizService) generateQuestions(ctx context.Context, role string, difficulty domain.Difficulty) ([]domain.QuizQuestion, error) {
	questions, err := s.generator.GenerateQuestions(ctx, role, difficulty, domain.QuestionsPerQuiz, false)
	if err == nil {
		return questions, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	logger.Get().Warn("quiz generation failed, retrying with strict prompt",
		zap.String("role", role), zap.Error(err))

	questions, err = s.generator.GenerateQuestions(ctx, role, difficulty, domain.QuestionsPerQuiz, true)
	if err != nil {
		return nil, domain.NewQuizGenerationFailedError(err)
	}
	return questions, nil
}

// retestQuestions copies the question sequence of a prior attempt. The
// copy must be identical content; a missing source is a distinct failure
// from generation so callers can explain the cause.
func (s *quizService) retestQuestions(ctx context.Context, retestOf string) ([]domain.QuizQuestion, error) {
	source, err := s.attempts.GetAttemptByID(ctx, retestOf)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeAttemptNotFound {
			return nil, domain.NewRetestSourceMissingError(retestOf)
		}
		return nil, err
	}
	if len(source.Questions) == 0 {
		return nil, domain.NewRetestSourceMissingError(retestOf)
	}

	questions := make([]domain.QuizQuestion, len(source.Questions))
	copy(questions, source.Questions)
	return questions, nil
}

func (s *quizService) RecordAnswer(ctx context.Context, attemptID string, questionIndex int, option string) (*domain.QuizAttempt, error) {
	attempt, err := s.attempts.GetAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	if err := attempt.RecordAnswer(questionIndex, option); err != nil {
		return nil, err
	}
	if err := s.attempts.UpdateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to persist answer", err)
	}
	return attempt, nil
}

func (s *quizService) SubmitQuiz(ctx context.Context, attemptID string, answers map[int]string) (*domain.QuizAttempt, error) {
	attempt, err := s.attempts.GetAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	for index, option := range answers {
		if err := attempt.RecordAnswer(index, option); err != nil {
			return nil, err
		}
	}
	if err := attempt.Grade(); err != nil {
		return nil, err
	}
	if err := s.attempts.UpdateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to persist graded attempt", err)
	}

	logger.Get().Info("quiz attempt graded",
		zap.String("attempt_id", attempt.ID),
		zap.Int("score", attempt.Score),
		zap.Int("total", attempt.TotalQuestions))

	return attempt, nil
}

func (s *quizService) GetAttempt(ctx context.Context, attemptID string) (*domain.QuizAttempt, error) {
	return s.attempts.GetAttemptByID(ctx, attemptID)
}
