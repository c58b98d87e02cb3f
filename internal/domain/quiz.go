package domain

import (
	"fmt"
	"strings"
	"time"
)

// QuestionType distinguishes plain MCQs from code-snippet MCQs.
type QuestionType string

const (
	QuestionTypeMCQ     QuestionType = "mcq"
	QuestionTypeSnippet QuestionType = "snippet"
)

// Difficulty levels accepted by the quiz generator.
type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// ParseDifficulty normalizes a difficulty string, defaulting to Low.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return DifficultyMedium
	case "high", "hard":
		return DifficultyHigh
	default:
		return DifficultyLow
	}
}

// QuestionsPerQuiz is the fixed size of every generated quiz.
const QuestionsPerQuiz = 10

// QuizQuestion is a single generated question. CorrectAnswer must be
// byte-identical to one of Options; grading relies on exact string
// equality, so the option text itself is the grading contract.
type QuizQuestion struct {
	Type          QuestionType `json:"type"`
	QuestionText  string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
}

// Validate checks the question invariants.
func (q *QuizQuestion) Validate() error {
	if q.Type != QuestionTypeMCQ && q.Type != QuestionTypeSnippet {
		return NewInvalidInputError(fmt.Sprintf("question type must be %q or %q, got %q", QuestionTypeMCQ, QuestionTypeSnippet, q.Type))
	}
	if strings.TrimSpace(q.QuestionText) == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) < 2 {
		return NewInvalidInputError("a question needs at least two options")
	}
	for _, opt := range q.Options {
		if q.CorrectAnswer == opt {
			return nil
		}
	}
	return NewInvalidInputError("correct answer does not match any option verbatim")
}

// AttemptStatus is the quiz attempt lifecycle state.
type AttemptStatus string

const (
	AttemptRequested  AttemptStatus = "REQUESTED"
	AttemptGenerated  AttemptStatus = "GENERATED"
	AttemptInProgress AttemptStatus = "IN_PROGRESS"
	AttemptGraded     AttemptStatus = "GRADED"
)

// QuizAttempt owns its question sequence. A retest copies the questions of
// a prior attempt verbatim instead of regenerating them, so the user is
// measured against identical material.
type QuizAttempt struct {
	ID             string
	Role           string
	Difficulty     Difficulty
	Questions      []QuizQuestion
	Answers        map[int]string // question index -> chosen option
	Score          int
	TotalQuestions int
	Status         AttemptStatus
	RetestOf       string // originating attempt ID, empty for fresh quizzes
	CreatedAt      time.Time
	GradedAt       *time.Time
}

// NewQuizAttempt creates a Generated attempt from a validated question set.
func NewQuizAttempt(id, role string, difficulty Difficulty, questions []QuizQuestion) *QuizAttempt {
	return &QuizAttempt{
		ID:             id,
		Role:           role,
		Difficulty:     difficulty,
		Questions:      questions,
		Answers:        make(map[int]string),
		TotalQuestions: len(questions),
		Status:         AttemptGenerated,
		CreatedAt:      time.Now(),
	}
}

// RecordAnswer stores the chosen option for one question. Graded attempts
// are immutable.
func (a *QuizAttempt) RecordAnswer(index int, option string) error {
	if a.Status == AttemptGraded {
		return NewAttemptAlreadyGradedError(a.ID)
	}
	if index < 0 || index >= len(a.Questions) {
		return NewInvalidInputError(fmt.Sprintf("question index %d is out of range", index))
	}
	if a.Answers == nil {
		a.Answers = make(map[int]string)
	}
	a.Answers[index] = option
	a.Status = AttemptInProgress
	return nil
}

// Grade scores the attempt by exact string comparison against each
// question's correct answer. No substring or fuzzy matching.
func (a *QuizAttempt) Grade() error {
	if a.Status == AttemptGraded {
		return NewAttemptAlreadyGradedError(a.ID)
	}
	score := 0
	for i, q := range a.Questions {
		if answer, ok := a.Answers[i]; ok && answer == q.CorrectAnswer {
			score++
		}
	}
	a.Score = score
	a.TotalQuestions = len(a.Questions)
	a.Status = AttemptGraded
	now := time.Now()
	a.GradedAt = &now
	return nil
}
