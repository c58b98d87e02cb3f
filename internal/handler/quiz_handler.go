package handler

import (
	"hireready/internal/domain"
	"hireready/internal/dto"
	"hireready/internal/service"
	"hireready/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz attempt HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

func NewQuizHandler(svc service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{service: svc, validator: validator}
}

// StartQuiz handles POST /api/quiz/attempts
func (h *QuizHandler) StartQuiz(c *fiber.Ctx) error {
	var req dto.StartQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.ValidateStartQuizRequest(&req); err != nil {
		return err
	}

	attempt, err := h.service.StartQuiz(c.UserContext(), req.Role, domain.ParseDifficulty(req.Difficulty), req.RetestOf)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toAttemptResponse(attempt))
}

// GetAttempt handles GET /api/quiz/attempts/:id
func (h *QuizHandler) GetAttempt(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.validator.ValidateAttemptID(id); err != nil {
		return err
	}

	attempt, err := h.service.GetAttempt(c.UserContext(), id)
	if err != nil {
		return err
	}
	if attempt.Status == domain.AttemptGraded {
		return c.JSON(toGradedResponse(attempt))
	}
	return c.JSON(toAttemptResponse(attempt))
}

// RecordAnswer handles POST /api/quiz/attempts/:id/answers
func (h *QuizHandler) RecordAnswer(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.validator.ValidateAttemptID(id); err != nil {
		return err
	}

	var req dto.RecordAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.ValidateRecordAnswerRequest(&req); err != nil {
		return err
	}

	attempt, err := h.service.RecordAnswer(c.UserContext(), id, req.QuestionIndex, req.Option)
	if err != nil {
		return err
	}
	return c.JSON(toAttemptResponse(attempt))
}

// SubmitQuiz handles POST /api/quiz/attempts/:id/submit
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.validator.ValidateAttemptID(id); err != nil {
		return err
	}

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.ValidateSubmitQuizRequest(&req); err != nil {
		return err
	}

	attempt, err := h.service.SubmitQuiz(c.UserContext(), id, req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(toGradedResponse(attempt))
}

// toAttemptResponse hides correct answers until the attempt is graded.
func toAttemptResponse(attempt *domain.QuizAttempt) dto.QuizAttemptResponse {
	questions := make([]dto.QuizQuestionResponse, len(attempt.Questions))
	for i, q := range attempt.Questions {
		questions[i] = dto.QuizQuestionResponse{
			Type:         string(q.Type),
			QuestionText: q.QuestionText,
			Options:      q.Options,
		}
	}
	return dto.QuizAttemptResponse{
		ID:             attempt.ID,
		Role:           attempt.Role,
		Difficulty:     string(attempt.Difficulty),
		Questions:      questions,
		Status:         string(attempt.Status),
		TotalQuestions: len(attempt.Questions),
		RetestOf:       attempt.RetestOf,
		CreatedAt:      attempt.CreatedAt,
	}
}

func toGradedResponse(attempt *domain.QuizAttempt) dto.GradedQuizResponse {
	questions := make([]dto.GradedQuestionResponse, len(attempt.Questions))
	for i, q := range attempt.Questions {
		given := attempt.Answers[i]
		questions[i] = dto.GradedQuestionResponse{
			Type:          string(q.Type),
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			GivenAnswer:   given,
			Correct:       given == q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	return dto.GradedQuizResponse{
		ID:             attempt.ID,
		Role:           attempt.Role,
		Difficulty:     string(attempt.Difficulty),
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Status:         string(attempt.Status),
		RetestOf:       attempt.RetestOf,
		Questions:      questions,
		GradedAt:       attempt.GradedAt,
	}
}
