package handler

import (
	"hireready/internal/dto"
	"hireready/internal/service"
	"hireready/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// EvaluationHandler handles evaluation HTTP requests
type EvaluationHandler struct {
	service   service.EvaluationService
	validator *validation.Validator
}

func NewEvaluationHandler(svc service.EvaluationService, validator *validation.Validator) *EvaluationHandler {
	return &EvaluationHandler{service: svc, validator: validator}
}

// Evaluate handles POST /api/evaluate
func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.ValidateEvaluateRequest(&req); err != nil {
		return err
	}

	result, err := h.service.Evaluate(c.UserContext(), service.EvaluateRequest{
		ResumeText:       req.ResumeText,
		GitHubUsername:   req.GitHubUsername,
		LeetCodeUsername: req.LeetCodeUsername,
		CGPA:             req.CGPA,
		Certifications:   req.Certifications,
	})
	if err != nil {
		return err
	}

	roles := make([]dto.RoleScoreResponse, len(result.RecommendedRoles))
	for i, r := range result.RecommendedRoles {
		roles[i] = dto.RoleScoreResponse{Role: r.Role, Confidence: r.Confidence}
	}
	return c.JSON(dto.EvaluateResponse{
		Score:            result.Score,
		Category:         string(result.Category),
		RecommendedRoles: roles,
		FeaturesUsed:     result.FeaturesUsed,
	})
}
