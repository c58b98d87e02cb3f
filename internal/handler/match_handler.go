package handler

import (
	"hireready/internal/domain"
	"hireready/internal/dto"
	"hireready/internal/service"
	"hireready/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// MatchHandler handles candidate shortlisting HTTP requests
type MatchHandler struct {
	service   service.MatchService
	validator *validation.Validator
}

func NewMatchHandler(svc service.MatchService, validator *validation.Validator) *MatchHandler {
	return &MatchHandler{service: svc, validator: validator}
}

// Shortlist handles POST /api/match/shortlist
func (h *MatchHandler) Shortlist(c *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.ValidateMatchRequest(&req); err != nil {
		return err
	}

	criteria := domain.JobCriteria{
		MinCGPA:                req.Criteria.MinCGPA,
		RequiredCertifications: req.Criteria.RequiredCertifications,
		PreferredSkills:        req.Criteria.PreferredSkills,
	}
	profiles := make([]domain.CandidateProfile, len(req.Candidates))
	for i, cand := range req.Candidates {
		profiles[i] = domain.CandidateProfile{
			Ref:            cand.Ref,
			CGPA:           cand.CGPA,
			Certifications: cand.Certifications,
			ResumeScore:    cand.ResumeScore,
			ResumeText:     cand.ResumeText,
		}
	}

	results := h.service.Shortlist(c.UserContext(), criteria, profiles)

	shortlist := make([]dto.MatchResultResponse, len(results))
	for i, r := range results {
		shortlist[i] = dto.MatchResultResponse{
			CandidateRef:          r.CandidateRef,
			MatchScore:            r.MatchScore,
			MatchedSkills:         r.MatchedSkills,
			MatchedCertifications: r.MatchedCertifications,
			Eligible:              r.Eligible,
		}
	}
	return c.JSON(dto.MatchResponse{Shortlist: shortlist})
}
