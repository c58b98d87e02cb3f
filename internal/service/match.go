package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"hireready/internal/analyzer"
	"hireready/internal/domain"
	"hireready/internal/util"
)

// Shortlist score weights. Skill overlap dominates, resume quality breaks
// the rest. Both sub-scores are in [0, 1], so the result stays in [0, 100].
const (
	skillOverlapWeight = 0.6
	resumeScoreWeight  = 0.4
)

// MatchService shortlists candidates against a job's criteria.
type MatchService interface {
	Shortlist(ctx context.Context, criteria domain.JobCriteria, profiles []domain.CandidateProfile) []domain.MatchResult
}

type matchService struct{}

func NewMatchService() MatchService {
	return &matchService{}
}

// Shortlist recomputes eligibility and match scores from scratch on every
// call; nothing is cached, since criteria or profiles may have changed.
// Ineligible candidates are excluded from the ranked output.
func (s *matchService) Shortlist(ctx context.Context, criteria domain.JobCriteria, profiles []domain.CandidateProfile) []domain.MatchResult {
	requiredCerts := util.NormalizeSet(criteria.RequiredCertifications)
	preferredSkills := util.NormalizeSet(criteria.PreferredSkills)

	type ranked struct {
		result      domain.MatchResult
		resumeScore float64
		inputIndex  int
	}
	entries := make([]ranked, 0, len(profiles))

	for i, profile := range profiles {
		if !eligible(criteria, requiredCerts, profile) {
			continue
		}

		matchedSkills := matchSkills(criteria.PreferredSkills, profile.ResumeText)
		matchedCerts := matchCerts(requiredCerts, profile.Certifications)

		// Overlap ratio is over the union of preferred skills, so duplicate
		// or blank entries in the criteria cannot dilute it.
		overlap := 1.0 // empty preferred_skills grants full skill credit
		if len(preferredSkills) > 0 {
			overlap = float64(len(matchedSkills)) / float64(len(preferredSkills))
		}
		resumeTerm := profile.ResumeScore / 100

		score := 100 * (skillOverlapWeight*overlap + resumeScoreWeight*resumeTerm)
		score = math.Round(score*100) / 100

		entries = append(entries, ranked{
			result: domain.MatchResult{
				CandidateRef:          profile.Ref,
				MatchScore:            score,
				MatchedSkills:         matchedSkills,
				MatchedCertifications: matchedCerts,
				Eligible:              true,
			},
			resumeScore: profile.ResumeScore,
			inputIndex:  i,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].result.MatchScore != entries[j].result.MatchScore {
			return entries[i].result.MatchScore > entries[j].result.MatchScore
		}
		if entries[i].resumeScore != entries[j].resumeScore {
			return entries[i].resumeScore > entries[j].resumeScore
		}
		return entries[i].inputIndex < entries[j].inputIndex
	})

	results := make([]domain.MatchResult, len(entries))
	for i, entry := range entries {
		results[i] = entry.result
	}
	return results
}

// eligible applies the hard gates: minimum CGPA (fail-closed when the
// candidate has no CGPA), required certification superset, and the
// resume-score floor.
func eligible(criteria domain.JobCriteria, requiredCerts map[string]struct{}, profile domain.CandidateProfile) bool {
	if criteria.MinCGPA != nil {
		if profile.CGPA == nil || *profile.CGPA < *criteria.MinCGPA {
			return false
		}
	}
	if len(requiredCerts) > 0 {
		if !util.ContainsAll(util.NormalizeSet(profile.Certifications), requiredCerts) {
			return false
		}
	}
	return profile.ResumeScore >= domain.ResumeScoreFloor
}

// matchSkills returns the preferred skills detected in the candidate's
// resume text, preserving the caller's spelling of each skill name.
func matchSkills(preferred []string, resumeText string) []string {
	if len(preferred) == 0 {
		return nil
	}
	inferred := util.NormalizeSet(analyzer.ExtractSkills(resumeText))

	var matched []string
	seen := make(map[string]struct{})
	for _, skill := range preferred {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		if _, ok := inferred[key]; ok {
			matched = append(matched, skill)
			seen[key] = struct{}{}
		}
	}
	return matched
}

// matchCerts returns the candidate's certifications that satisfy a
// required certification, in the candidate's spelling.
func matchCerts(requiredCerts map[string]struct{}, certifications []string) []string {
	if len(requiredCerts) == 0 {
		return nil
	}
	var matched []string
	seen := make(map[string]struct{})
	for _, cert := range certifications {
		key := strings.ToLower(strings.TrimSpace(cert))
		if _, required := requiredCerts[key]; !required {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		matched = append(matched, cert)
		seen[key] = struct{}{}
	}
	return matched
}
