package dto

// JobCriteriaRequest is the matching-relevant slice of a job posting.
type JobCriteriaRequest struct {
	MinCGPA                *float64 `json:"min_cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	RequiredCertifications []string `json:"required_certifications,omitempty"`
	PreferredSkills        []string `json:"preferred_skills,omitempty"`
}

// CandidateProfileRequest is one candidate in a match request.
type CandidateProfileRequest struct {
	Ref            string   `json:"ref" validate:"required"`
	CGPA           *float64 `json:"cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	Certifications []string `json:"certifications,omitempty"`
	ResumeScore    float64  `json:"resume_score" validate:"gte=0,lte=100"`
	ResumeText     string   `json:"resume_text,omitempty"`
}

// MatchRequest is the shortlist API payload.
type MatchRequest struct {
	Criteria   JobCriteriaRequest        `json:"criteria"`
	Candidates []CandidateProfileRequest `json:"candidates" validate:"required,min=1,dive"`
}

// MatchResultResponse is one shortlisted candidate.
type MatchResultResponse struct {
	CandidateRef          string   `json:"candidate_ref"`
	MatchScore            float64  `json:"match_score"`
	MatchedSkills         []string `json:"matched_skills"`
	MatchedCertifications []string `json:"matched_certifications"`
	Eligible              bool     `json:"eligible"`
}

// MatchResponse is the shortlist API result, ranked best-first.
type MatchResponse struct {
	Shortlist []MatchResultResponse `json:"shortlist"`
}
