package dto

// EvaluateRequest is the evaluation API payload. Usernames accept bare
// names or profile URLs.
type EvaluateRequest struct {
	ResumeText       string   `json:"resume_text" validate:"required"`
	GitHubUsername   string   `json:"github_username,omitempty"`
	LeetCodeUsername string   `json:"leetcode_username,omitempty"`
	CGPA             *float64 `json:"cgpa,omitempty" validate:"omitempty,gte=0,lte=10"`
	Certifications   []string `json:"certifications,omitempty"`
}

// RoleScoreResponse is one recommended role with its confidence.
type RoleScoreResponse struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// EvaluateResponse is the evaluation API result.
type EvaluateResponse struct {
	Score            int                 `json:"score"`
	Category         string              `json:"category"`
	RecommendedRoles []RoleScoreResponse `json:"recommended_roles"`
	FeaturesUsed     int                 `json:"features_used"`
}
