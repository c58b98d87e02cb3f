package domain

// JobCriteria is the matching-relevant slice of a job posting. Owned by
// the job-posting collaborator; the match engine only reads it.
type JobCriteria struct {
	MinCGPA                *float64
	RequiredCertifications []string
	PreferredSkills        []string
}

// CandidateProfile is one candidate in a match request. Never mutated by
// the match engine.
type CandidateProfile struct {
	Ref            string // caller-supplied identity, opaque to the engine
	CGPA           *float64
	Certifications []string
	ResumeScore    float64 // 0-100
	ResumeText     string
}

// MatchResult scores one candidate against one job's criteria. Results are
// recomputed on every request and never cached, since criteria or profiles
// may have changed between calls.
type MatchResult struct {
	CandidateRef          string
	MatchScore            float64 // 0-100
	MatchedSkills         []string
	MatchedCertifications []string
	Eligible              bool
}

// Minimum resume score a candidate needs to enter any shortlist.
const ResumeScoreFloor = 50
