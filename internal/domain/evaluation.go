package domain

// ReadinessCategory buckets a 0-100 readiness score.
type ReadinessCategory string

const (
	CategoryReady       ReadinessCategory = "Ready"
	CategoryAlmostReady ReadinessCategory = "AlmostReady"
	CategoryNotReady    ReadinessCategory = "NotReady"
)

// Fixed category thresholds. These are part of the scoring contract and
// must not drift: >= 75 Ready, >= 50 AlmostReady, below NotReady.
const (
	ReadyThreshold       = 75
	AlmostReadyThreshold = 50
)

// CategoryForScore maps a readiness score to its category.
func CategoryForScore(score int) ReadinessCategory {
	switch {
	case score >= ReadyThreshold:
		return CategoryReady
	case score >= AlmostReadyThreshold:
		return CategoryAlmostReady
	default:
		return CategoryNotReady
	}
}

// RoleScore is one entry of a role ranking.
type RoleScore struct {
	Role       string
	Confidence float64 // [0, 1]
}

// AcademicFields carries the academic metadata supplied with an
// evaluation request. Both fields are optional; missing values resolve to
// zero features during normalization.
type AcademicFields struct {
	CGPA           *float64
	Certifications []string
}

// EvaluationResult is the outcome of one candidate evaluation. It is
// derived deterministically from a FeatureVector.
type EvaluationResult struct {
	Score            int // 0-100
	Category         ReadinessCategory
	RecommendedRoles []RoleScore // descending confidence, lexical tie-break
	FeaturesUsed     int
}
