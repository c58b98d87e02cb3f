package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FeatureColumns is the canonical, ordered list of every feature the
// readiness model expects. The order matches the trained model's feature
// layout; do not add, remove, or rename entries without retraining.
//
// Total: 45 skills + 6 internships + 5 project counts + 3 GitHub metrics
// + 5 LeetCode metrics + 2 academic fields = 66.
var FeatureColumns = []string{
	// Skills (binary 0/1)
	"Python", "Java", "C++", "C", "JavaScript", "Go", "Rust", "TypeScript",
	"SQL", "Node", "Spring", "Django", "Flask", "FastAPI", "Express",
	"React", "Angular", "Vue", "NextJS", "HTML", "CSS",
	"TensorFlow", "PyTorch",
	"AWS", "Azure", "GCP",
	"Docker", "Kubernetes", "CI/CD",
	"Scikit", "Pandas", "NLP", "ComputerVision", "LLM", "PromptEngineering",
	"EthicalHacking", "Cryptography", "NetworkSecurity",
	"Android", "Flutter", "ReactNative",
	"OOPS", "SystemDesign", "DBMS", "OS",

	// Internships (binary 0/1)
	"internship_backend", "internship_ai", "internship_cloud",
	"internship_security", "internship_mobile", "internship_data",

	// Project counts (integer, capped at 10 per category)
	"num_backend_projects", "num_ai_projects", "num_mobile_projects",
	"num_cloud_projects", "num_security_projects",

	// GitHub metrics (integer)
	"github_total_repos", "github_total_commits",
	"open_source_contribution_score",

	// LeetCode metrics (integer)
	"leetcode_easy", "leetcode_medium", "leetcode_hard",
	"leetcode_total", "leetcode_contest_rating",

	// Academic fields
	"cgpa", "cert_count",
}

// FeatureVector is a fixed-shape mapping from feature name to numeric value.
// Every declared column is always present; unavailable signals are zero.
// A vector is built once per evaluation request and treated as immutable.
type FeatureVector map[string]float64

// NewFeatureVector returns a vector with every declared column set to zero.
func NewFeatureVector() FeatureVector {
	v := make(FeatureVector, len(FeatureColumns))
	for _, col := range FeatureColumns {
		v[col] = 0
	}
	return v
}

// Validate ensures the vector has exactly the declared columns. A mismatch
// is a programming error in the extraction pipeline, not a user error.
func (v FeatureVector) Validate() error {
	var missing, extra []string
	for _, col := range FeatureColumns {
		if _, ok := v[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(v) != len(FeatureColumns) {
		declared := make(map[string]struct{}, len(FeatureColumns))
		for _, col := range FeatureColumns {
			declared[col] = struct{}{}
		}
		for key := range v {
			if _, ok := declared[key]; !ok {
				extra = append(extra, key)
			}
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return NewInternalError(fmt.Sprintf(
			"feature vector schema mismatch: missing [%s], extra [%s]",
			strings.Join(missing, ", "), strings.Join(extra, ", ")), nil)
	}
	return nil
}

// Canonical renders the vector in declared column order. Used for cache
// keys and snapshots so identical inputs always produce identical bytes.
func (v FeatureVector) Canonical() string {
	var b strings.Builder
	for i, col := range FeatureColumns {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%s=%g", col, v[col])
	}
	return b.String()
}

// Clone returns an independent copy of the vector.
func (v FeatureVector) Clone() FeatureVector {
	out := make(FeatureVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
