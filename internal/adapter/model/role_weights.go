package model

import (
	"context"
	"fmt"
	"sort"

	"hireready/internal/domain"
)

// roleWeights maps each supported role to the feature weights that make
// up its confidence. Weights within a role sum to at most 1, so a
// confidence over saturated features stays in [0, 1].
var roleWeights = map[string]map[string]float64{
	"Backend Developer": {
		"Java":                 0.15,
		"Spring":               0.15,
		"Node":                 0.15,
		"Django":               0.10,
		"Flask":                0.10,
		"SQL":                  0.10,
		"DBMS":                 0.10,
		"internship_backend":   0.10,
		"num_backend_projects": 0.05,
	},
	"Frontend Developer": {
		"React":      0.20,
		"Angular":    0.15,
		"Vue":        0.15,
		"NextJS":     0.10,
		"HTML":       0.10,
		"CSS":        0.10,
		"JavaScript": 0.10,
		"TypeScript": 0.10,
	},
	"Full Stack Developer": {
		"React":                0.15,
		"Node":                 0.15,
		"JavaScript":           0.10,
		"SQL":                  0.10,
		"internship_backend":   0.15,
		"num_backend_projects": 0.15,
		"github_total_repos":   0.20,
	},
	"ML Engineer": {
		"TensorFlow":      0.20,
		"PyTorch":         0.20,
		"Scikit":          0.10,
		"Pandas":          0.10,
		"NLP":             0.10,
		"ComputerVision":  0.10,
		"internship_ai":   0.10,
		"num_ai_projects": 0.10,
	},
	"Data Scientist": {
		"Python":          0.15,
		"Pandas":          0.20,
		"Scikit":          0.20,
		"SQL":             0.10,
		"NLP":             0.10,
		"num_ai_projects": 0.10,
		"leetcode_medium": 0.15,
	},
	"Data Engineer": {
		"SQL":                0.25,
		"Python":             0.15,
		"Pandas":             0.10,
		"AWS":                0.10,
		"GCP":                0.10,
		"num_cloud_projects": 0.15,
		"internship_data":    0.15,
	},
	"Java Developer": {
		"Java":               0.40,
		"Spring":             0.20,
		"OOPS":               0.20,
		"internship_backend": 0.20,
	},
	"Python Developer": {
		"Python":             0.40,
		"Flask":              0.20,
		"Django":             0.20,
		"internship_backend": 0.20,
	},
	"DevOps Engineer": {
		"Docker":             0.20,
		"Kubernetes":         0.20,
		"CI/CD":              0.20,
		"AWS":                0.10,
		"num_cloud_projects": 0.15,
		"internship_cloud":   0.15,
	},
	"Cloud Engineer": {
		"AWS":                0.25,
		"Azure":              0.20,
		"GCP":                0.20,
		"Docker":             0.10,
		"num_cloud_projects": 0.15,
		"internship_cloud":   0.10,
	},
	"Mobile Developer": {
		"Android":             0.30,
		"Flutter":             0.20,
		"ReactNative":         0.20,
		"num_mobile_projects": 0.15,
		"internship_mobile":   0.15,
	},
	"Android Developer": {
		"Android":           0.60,
		"Java":              0.20,
		"internship_mobile": 0.20,
	},
	"iOS Developer": {
		"ReactNative":       0.40,
		"Flutter":           0.20,
		"internship_mobile": 0.20,
		"OOPS":              0.20,
	},
	"QA / Test Engineer": {
		"SystemDesign":       0.30,
		"OOPS":               0.20,
		"leetcode_easy":      0.20,
		"internship_backend": 0.15,
		"github_total_repos": 0.15,
	},
	"Cybersecurity Analyst": {
		"EthicalHacking":        0.30,
		"Cryptography":          0.25,
		"NetworkSecurity":       0.25,
		"num_security_projects": 0.10,
		"internship_security":   0.10,
	},
	"AI Research Engineer": {
		"TensorFlow":    0.20,
		"PyTorch":       0.20,
		"NLP":           0.15,
		"LLM":           0.15,
		"leetcode_hard": 0.20,
		"internship_ai": 0.10,
	},
	"Game Developer": {
		"C++":                  0.40,
		"OS":                   0.20,
		"OOPS":                 0.20,
		"num_backend_projects": 0.20,
	},
	"Blockchain Developer": {
		"Cryptography":         0.30,
		"Go":                   0.20,
		"Rust":                 0.20,
		"num_backend_projects": 0.30,
	},
	"Database Administrator": {
		"SQL":             0.40,
		"DBMS":            0.40,
		"internship_data": 0.20,
	},
	"Systems Engineer": {
		"OS":              0.30,
		"SystemDesign":    0.30,
		"DBMS":            0.20,
		"leetcode_medium": 0.20,
	},
	"UI/UX Designer": {
		"HTML":                0.20,
		"CSS":                 0.20,
		"React":               0.10,
		"num_mobile_projects": 0.10,
		"github_total_repos":  0.10,
		"internship_backend":  0.10,
		"TypeScript":          0.20,
	},
	"Prompt Engineer": {
		"LLM":               0.40,
		"PromptEngineering": 0.40,
		"Python":            0.20,
	},
	"AI Engineer": {
		"TensorFlow":      0.20,
		"PyTorch":         0.20,
		"LLM":             0.20,
		"Scikit":          0.10,
		"num_ai_projects": 0.10,
		"internship_ai":   0.20,
	},
}

// featureSaturation caps count-valued columns before weighting. A value
// at or above its cap contributes a full 1.0; binary flags are already
// in [0, 1] and use the default cap of 1.
var featureSaturation = map[string]float64{
	"num_backend_projects":           5,
	"num_ai_projects":                5,
	"num_mobile_projects":            5,
	"num_cloud_projects":             5,
	"num_security_projects":          5,
	"github_total_repos":             20,
	"github_total_commits":           500,
	"open_source_contribution_score": 100,
	"leetcode_easy":                  100,
	"leetcode_medium":                100,
	"leetcode_hard":                  50,
	"leetcode_total":                 250,
	"leetcode_contest_rating":        2500,
	"cgpa":                           10,
	"cert_count":                     10,
}

// saturate normalizes a feature value into [0, 1].
func saturate(col string, val float64) float64 {
	limit := 1.0
	if c, ok := featureSaturation[col]; ok {
		limit = c
	}
	if val <= 0 {
		return 0
	}
	if val >= limit {
		return 1
	}
	return val / limit
}

// RoleWeightsModel implements domain.RoleModel over the static weight
// table above.
type RoleWeightsModel struct {
	roles []string // sorted, computed once
}

func NewRoleWeightsModel() *RoleWeightsModel {
	roles := make([]string, 0, len(roleWeights))
	for role := range roleWeights {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return &RoleWeightsModel{roles: roles}
}

// Roles lists every supported role in lexical order.
func (m *RoleWeightsModel) Roles() []string {
	out := make([]string, len(m.roles))
	copy(out, m.roles)
	return out
}

// PredictRole returns a confidence in [0, 1] for one role: the weighted
// sum of the role's features after saturation, clamped to the unit range.
func (m *RoleWeightsModel) PredictRole(ctx context.Context, role string, vector domain.FeatureVector) (float64, error) {
	weights, ok := roleWeights[role]
	if !ok {
		return 0, fmt.Errorf("unknown role %q", role)
	}
	if err := vector.Validate(); err != nil {
		return 0, err
	}

	score := 0.0
	for col, weight := range weights {
		score += weight * saturate(col, vector[col])
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}
