package analyzer

import (
	"testing"

	"hireready/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeatureVector_EmptyInputs(t *testing.T) {
	vec, err := BuildFeatureVector("", domain.GitHubMetrics{}, domain.LeetCodeMetrics{}, domain.AcademicFields{})
	require.NoError(t, err)

	assert.Len(t, vec, len(domain.FeatureColumns))
	for col, val := range vec {
		assert.Zero(t, val, "column %s", col)
	}
}

func TestBuildFeatureVector_ResumeSkills(t *testing.T) {
	vec, err := BuildFeatureVector(
		"Expert in TensorFlow and PyTorch for deep learning.",
		domain.GitHubMetrics{}, domain.LeetCodeMetrics{}, domain.AcademicFields{},
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0, vec["TensorFlow"])
	assert.Equal(t, 1.0, vec["PyTorch"])
}

func TestBuildFeatureVector_GitHubCountsAdditive(t *testing.T) {
	github := domain.GitHubMetrics{
		TotalRepos:        12,
		TotalCommits:      340,
		ContributionScore: 57,
		ProjectCounts:     map[string]int{"num_backend_projects": 3},
	}
	vec, err := BuildFeatureVector(
		"Project: built a backend server.",
		github, domain.LeetCodeMetrics{}, domain.AcademicFields{},
	)
	require.NoError(t, err)

	// Resume counted at least one backend project; GitHub adds three more.
	assert.GreaterOrEqual(t, vec["num_backend_projects"], 4.0)
	assert.Equal(t, 12.0, vec["github_total_repos"])
	assert.Equal(t, 340.0, vec["github_total_commits"])
	assert.Equal(t, 57.0, vec["open_source_contribution_score"])
}

func TestBuildFeatureVector_LeetCodeMetrics(t *testing.T) {
	leetcode := domain.LeetCodeMetrics{Easy: 80, Medium: 45, Hard: 5, Total: 130, ContestRating: 1512}
	vec, err := BuildFeatureVector("", domain.GitHubMetrics{}, leetcode, domain.AcademicFields{})
	require.NoError(t, err)

	assert.Equal(t, 80.0, vec["leetcode_easy"])
	assert.Equal(t, 45.0, vec["leetcode_medium"])
	assert.Equal(t, 5.0, vec["leetcode_hard"])
	assert.Equal(t, 130.0, vec["leetcode_total"])
	assert.Equal(t, 1512.0, vec["leetcode_contest_rating"])
}

func TestBuildFeatureVector_AcademicFields(t *testing.T) {
	cgpa := 8.4
	academic := domain.AcademicFields{
		CGPA:           &cgpa,
		Certifications: []string{"AWS Certified", " aws certified ", "CKA"},
	}
	vec, err := BuildFeatureVector("", domain.GitHubMetrics{}, domain.LeetCodeMetrics{}, academic)
	require.NoError(t, err)

	assert.Equal(t, 8.4, vec["cgpa"])
	// Duplicate certifications collapse after normalization.
	assert.Equal(t, 2.0, vec["cert_count"])
}

func TestCleanGitHubUsername(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"octocat", "octocat"},
		{"https://github.com/octocat", "octocat"},
		{"http://github.com/octocat/", "octocat"},
		{"github.com/octocat/repos", "octocat"},
		{"  https://github.com/octocat/  ", "octocat"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanGitHubUsername(tc.input), "input %q", tc.input)
	}
}

func TestCleanLeetCodeUsername(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"neetcode", "neetcode"},
		{"https://leetcode.com/u/neetcode/", "neetcode"},
		{"https://leetcode.com/neetcode", "neetcode"},
		{"leetcode.com/u/neetcode", "neetcode"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanLeetCodeUsername(tc.input), "input %q", tc.input)
	}
}
