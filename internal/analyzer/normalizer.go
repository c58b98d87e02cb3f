package analyzer

import (
	"strings"

	"hireready/internal/domain"
	"hireready/internal/util"
)

// BuildFeatureVector fuses resume text, activity metrics, and academic
// fields into the canonical feature vector.
//
// Merge policy, in source order:
//  1. Resume text sets skill and internship flags and seeds project counts.
//  2. GitHub project counts add on top of resume counts so both sources
//     contribute; repo/commit/contribution metrics come from GitHub alone.
//  3. LeetCode metrics do not overlap with other sources.
//  4. Academic fields fill cgpa and cert_count.
//
// Unavailable signals stay at zero: partial upstream failure degrades the
// vector but never produces an error or a missing key. The only error
// path is a schema violation, which is a bug in this package rather than
// bad input.
func BuildFeatureVector(
	resumeText string,
	github domain.GitHubMetrics,
	leetcode domain.LeetCodeMetrics,
	academic domain.AcademicFields,
) (domain.FeatureVector, error) {
	features := ExtractResumeFeatures(resumeText)

	for category, count := range github.ProjectCounts {
		if _, ok := features[category]; ok {
			features[category] += float64(count)
		}
	}
	features["github_total_repos"] = float64(github.TotalRepos)
	features["github_total_commits"] = float64(github.TotalCommits)
	features["open_source_contribution_score"] = float64(github.ContributionScore)

	features["leetcode_easy"] = float64(leetcode.Easy)
	features["leetcode_medium"] = float64(leetcode.Medium)
	features["leetcode_hard"] = float64(leetcode.Hard)
	features["leetcode_total"] = float64(leetcode.Total)
	features["leetcode_contest_rating"] = float64(leetcode.ContestRating)

	if academic.CGPA != nil {
		features["cgpa"] = *academic.CGPA
	}
	features["cert_count"] = float64(len(util.NormalizeSet(academic.Certifications)))

	if err := features.Validate(); err != nil {
		return nil, err
	}
	return features, nil
}

// CleanGitHubUsername extracts a plain username from user input, which may
// be a bare name or a profile URL.
func CleanGitHubUsername(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	lower := strings.ToLower(raw)
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/"} {
		if strings.HasPrefix(lower, prefix) {
			raw = raw[len(prefix):]
			break
		}
	}
	// Keep only the first path segment (drop /repos, /stars, ...).
	return strings.TrimSpace(strings.SplitN(raw, "/", 2)[0])
}

// CleanLeetCodeUsername extracts a plain username from a bare name or a
// leetcode.com profile URL.
func CleanLeetCodeUsername(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	lower := strings.ToLower(raw)
	for _, prefix := range []string{
		"https://leetcode.com/u/", "https://leetcode.com/",
		"http://leetcode.com/u/", "http://leetcode.com/",
		"leetcode.com/u/", "leetcode.com/",
	} {
		if strings.HasPrefix(lower, prefix) {
			raw = raw[len(prefix):]
			break
		}
	}
	return strings.TrimSpace(strings.SplitN(raw, "/", 2)[0])
}
