package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"time"

	"hireready/internal/analyzer"
	"hireready/internal/domain"
	"hireready/internal/logger"

	"go.uber.org/zap"
)

const githubAPIBase = "https://api.github.com"

// Pagination guards: 100 repos per page, at most 10 pages, and commit
// counts sampled from the 10 most recently pushed repos.
const (
	reposPerPage    = 100
	maxRepoPages    = 10
	commitSampleTop = 10
)

// languageToCategory maps a repo's primary language to a project-count
// feature column.
var languageToCategory = map[string]string{
	"Java":   "num_backend_projects",
	"Go":     "num_backend_projects",
	"Ruby":   "num_backend_projects",
	"PHP":    "num_backend_projects",
	"Elixir": "num_backend_projects",
	"Scala":  "num_backend_projects",
	"Rust":   "num_backend_projects",
	"C#":     "num_backend_projects",

	"Jupyter Notebook": "num_ai_projects",
	"R":                "num_ai_projects",

	"Kotlin":      "num_mobile_projects",
	"Swift":       "num_mobile_projects",
	"Dart":        "num_mobile_projects",
	"Objective-C": "num_mobile_projects",

	"HCL":        "num_cloud_projects",
	"Dockerfile": "num_cloud_projects",

	"Assembly": "num_security_projects",
}

// ambiguousLanguages can belong to several categories; repos in them are
// classified by name/description hints instead, falling back to backend.
var ambiguousLanguages = map[string]struct{}{
	"Python":     {},
	"JavaScript": {},
	"TypeScript": {},
	"C":          {},
	"C++":        {},
	"Shell":      {},
}

type repoHint struct {
	pattern  *regexp.Regexp
	category string
}

// Hint order matters: the first matching pattern wins.
var repoHints = []repoHint{
	{regexp.MustCompile(`ml|machine[\s\-]?learn|deep[\s\-]?learn|neural|nlp|cv|vision|ai|tensor|torch|model`), "num_ai_projects"},
	{regexp.MustCompile(`mobile|android|ios|flutter|react[\s\-]?native|app`), "num_mobile_projects"},
	{regexp.MustCompile(`cloud|aws|azure|gcp|terraform|infra|deploy|devops|k8s|kubernetes`), "num_cloud_projects"},
	{regexp.MustCompile(`secur|hack|pentest|vuln|crypt|firewall`), "num_security_projects"},
}

var lastPageRe = regexp.MustCompile(`page=(\d+)>; rel="last"`)

type githubRepo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Fork        bool   `json:"fork"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	PushedAt    string `json:"pushed_at"`
}

// GitHubClient fetches public-profile metrics through the GitHub REST
// API. It implements domain.GitHubFetcher: any upstream failure resolves
// to zero metrics so an evaluation can proceed on the remaining signals.
type GitHubClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewGitHubClient creates a client against the public GitHub API. The
// token is optional; without it the client runs at unauthenticated rate
// limits.
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		baseURL:    githubAPIBase,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchGitHub collects repo, commit, and contribution metrics for the
// given username. The username may be a bare name or a profile URL.
func (c *GitHubClient) FetchGitHub(ctx context.Context, username string) domain.GitHubMetrics {
	metrics := domain.GitHubMetrics{ProjectCounts: map[string]int{}}

	username = analyzer.CleanGitHubUsername(username)
	if username == "" {
		return metrics
	}

	repos, err := c.fetchAllRepos(ctx, username)
	if err != nil {
		logger.Get().Warn("github fetch failed, using zero metrics",
			zap.String("username", username), zap.Error(err))
		return metrics
	}

	metrics.TotalRepos = len(repos)

	nonForkCount := 0
	totalStars := 0
	totalForks := 0

	for _, repo := range repos {
		totalStars += repo.Stars
		totalForks += repo.Forks
		if !repo.Fork {
			nonForkCount++
		}
		if category := classifyRepo(repo); category != "" {
			metrics.ProjectCounts[category]++
		}
	}

	// Commit counts are expensive (one request per repo), so sample the
	// most recently pushed repos and extrapolate across the rest.
	sorted := make([]githubRepo, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PushedAt > sorted[j].PushedAt
	})
	if len(sorted) > commitSampleTop {
		sorted = sorted[:commitSampleTop]
	}

	totalCommits := 0
	for _, repo := range sorted {
		if repo.FullName != "" {
			totalCommits += c.fetchRepoCommitCount(ctx, username, repo.FullName)
		}
	}
	if len(repos) > commitSampleTop && len(sorted) > 0 {
		avg := float64(totalCommits) / float64(len(sorted))
		totalCommits = int(avg * float64(len(repos)))
	}
	metrics.TotalCommits = totalCommits

	// Weighted contribution score: forks of someone's repo signal more
	// impact than stars, stars more than mere repo count.
	metrics.ContributionScore = nonForkCount + totalStars*2 + totalForks*3 + totalCommits/10

	logger.Get().Debug("github metrics fetched",
		zap.String("username", username),
		zap.Int("repos", metrics.TotalRepos),
		zap.Int("commits", metrics.TotalCommits),
		zap.Int("contribution_score", metrics.ContributionScore))

	return metrics
}

func classifyRepo(repo githubRepo) string {
	if category, ok := languageToCategory[repo.Language]; ok {
		return category
	}
	_, ambiguous := ambiguousLanguages[repo.Language]
	if !ambiguous && repo.Language != "" {
		return ""
	}

	nameDesc := repo.Name + " " + repo.Description
	for _, hint := range repoHints {
		if hint.pattern.MatchString(nameDesc) {
			return hint.category
		}
	}
	if ambiguous {
		return "num_backend_projects"
	}
	return ""
}

func (c *GitHubClient) fetchAllRepos(ctx context.Context, username string) ([]githubRepo, error) {
	var all []githubRepo
	for page := 1; page <= maxRepoPages; page++ {
		reqURL := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username),
			url.Values{
				"per_page": {fmt.Sprint(reposPerPage)},
				"page":     {fmt.Sprint(page)},
				"type":     {"owner"},
			}.Encode())

		var repos []githubRepo
		if _, err := c.getJSON(ctx, reqURL, &repos); err != nil {
			return nil, err
		}
		if len(repos) == 0 {
			break
		}
		all = append(all, repos...)
	}
	return all, nil
}

// fetchRepoCommitCount asks for one commit per page and reads the total
// from the Link header's last page. Failures count as zero commits.
func (c *GitHubClient) fetchRepoCommitCount(ctx context.Context, username, fullName string) int {
	reqURL := fmt.Sprintf("%s/repos/%s/commits?%s", c.baseURL, fullName,
		url.Values{
			"author":   {username},
			"per_page": {"1"},
		}.Encode())

	var commits []json.RawMessage
	header, err := c.getJSON(ctx, reqURL, &commits)
	if err != nil {
		logger.Get().Debug("commit count fetch failed",
			zap.String("repo", fullName), zap.Error(err))
		return 0
	}

	if m := lastPageRe.FindStringSubmatch(header.Get("Link")); m != nil {
		var count int
		fmt.Sscanf(m[1], "%d", &count)
		return count
	}
	return len(commits)
}

func (c *GitHubClient) getJSON(ctx context.Context, reqURL string, out interface{}) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned status %d for %s", resp.StatusCode, reqURL)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("failed to decode github response: %w", err)
	}
	return resp.Header, nil
}
