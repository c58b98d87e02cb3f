package activity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestGitHubClient(serverURL string) *GitHubClient {
	return &GitHubClient{
		baseURL:    serverURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestFetchGitHub_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/users/octocat/repos"):
			assert.Equal(t, "owner", r.URL.Query().Get("type"))
			if r.URL.Query().Get("page") != "1" {
				json.NewEncoder(w).Encode([]githubRepo{})
				return
			}
			json.NewEncoder(w).Encode([]githubRepo{
				{Name: "api-server", FullName: "octocat/api-server", Language: "Go",
					Stars: 3, Forks: 1, PushedAt: "2025-06-01T00:00:00Z"},
				{Name: "ml-classifier", FullName: "octocat/ml-classifier", Language: "Python",
					PushedAt: "2025-05-01T00:00:00Z"},
				{Name: "forked-lib", FullName: "octocat/forked-lib", Language: "TeX",
					Fork: true, PushedAt: "2025-04-01T00:00:00Z"},
			})
		case strings.HasPrefix(r.URL.Path, "/repos/octocat/"):
			// Single commit, no Link header: total commits = page length.
			json.NewEncoder(w).Encode([]map[string]string{{"sha": "abc"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestGitHubClient(server.URL)
	metrics := client.FetchGitHub(context.Background(), "octocat")

	assert.Equal(t, 3, metrics.TotalRepos)
	assert.Equal(t, 3, metrics.TotalCommits)
	assert.Equal(t, 1, metrics.ProjectCounts["num_backend_projects"]) // Go repo
	assert.Equal(t, 1, metrics.ProjectCounts["num_ai_projects"])      // Python repo with ml hint
	// 2 non-forks + 3 stars * 2 + 1 fork * 3 + 3 commits / 10
	assert.Equal(t, 11, metrics.ContributionScore)
}

func TestFetchGitHub_CommitCountFromLinkHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/users/octocat/repos"):
			if r.URL.Query().Get("page") != "1" {
				json.NewEncoder(w).Encode([]githubRepo{})
				return
			}
			json.NewEncoder(w).Encode([]githubRepo{
				{Name: "busy-repo", FullName: "octocat/busy-repo", Language: "Go",
					PushedAt: "2025-06-01T00:00:00Z"},
			})
		case strings.HasPrefix(r.URL.Path, "/repos/octocat/busy-repo/commits"):
			w.Header().Set("Link", `<https://api.github.com/x?page=142>; rel="last"`)
			json.NewEncoder(w).Encode([]map[string]string{{"sha": "abc"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestGitHubClient(server.URL)
	metrics := client.FetchGitHub(context.Background(), "octocat")

	assert.Equal(t, 142, metrics.TotalCommits)
}

func TestFetchGitHub_ProfileURLInput(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/users/") {
			gotPath = r.URL.Path
		}
		json.NewEncoder(w).Encode([]githubRepo{})
	}))
	defer server.Close()

	client := newTestGitHubClient(server.URL)
	client.FetchGitHub(context.Background(), "https://github.com/octocat")

	assert.Equal(t, "/users/octocat/repos", gotPath)
}

func TestFetchGitHub_APIFailureReturnsZeroMetrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestGitHubClient(server.URL)
	metrics := client.FetchGitHub(context.Background(), "octocat")

	assert.Zero(t, metrics.TotalRepos)
	assert.Zero(t, metrics.TotalCommits)
	assert.Zero(t, metrics.ContributionScore)
	assert.Empty(t, metrics.ProjectCounts)
}

func TestFetchGitHub_EmptyUsername(t *testing.T) {
	client := NewGitHubClient("")
	metrics := client.FetchGitHub(context.Background(), "   ")
	assert.Zero(t, metrics.TotalRepos)
}

func TestClassifyRepo(t *testing.T) {
	cases := []struct {
		name string
		repo githubRepo
		want string
	}{
		{"mapped language", githubRepo{Language: "Kotlin"}, "num_mobile_projects"},
		{"ambiguous with ai hint", githubRepo{Language: "Python", Name: "nlp-toolkit"}, "num_ai_projects"},
		{"ambiguous no hint", githubRepo{Language: "Shell", Name: "dotfiles"}, "num_backend_projects"},
		{"no language with cloud hint", githubRepo{Description: "terraform modules"}, "num_cloud_projects"},
		{"unmapped language", githubRepo{Language: "TeX", Name: "thesis"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyRepo(tc.repo))
		})
	}
}
