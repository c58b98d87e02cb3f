package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hireready/internal/analyzer"
	"hireready/internal/domain"
	"hireready/internal/logger"

	"go.uber.org/zap"
)

const leetcodeGraphQLURL = "https://leetcode.com/graphql"

const leetcodeStatsQuery = `
query getUserProfile($username: String!) {
    matchedUser(username: $username) {
        submitStatsGlobal {
            acSubmissionNum {
                difficulty
                count
            }
        }
    }
    userContestRanking(username: $username) {
        rating
    }
}`

type leetcodeResponse struct {
	Data struct {
		MatchedUser *struct {
			SubmitStatsGlobal struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
		UserContestRanking *struct {
			Rating float64 `json:"rating"`
		} `json:"userContestRanking"`
	} `json:"data"`
}

// LeetCodeClient fetches solved-problem stats through LeetCode's public
// GraphQL endpoint. It implements domain.LeetCodeFetcher with the same
// fail-soft contract as the GitHub client.
type LeetCodeClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewLeetCodeClient() *LeetCodeClient {
	return &LeetCodeClient{
		endpoint:   leetcodeGraphQLURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchLeetCode collects solved counts per difficulty and the contest
// rating. The username may be a bare name or a profile URL.
func (c *LeetCodeClient) FetchLeetCode(ctx context.Context, username string) domain.LeetCodeMetrics {
	var metrics domain.LeetCodeMetrics

	username = analyzer.CleanLeetCodeUsername(username)
	if username == "" {
		return metrics
	}

	payload, err := json.Marshal(map[string]interface{}{
		"query":     leetcodeStatsQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return metrics
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return metrics
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Get().Warn("leetcode fetch failed, using zero metrics",
			zap.String("username", username), zap.Error(err))
		return metrics
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Get().Warn("leetcode fetch failed, using zero metrics",
			zap.String("username", username),
			zap.Error(fmt.Errorf("status %d", resp.StatusCode)))
		return metrics
	}

	var parsed leetcodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Get().Warn("leetcode response decode failed",
			zap.String("username", username), zap.Error(err))
		return metrics
	}

	if parsed.Data.MatchedUser == nil {
		logger.Get().Debug("leetcode user not found", zap.String("username", username))
		return metrics
	}

	for _, entry := range parsed.Data.MatchedUser.SubmitStatsGlobal.ACSubmissionNum {
		switch entry.Difficulty {
		case "Easy":
			metrics.Easy = entry.Count
		case "Medium":
			metrics.Medium = entry.Count
		case "Hard":
			metrics.Hard = entry.Count
		}
	}
	metrics.Total = metrics.Easy + metrics.Medium + metrics.Hard

	if parsed.Data.UserContestRanking != nil {
		metrics.ContestRating = int(parsed.Data.UserContestRanking.Rating)
	}

	return metrics
}
