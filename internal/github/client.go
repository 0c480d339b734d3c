// Package github provides a minimal client for the GitHub repository listing API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prasad-s-h/dev-connector/internal/models"
)

// Client lists a user's public repositories. It holds no state beyond the
// HTTP client and endpoint configuration.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient returns a Client for the given API base URL (e.g.
// https://api.github.com) identifying itself with userAgent.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

type repo struct {
	Name string `json:"name"`
}

// ListRepos returns the names of username's public repositories. A non-2xx
// upstream response is reported as NotFound; transport failures surface as
// internal errors.
func (c *Client) ListRepos(ctx context.Context, username string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, models.NewNotFoundError("GitHub profile not found")
	}

	var repos []repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, models.NewInternalError(err)
	}

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	return names, nil
}
