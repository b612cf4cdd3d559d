// Package github implements the read-only issue-tracker client.
//
// Every list operation is fail-soft: transport errors, non-2xx responses and
// malformed bodies degrade to an empty result plus a logged diagnostic, so a
// single unreachable repository never aborts a batch run.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"

	"go.uber.org/zap"
)

const (
	acceptHeader     = "application/vnd.github+json"
	apiVersionHeader = "2022-11-28"
)

// Client talks to the issue-tracker REST API with a bearer credential fixed
// at construction time.
type Client struct {
	log     *zap.SugaredLogger
	http    *http.Client
	apiBase string
	token   string
}

// New constructs a Client. The token may be empty for unauthenticated reads.
func New(log *zap.SugaredLogger, apiBase, token string, timeout time.Duration) *Client {
	return &Client{
		log:     log.Named("github"),
		http:    &http.Client{Timeout: timeout},
		apiBase: apiBase,
		token:   token,
	}
}

// IssuesURL returns the issues endpoint for a repository.
func (c *Client) IssuesURL(author, name string) string {
	return fmt.Sprintf("%s/repos/%s/%s/issues", c.apiBase, author, name)
}

// PullsURL returns the pull-requests endpoint for a repository.
func (c *Client) PullsURL(author, name string) string {
	return fmt.Sprintf("%s/repos/%s/%s/pulls", c.apiBase, author, name)
}

// PullReviewsURL returns the reviews endpoint for one pull request.
func (c *Client) PullReviewsURL(author, name string, number int) string {
	return fmt.Sprintf("%s/repos/%s/%s/pulls/%d/reviews", c.apiBase, author, name, number)
}

// ListOpenAssignedIssues fetches issues from the given endpoint and keeps
// only entries eligible for compliance checking: open, assigned, not draft
// and not a pull request.
func (c *Client) ListOpenAssignedIssues(ctx context.Context, issuesURL string) []entities.Issue {
	issues := c.listIssues(ctx, issuesURL)

	eligible := make([]entities.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.EligibleForCompliance() {
			eligible = append(eligible, issue)
		}
	}
	return eligible
}

// ListAvailableIssues fetches issues and keeps only open, unassigned,
// non-draft, non-PR entries.
func (c *Client) ListAvailableIssues(ctx context.Context, issuesURL string) []entities.Issue {
	issues := c.listIssues(ctx, issuesURL)

	available := make([]entities.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Available() {
			available = append(available, issue)
		}
	}
	return available
}

func (c *Client) listIssues(ctx context.Context, issuesURL string) []entities.Issue {
	var raw []issueDoc
	if err := c.getJSON(ctx, issuesURL, nil, &raw); err != nil {
		c.log.Errorw("failed to fetch issues", "error", err, "url", issuesURL)
		return nil
	}

	issues := make([]entities.Issue, 0, len(raw))
	for _, d := range raw {
		issues = append(issues, d.toEntity())
	}
	return issues
}

// ListIssueEvents fetches the event timeline located at eventsURL.
func (c *Client) ListIssueEvents(ctx context.Context, eventsURL string) []entities.AssignmentEvent {
	var raw []eventDoc
	if err := c.getJSON(ctx, eventsURL, nil, &raw); err != nil {
		c.log.Errorw("failed to fetch issue events", "error", err, "url", eventsURL)
		return nil
	}

	events := make([]entities.AssignmentEvent, 0, len(raw))
	for _, d := range raw {
		events = append(events, d.toEntity())
	}
	return events
}

// ListOpenPullRequests fetches open pull requests. The open state is
// requested explicitly; it is not assumed to be the server default.
func (c *Client) ListOpenPullRequests(ctx context.Context, pullsURL string) []entities.PullRequest {
	var raw []pullDoc
	if err := c.getJSON(ctx, pullsURL, url.Values{"state": {"open"}}, &raw); err != nil {
		c.log.Errorw("failed to fetch pull requests", "error", err, "url", pullsURL)
		return nil
	}

	pulls := make([]entities.PullRequest, 0, len(raw))
	for _, d := range raw {
		pulls = append(pulls, d.toEntity())
	}
	return pulls
}

// ListPullRequestReviews fetches the reviews of one pull request.
func (c *Client) ListPullRequestReviews(ctx context.Context, reviewsURL string) []entities.Review {
	var raw []reviewDoc
	if err := c.getJSON(ctx, reviewsURL, nil, &raw); err != nil {
		c.log.Errorw("failed to fetch pull request reviews", "error", err, "url", reviewsURL)
		return nil
	}

	reviews := make([]entities.Review, 0, len(raw))
	for _, d := range raw {
		reviews = append(reviews, d.toEntity())
	}
	return reviews
}

// OpenAssignedIssues lists compliance-eligible issues of a repository.
func (c *Client) OpenAssignedIssues(ctx context.Context, author, name string) []entities.Issue {
	return c.ListOpenAssignedIssues(ctx, c.IssuesURL(author, name))
}

// AvailableIssues lists open unassigned issues of a repository.
func (c *Client) AvailableIssues(ctx context.Context, author, name string) []entities.Issue {
	return c.ListAvailableIssues(ctx, c.IssuesURL(author, name))
}

// OpenPullRequests lists open pull requests of a repository.
func (c *Client) OpenPullRequests(ctx context.Context, author, name string) []entities.PullRequest {
	return c.ListOpenPullRequests(ctx, c.PullsURL(author, name))
}

// PullRequestReviews lists the reviews of one pull request.
func (c *Client) PullRequestReviews(ctx context.Context, author, name string, number int) []entities.Review {
	return c.ListPullRequestReviews(ctx, c.PullReviewsURL(author, name, number))
}

func (c *Client) getJSON(ctx context.Context, rawURL string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersionHeader)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
