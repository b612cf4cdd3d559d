package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(zap.NewNop().Sugar(), srv.URL, "test-token", 5*time.Second)
}

const issuesBody = `[
	{"number": 1, "title": "Eligible", "state": "open", "html_url": "https://example.com/1",
	 "events_url": "https://example.com/1/events", "assignee": {"login": "alice"}},
	{"number": 2, "title": "Closed", "state": "closed", "assignee": {"login": "bob"}},
	{"number": 3, "title": "Unassigned", "state": "open"},
	{"number": 4, "title": "Draft", "state": "open", "draft": true, "assignee": {"login": "carol"}},
	{"number": 5, "title": "A pull request", "state": "open", "assignee": {"login": "dave"},
	 "pull_request": {"url": "https://example.com/pulls/5"}}
]`

func TestOpenAssignedIssuesFiltersEligibility(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/acme/widgets/issues", r.URL.Path)
		require.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		require.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(issuesBody))
	})

	issues := c.OpenAssignedIssues(context.Background(), "acme", "widgets")
	require.Len(t, issues, 1)
	require.Equal(t, "Eligible", issues[0].Title)
	require.Equal(t, "alice", issues[0].Assignee)
}

func TestAvailableIssuesKeepsOnlyUnassigned(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(issuesBody))
	})

	issues := c.AvailableIssues(context.Background(), "acme", "widgets")
	require.Len(t, issues, 1)
	require.Equal(t, "Unassigned", issues[0].Title)
}

func TestListIssueEvents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"event": "labeled", "created_at": "2024-06-01T10:00:00Z"},
			{"event": "assigned", "assignee": {"login": "alice"}, "created_at": "2024-06-02T10:00:00Z"}
		]`))
	})

	events := c.ListIssueEvents(context.Background(), c.apiBase+"/events")
	require.Len(t, events, 2)
	require.Equal(t, "labeled", events[0].Kind)
	require.Equal(t, "assigned", events[1].Kind)
	require.Equal(t, "alice", events[1].Assignee)
	require.Equal(t, time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC), events[1].CreatedAt)
}

func TestOpenPullRequestsRequestsOpenState(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/acme/widgets/pulls", r.URL.Path)
		require.Equal(t, "open", r.URL.Query().Get("state"))
		_, _ = w.Write([]byte(`[{"number": 9, "title": "Work", "state": "open", "user": {"login": "alice"}}]`))
	})

	pulls := c.OpenPullRequests(context.Background(), "acme", "widgets")
	require.Len(t, pulls, 1)
	require.Equal(t, 9, pulls[0].Number)
	require.Equal(t, "alice", pulls[0].Author)
}

func TestPullRequestReviews(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/acme/widgets/pulls/9/reviews", r.URL.Path)
		_, _ = w.Write([]byte(`[{"user": {"login": "dave"}, "state": "APPROVED"}]`))
	})

	reviews := c.PullRequestReviews(context.Background(), "acme", "widgets", 9)
	require.Len(t, reviews, 1)
	require.Equal(t, "dave", reviews[0].Reviewer)
	require.Equal(t, "APPROVED", reviews[0].State)
}

func TestFailSoftOnServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	require.Empty(t, c.OpenAssignedIssues(context.Background(), "acme", "widgets"))
	require.Empty(t, c.OpenPullRequests(context.Background(), "acme", "widgets"))
	require.Empty(t, c.ListIssueEvents(context.Background(), c.apiBase+"/events"))
}

func TestFailSoftOnMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"`))
	})

	require.Empty(t, c.OpenAssignedIssues(context.Background(), "acme", "widgets"))
}

func TestFailSoftOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(zap.NewNop().Sugar(), srv.URL, "", time.Second)

	require.Empty(t, c.OpenAssignedIssues(context.Background(), "acme", "widgets"))
}
