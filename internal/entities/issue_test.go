package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueEligibleForCompliance(t *testing.T) {
	base := Issue{State: "open", Assignee: "alice"}
	require.True(t, base.EligibleForCompliance())

	closed := base
	closed.State = "closed"
	require.False(t, closed.EligibleForCompliance())

	unassigned := base
	unassigned.Assignee = ""
	require.False(t, unassigned.EligibleForCompliance())

	draft := base
	draft.Draft = true
	require.False(t, draft.EligibleForCompliance())

	pull := base
	pull.IsPullRequest = true
	require.False(t, pull.EligibleForCompliance())
}

func TestIssueAvailable(t *testing.T) {
	require.True(t, Issue{State: "open"}.Available())
	require.False(t, Issue{State: "open", Assignee: "alice"}.Available())
	require.False(t, Issue{State: "closed"}.Available())
}

func TestIssueRepository(t *testing.T) {
	author, name, ok := Issue{RepositoryURL: "https://api.github.com/repos/acme/widgets"}.Repository()
	require.True(t, ok)
	require.Equal(t, "acme", author)
	require.Equal(t, "widgets", name)

	_, _, ok = Issue{}.Repository()
	require.False(t, ok)

	author, name, ok = Issue{RepositoryURL: "https://api.github.com/repos/acme/widgets/"}.Repository()
	require.True(t, ok)
	require.Equal(t, "acme", author)
	require.Equal(t, "widgets", name)
}

func TestAssignmentResolved(t *testing.T) {
	require.False(t, Assignment{}.Resolved())
	require.False(t, Assignment{Assignee: "alice"}.Resolved())
	require.True(t, Assignment{Assignee: "alice", AssignedAt: time.Now()}.Resolved())
}

func TestTrackedRepositoryTimeLimit(t *testing.T) {
	require.Equal(t, int64(DefaultTimeLimitSeconds), TrackedRepository{}.TimeLimit())
	require.Equal(t, int64(7200), TrackedRepository{TimeLimitSeconds: 7200}.TimeLimit())
}
