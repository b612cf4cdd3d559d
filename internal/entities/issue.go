// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// Issue is a tracker issue as returned by the remote API. Issues and pull
// requests share one numbering space; IsPullRequest marks entries that are
// really PRs and must be excluded from issue processing.
type Issue struct {
	Number        int
	Title         string
	State         string
	Body          string
	HTMLURL       string
	EventsURL     string
	RepositoryURL string
	Creator       string
	Assignee      string
	Draft         bool
	IsPullRequest bool
}

// EligibleForCompliance reports whether the issue can be deadline-checked:
// open, assigned, not a draft and not a pull request.
func (i Issue) EligibleForCompliance() bool {
	return i.State == "open" && i.Assignee != "" && !i.Draft && !i.IsPullRequest
}

// Available reports whether the issue is open and free to pick up.
func (i Issue) Available() bool {
	return i.State == "open" && i.Assignee == "" && !i.Draft && !i.IsPullRequest
}

// Repository derives the owning repository from the issue's repository URL.
// ok is false when the URL is absent or too short to carry author and name.
func (i Issue) Repository() (author, name string, ok bool) {
	parts := strings.Split(strings.TrimRight(i.RepositoryURL, "/"), "/")
	if len(parts) < 2 {
		return "", "", false
	}
	author, name = parts[len(parts)-2], parts[len(parts)-1]
	return author, name, author != "" && name != ""
}

// AssignmentEvent is one entry of an issue's event timeline. Only events
// with Kind == "assigned" are consumed.
type AssignmentEvent struct {
	Kind      string
	Assignee  string
	CreatedAt time.Time
}

// Assignment is a resolved assignment tenure: who currently holds the issue
// and when that tenure started. The zero value means "no assignment found".
type Assignment struct {
	Assignee   string
	AssignedAt time.Time
}

// Resolved reports whether an assignment event was found in the timeline.
func (a Assignment) Resolved() bool {
	return a.Assignee != "" && !a.AssignedAt.IsZero()
}
