// Package entities contains core business entities.
package entities

import "time"

// PullRequest is an open pull request as returned by the remote API. Linkage
// to the issue it resolves exists only by author-matching convention.
type PullRequest struct {
	Number    int
	Title     string
	State     string
	Author    string
	CreatedAt time.Time
}

// Review is a single pull-request review.
type Review struct {
	Reviewer string
	State    string
}

// ReviewBundle groups the reviews of one pull request for notification.
// Bundles are built only when at least one review exists.
type ReviewBundle struct {
	Repo      string
	PullTitle string
	Reviews   []Review
}
