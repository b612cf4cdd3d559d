package engine

import (
	"context"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

// FindViolations classifies a repository's eligible issues and returns the
// overdue ones in their original issue order. An issue violates when its
// current assignment is at least one day old and the assignee holds no open
// pull request in the repository. A failed fetch on either side degrades to
// an empty collection; a transient PR fetch failure therefore over-reports
// violations rather than hiding them.
func (e *Engine) FindViolations(ctx context.Context, repo entities.TrackedRepository) []entities.ComplianceRecord {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	issues := e.tracker.OpenAssignedIssues(ctx, repo.Author, repo.Name)
	authors := e.openPullAuthors(ctx, repo)
	now := e.now()

	records := make([]entities.ComplianceRecord, 0)
	for _, issue := range issues {
		assignment := e.resolveAssignment(ctx, issue)
		if !assignment.Resolved() {
			continue
		}

		elapsed := Elapsed(now, assignment.AssignedAt)
		if elapsed.Days < 1 {
			continue
		}
		if e.activelyWorking(assignment.Assignee, authors) {
			continue
		}

		records = append(records, entities.ComplianceRecord{
			Title:      issue.Title,
			HTMLURL:    issue.HTMLURL,
			Assignee:   assignment.Assignee,
			AssignedAt: assignment.AssignedAt,
			Elapsed:    elapsed,
		})
	}

	e.log.Infow("compliance check finished",
		"repo", repo.FullName(),
		"issues", len(issues),
		"violations", len(records),
	)
	return records
}

func (e *Engine) openPullAuthors(ctx context.Context, repo entities.TrackedRepository) map[string]struct{} {
	pulls := e.tracker.OpenPullRequests(ctx, repo.Author, repo.Name)

	authors := make(map[string]struct{}, len(pulls))
	for _, pull := range pulls {
		if pull.Author != "" {
			authors[pull.Author] = struct{}{}
		}
	}
	return authors
}

// activelyWorking reports whether the assignee counts as working on their
// issue. The rule is author-matching only: any open pull request by that
// login in the repository counts, no matter which issue it targets. A
// stricter linkage (say, a PR body referencing the issue number) would
// replace this predicate alone.
func (e *Engine) activelyWorking(assignee string, openPullAuthors map[string]struct{}) bool {
	_, ok := openPullAuthors[assignee]
	return ok
}
