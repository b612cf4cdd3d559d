package engine

import (
	"context"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
	"github.com/ekumamatthew/hackathon-bot/internal/notify"
)

// TimeBeforeDeadline renders the countdown for one issue: it resolves the
// current assignment, looks the owning repository's time limit up and
// reports the remaining whole days and hours, or an explicit sentinel when
// the issue is unassigned, the repository unknown, or the deadline passed.
func (e *Engine) TimeBeforeDeadline(ctx context.Context, issue entities.Issue) string {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	assignment := e.resolveAssignment(ctx, issue)
	if !assignment.Resolved() {
		return notify.NotAssignedMessage
	}

	author, name, ok := issue.Repository()
	if !ok {
		return notify.RepositoryNotFoundMessage
	}

	repo, err := e.repo.GetRepository(ctx, author, name)
	if err != nil {
		e.log.Errorw("failed to look repository up", "error", err, "repo", author+"/"+name)
		return notify.RepositoryNotFoundMessage
	}

	span, ok := Remaining(e.now(), assignment.AssignedAt, repo.TimeLimit())
	if !ok {
		return notify.DeadlinePassedMessage
	}
	return notify.RemainingTime(span)
}

// DeadlineReport renders the countdown of every open assigned issue in a
// repository, one status line per issue.
func (e *Engine) DeadlineReport(ctx context.Context, repo entities.TrackedRepository) []entities.DeadlineStatus {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	issues := e.tracker.OpenAssignedIssues(ctx, repo.Author, repo.Name)

	statuses := make([]entities.DeadlineStatus, 0, len(issues))
	for _, issue := range issues {
		statuses = append(statuses, entities.DeadlineStatus{
			Title:    issue.Title,
			HTMLURL:  issue.HTMLURL,
			Assignee: issue.Assignee,
			Status:   e.TimeBeforeDeadline(ctx, issue),
		})
	}
	return statuses
}

// AvailableIssues lists a repository's open unassigned issues.
func (e *Engine) AvailableIssues(ctx context.Context, repo entities.TrackedRepository) []entities.Issue {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	return e.tracker.AvailableIssues(ctx, repo.Author, repo.Name)
}
