package engine

import (
	"context"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

const assignedEventKind = "assigned"

// resolveAssignment replays an issue's event timeline and returns the
// current assignment tenure. An issue may be reassigned; only the last
// assignment event starts the deadline clock, so every earlier event is
// discarded. When the timeline carries no assignment event the zero
// Assignment is returned even if the issue's own assignee field is set,
// since that inconsistency means "deadline unknown", not "deadline now".
func (e *Engine) resolveAssignment(ctx context.Context, issue entities.Issue) entities.Assignment {
	var current entities.Assignment
	for _, event := range e.tracker.ListIssueEvents(ctx, issue.EventsURL) {
		if event.Kind != assignedEventKind {
			continue
		}
		current = entities.Assignment{
			Assignee:   event.Assignee,
			AssignedAt: event.CreatedAt,
		}
	}
	return current
}
