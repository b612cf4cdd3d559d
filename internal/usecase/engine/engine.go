// Package engine implements the deadline compliance engine: it reconciles
// issues, assignment timelines and open pull requests into per-issue
// violation verdicts and drives the notification pipeline.
package engine

import (
	"context"
	"time"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
	"github.com/ekumamatthew/hackathon-bot/internal/repository"

	"go.uber.org/zap"
)

// TrackerClient is the read-only slice of the issue tracker the engine
// consumes. All operations are fail-soft and return empty results on any
// remote failure.
type TrackerClient interface {
	OpenAssignedIssues(ctx context.Context, author, name string) []entities.Issue
	AvailableIssues(ctx context.Context, author, name string) []entities.Issue
	ListIssueEvents(ctx context.Context, eventsURL string) []entities.AssignmentEvent
	OpenPullRequests(ctx context.Context, author, name string) []entities.PullRequest
	PullRequestReviews(ctx context.Context, author, name string, number int) []entities.Review
}

// Dispatcher renders engine output and hands it to the message sink.
type Dispatcher interface {
	SendGreeting(ctx context.Context, chatID, mention string)
	SendComplianceReport(ctx context.Context, chatID string, repo entities.TrackedRepository, records []entities.ComplianceRecord)
	SendAvailableIssues(ctx context.Context, chatID string, repo entities.TrackedRepository, issues []entities.Issue)
	SendRevisions(ctx context.Context, chatID string, bundles []entities.ReviewBundle)
}

// Engine holds the engine's collaborators. It keeps no state between runs:
// every classification is computed from data fetched fresh within the call.
type Engine struct {
	ctx        context.Context
	log        *zap.SugaredLogger
	repo       repository.Repository
	tracker    TrackerClient
	dispatcher Dispatcher
	timeout    time.Duration
	now        func() time.Time
}

// New constructs the engine with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	tracker TrackerClient,
	dispatcher Dispatcher,
	timeout time.Duration,
) *Engine {
	return &Engine{
		ctx:        ctx,
		log:        log.Named("engine"),
		repo:       repo,
		tracker:    tracker,
		dispatcher: dispatcher,
		timeout:    timeout,
		now:        time.Now,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
