// Package notify renders engine output into chat messages and hands them to
// a message sink. Sends are fire-and-forget: a failed send is logged and
// never retried.
package notify

import (
	"context"
	"strings"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"

	"go.uber.org/zap"
)

// Sink delivers one rendered message to a chat identity.
type Sink interface {
	Send(ctx context.Context, chatID, text string) error
}

// Dispatcher formats engine output and forwards it to the sink, one send per
// logical unit: per repository for compliance reports, one aggregate send
// for revision reports. It never batches across recipients.
type Dispatcher struct {
	log  *zap.SugaredLogger
	sink Sink
}

// NewDispatcher constructs a Dispatcher bound to a sink.
func NewDispatcher(log *zap.SugaredLogger, sink Sink) *Dispatcher {
	return &Dispatcher{
		log:  log.Named("dispatcher"),
		sink: sink,
	}
}

// SendGreeting welcomes a freshly linked recipient.
func (d *Dispatcher) SendGreeting(ctx context.Context, chatID, mention string) {
	d.deliver(ctx, chatID, Greeting(mention))
}

// SendComplianceReport sends one repository's violations. Zero violations
// produce the explicit no-missed-deadlines sentinel, never silence.
func (d *Dispatcher) SendComplianceReport(
	ctx context.Context,
	chatID string,
	repo entities.TrackedRepository,
	records []entities.ComplianceRecord,
) {
	var b strings.Builder
	b.WriteString(RepoHeader(repo.Author, repo.Name))

	if len(records) == 0 {
		b.WriteString(noMissedDeadlinesMessage)
	}
	for _, rec := range records {
		b.WriteString(IssueDetail(rec))
	}

	d.deliver(ctx, chatID, quote(b.String()))
}

// SendAvailableIssues sends one repository's open unassigned issues.
func (d *Dispatcher) SendAvailableIssues(
	ctx context.Context,
	chatID string,
	repo entities.TrackedRepository,
	issues []entities.Issue,
) {
	var b strings.Builder
	b.WriteString(RepoHeader(repo.Author, repo.Name))

	if len(issues) == 0 {
		b.WriteString(noAvailableIssuesMessage)
	}
	for _, issue := range issues {
		b.WriteString(IssueSummary(issue))
	}

	d.deliver(ctx, chatID, quote(b.String()))
}

// SendRevisions sends all review bundles in a single message. Nothing is
// sent when no bundle carries a review.
func (d *Dispatcher) SendRevisions(ctx context.Context, chatID string, bundles []entities.ReviewBundle) {
	if len(bundles) == 0 {
		return
	}

	var b strings.Builder
	for _, bundle := range bundles {
		b.WriteString(RevisionBlock(bundle))
	}

	d.deliver(ctx, chatID, quote(b.String()))
}

func (d *Dispatcher) deliver(ctx context.Context, chatID, text string) {
	if err := d.sink.Send(ctx, chatID, text); err != nil {
		d.log.Errorw("failed to send message", "error", err, "chat_id", chatID)
	}
}
