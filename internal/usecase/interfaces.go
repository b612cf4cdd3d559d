package usecase

import (
	"context"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

// ComplianceUsecaseInterface abstracts deadline-compliance operations.
type ComplianceUsecaseInterface interface {
	FindViolations(ctx context.Context, repo entities.TrackedRepository) []entities.ComplianceRecord
	NotifyMissedDeadlines(ctx context.Context, chatID string) error
	TimeBeforeDeadline(ctx context.Context, issue entities.Issue) string
	DeadlineReport(ctx context.Context, repo entities.TrackedRepository) []entities.DeadlineStatus
}

// IssueUsecaseInterface abstracts issue-listing operations.
type IssueUsecaseInterface interface {
	AvailableIssues(ctx context.Context, repo entities.TrackedRepository) []entities.Issue
	NotifyAvailableIssues(ctx context.Context, chatID string) error
}

// RevisionUsecaseInterface abstracts review-aggregation operations.
type RevisionUsecaseInterface interface {
	CollectRevisions(ctx context.Context, chatID string) ([]entities.ReviewBundle, error)
	NotifyRevisions(ctx context.Context, chatID string) error
}

// RecipientUsecaseInterface abstracts recipient lifecycle operations.
type RecipientUsecaseInterface interface {
	LinkRecipient(ctx context.Context, userID, chatID, mention string) error
	RunCheck(ctx context.Context) error
}
