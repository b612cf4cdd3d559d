package engine

import (
	"context"
	"fmt"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

// NotifyMissedDeadlines runs the compliance judge over every repository the
// recipient owns and sends one report per repository. A repository with no
// violations still gets its explicit no-missed-deadlines message. An
// unknown chat identity is an error, never a silent empty run.
func (e *Engine) NotifyMissedDeadlines(ctx context.Context, chatID string) error {
	if chatID == "" {
		return fmt.Errorf("%w: chat_id is required", entities.ErrInvalidArgument)
	}
	if _, err := e.repo.ResolveRecipient(ctx, chatID); err != nil {
		return err
	}

	repos, err := e.repo.ListRepositoriesForRecipient(ctx, chatID)
	if err != nil {
		return err
	}

	for _, repo := range repos {
		records := e.FindViolations(ctx, repo)
		e.dispatcher.SendComplianceReport(ctx, chatID, repo, records)
	}
	return nil
}

// NotifyAvailableIssues sends each owned repository's open unassigned
// issues to the recipient.
func (e *Engine) NotifyAvailableIssues(ctx context.Context, chatID string) error {
	if chatID == "" {
		return fmt.Errorf("%w: chat_id is required", entities.ErrInvalidArgument)
	}
	if _, err := e.repo.ResolveRecipient(ctx, chatID); err != nil {
		return err
	}

	repos, err := e.repo.ListRepositoriesForRecipient(ctx, chatID)
	if err != nil {
		return err
	}

	for _, repo := range repos {
		issues := e.AvailableIssues(ctx, repo)
		e.dispatcher.SendAvailableIssues(ctx, chatID, repo, issues)
	}
	return nil
}

// NotifyRevisions collects the recipient's review bundles and sends them as
// one aggregate message. Nothing is sent when no reviews exist.
func (e *Engine) NotifyRevisions(ctx context.Context, chatID string) error {
	bundles, err := e.CollectRevisions(ctx, chatID)
	if err != nil {
		return err
	}

	e.dispatcher.SendRevisions(ctx, chatID, bundles)
	return nil
}

// LinkRecipient binds a chat identity to a user account and greets the
// fresh recipient. Linking is idempotent.
func (e *Engine) LinkRecipient(ctx context.Context, userID, chatID, mention string) error {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	if userID == "" || chatID == "" {
		return fmt.Errorf("%w: user_id and chat_id are required", entities.ErrInvalidArgument)
	}

	if err := e.repo.LinkRecipient(ctx, userID, chatID); err != nil {
		return err
	}

	if mention == "" {
		mention = chatID
	}
	e.dispatcher.SendGreeting(ctx, chatID, mention)
	return nil
}

// RunCheck walks every linked recipient and delivers both the compliance
// and the revision reports. Recipients are processed sequentially and
// independently; one failing recipient does not stop the pass.
func (e *Engine) RunCheck(ctx context.Context) error {
	recipients, err := e.repo.ListRecipients(ctx)
	if err != nil {
		return err
	}

	for _, rec := range recipients {
		if err := e.NotifyMissedDeadlines(ctx, rec.ChatID); err != nil {
			e.log.Errorw("missed-deadline notification failed", "error", err, "chat_id", rec.ChatID)
		}
		if err := e.NotifyRevisions(ctx, rec.ChatID); err != nil {
			e.log.Errorw("revision notification failed", "error", err, "chat_id", rec.ChatID)
		}
	}

	e.log.Infow("check pass finished", "recipients", len(recipients))
	return nil
}
