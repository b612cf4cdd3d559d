package engine

import (
	"context"
	"fmt"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

// CollectRevisions gathers review bundles across every repository owned by
// the recipient: one bundle per open pull request that has at least one
// review. Repositories and pull requests without reviews are skipped, not
// emitted as empty bundles.
func (e *Engine) CollectRevisions(ctx context.Context, chatID string) ([]entities.ReviewBundle, error) {
	ctx, cancel := withTimeout(ctx, e.timeout)
	defer cancel()

	if chatID == "" {
		return nil, fmt.Errorf("%w: chat_id is required", entities.ErrInvalidArgument)
	}
	if _, err := e.repo.ResolveRecipient(ctx, chatID); err != nil {
		return nil, err
	}

	repos, err := e.repo.ListRepositoriesForRecipient(ctx, chatID)
	if err != nil {
		return nil, err
	}

	bundles := make([]entities.ReviewBundle, 0)
	for _, repo := range repos {
		for _, pull := range e.tracker.OpenPullRequests(ctx, repo.Author, repo.Name) {
			reviews := e.tracker.PullRequestReviews(ctx, repo.Author, repo.Name, pull.Number)
			if len(reviews) == 0 {
				continue
			}
			bundles = append(bundles, entities.ReviewBundle{
				Repo:      repo.Name,
				PullTitle: pull.Title,
				Reviews:   reviews,
			})
		}
	}
	return bundles, nil
}
