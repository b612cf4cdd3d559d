package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertRepositoryQuery = `
INSERT INTO repositories(author, name, link, time_limit_seconds, owner_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, author, name, link, time_limit_seconds, owner_id`

	selectRepositoryQuery = `
SELECT id, author, name, link, time_limit_seconds, owner_id
FROM repositories
WHERE author = $1 AND name = $2`

	selectAllRepositoriesQuery = `
SELECT id, author, name, link, time_limit_seconds, owner_id
FROM repositories
ORDER BY author, name`

	selectRecipientRepositoriesQuery = `
SELECT r.id, r.author, r.name, r.link, r.time_limit_seconds, r.owner_id
FROM repositories r
JOIN telegram_recipients tr ON tr.user_id = r.owner_id
WHERE tr.chat_id = $1
ORDER BY r.author, r.name`

	updateTimeLimitQuery = `
UPDATE repositories
SET time_limit_seconds = $3
WHERE author = $1 AND name = $2
RETURNING id, author, name, link, time_limit_seconds, owner_id`

	deleteRepositoryQuery = `DELETE FROM repositories WHERE author = $1 AND name = $2`
)

// CreateRepository inserts a tracked repository.
func (p *Postgres) CreateRepository(ctx context.Context, repo entities.TrackedRepository) (*entities.TrackedRepository, error) {
	limit := repo.TimeLimit()

	var created entities.TrackedRepository
	err := p.db.QueryRow(ctx, insertRepositoryQuery, repo.Author, repo.Name, repo.Link, limit, repo.OwnerID).
		Scan(&created.ID, &created.Author, &created.Name, &created.Link, &created.TimeLimitSeconds, &created.OwnerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrRepositoryExists
		}
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert repository: %w", err)
	}

	p.log.Infow("repository tracked", "repo", created.FullName(), "time_limit_seconds", created.TimeLimitSeconds)
	return &created, nil
}

// GetRepository fetches one tracked repository by author and name.
func (p *Postgres) GetRepository(ctx context.Context, author, name string) (*entities.TrackedRepository, error) {
	var repo entities.TrackedRepository
	err := p.db.QueryRow(ctx, selectRepositoryQuery, author, name).
		Scan(&repo.ID, &repo.Author, &repo.Name, &repo.Link, &repo.TimeLimitSeconds, &repo.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("get repository: %w", err)
	}
	return &repo, nil
}

// ListRepositories returns every tracked repository.
func (p *Postgres) ListRepositories(ctx context.Context) ([]entities.TrackedRepository, error) {
	return p.queryRepositories(ctx, selectAllRepositoriesQuery)
}

// ListRepositoriesForRecipient returns repositories owned by the account
// behind the given chat identity.
func (p *Postgres) ListRepositoriesForRecipient(ctx context.Context, chatID string) ([]entities.TrackedRepository, error) {
	return p.queryRepositories(ctx, selectRecipientRepositoriesQuery, chatID)
}

// SetTimeLimit updates the deadline of a tracked repository.
func (p *Postgres) SetTimeLimit(ctx context.Context, author, name string, seconds int64) (*entities.TrackedRepository, error) {
	var repo entities.TrackedRepository
	err := p.db.QueryRow(ctx, updateTimeLimitQuery, author, name, seconds).
		Scan(&repo.ID, &repo.Author, &repo.Name, &repo.Link, &repo.TimeLimitSeconds, &repo.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("set time limit: %w", err)
	}

	p.log.Infow("time limit updated", "repo", repo.FullName(), "time_limit_seconds", seconds)
	return &repo, nil
}

// DeleteRepository stops tracking a repository.
func (p *Postgres) DeleteRepository(ctx context.Context, author, name string) error {
	tag, err := p.db.Exec(ctx, deleteRepositoryQuery, author, name)
	if err != nil {
		return fmt.Errorf("delete repository: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrRepositoryNotFound
	}

	p.log.Infow("repository untracked", "repo", author+"/"+name)
	return nil
}

func (p *Postgres) queryRepositories(ctx context.Context, query string, args ...any) ([]entities.TrackedRepository, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	defer rows.Close()

	repos := make([]entities.TrackedRepository, 0)
	for rows.Next() {
		var repo entities.TrackedRepository
		if err := rows.Scan(&repo.ID, &repo.Author, &repo.Name, &repo.Link, &repo.TimeLimitSeconds, &repo.OwnerID); err != nil {
			return nil, fmt.Errorf("scan repository: %w", err)
		}
		repos = append(repos, repo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate repositories: %w", err)
	}
	return repos, nil
}
