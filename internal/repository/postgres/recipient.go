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
	insertUserQuery = `INSERT INTO users(email) VALUES($1) RETURNING id, email`

	linkRecipientQuery = `
INSERT INTO telegram_recipients(user_id, chat_id)
VALUES ($1, $2)
ON CONFLICT (user_id, chat_id) DO NOTHING`

	selectRecipientQuery = `
SELECT user_id, chat_id FROM telegram_recipients WHERE chat_id = $1`

	selectAllRecipientsQuery = `
SELECT user_id, chat_id FROM telegram_recipients ORDER BY chat_id`
)

// CreateUser inserts a tracked-user account.
func (p *Postgres) CreateUser(ctx context.Context, email string) (*entities.TrackedUser, error) {
	var user entities.TrackedUser
	if err := p.db.QueryRow(ctx, insertUserQuery, email).Scan(&user.ID, &user.Email); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID)
	return &user, nil
}

// LinkRecipient binds a chat identity to a user account. Linking the same
// pair twice is a no-op.
func (p *Postgres) LinkRecipient(ctx context.Context, userID, chatID string) error {
	if _, err := p.db.Exec(ctx, linkRecipientQuery, userID, chatID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return entities.ErrUserNotFound
		}
		return fmt.Errorf("link recipient: %w", err)
	}

	p.log.Infow("recipient linked", "user_id", userID, "chat_id", chatID)
	return nil
}

// ResolveRecipient looks a chat identity up.
func (p *Postgres) ResolveRecipient(ctx context.Context, chatID string) (*entities.Recipient, error) {
	var rec entities.Recipient
	if err := p.db.QueryRow(ctx, selectRecipientQuery, chatID).Scan(&rec.UserID, &rec.ChatID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRecipientNotFound
		}
		return nil, fmt.Errorf("resolve recipient: %w", err)
	}
	return &rec, nil
}

// ListRecipients returns every linked chat identity.
func (p *Postgres) ListRecipients(ctx context.Context) ([]entities.Recipient, error) {
	rows, err := p.db.Query(ctx, selectAllRecipientsQuery)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	defer rows.Close()

	recipients := make([]entities.Recipient, 0)
	for rows.Next() {
		var rec entities.Recipient
		if err := rows.Scan(&rec.UserID, &rec.ChatID); err != nil {
			return nil, fmt.Errorf("scan recipient: %w", err)
		}
		recipients = append(recipients, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipients: %w", err)
	}
	return recipients, nil
}
