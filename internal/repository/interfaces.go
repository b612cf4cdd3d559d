// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TrackedRepositoryInterface exposes tracked-repository operations.
type TrackedRepositoryInterface interface {
	CreateRepository(ctx context.Context, repo entities.TrackedRepository) (*entities.TrackedRepository, error)
	GetRepository(ctx context.Context, author, name string) (*entities.TrackedRepository, error)
	ListRepositories(ctx context.Context) ([]entities.TrackedRepository, error)
	ListRepositoriesForRecipient(ctx context.Context, chatID string) ([]entities.TrackedRepository, error)
	SetTimeLimit(ctx context.Context, author, name string, seconds int64) (*entities.TrackedRepository, error)
	DeleteRepository(ctx context.Context, author, name string) error
}

// RecipientInterface exposes user and chat-identity operations.
type RecipientInterface interface {
	CreateUser(ctx context.Context, email string) (*entities.TrackedUser, error)
	LinkRecipient(ctx context.Context, userID, chatID string) error
	ResolveRecipient(ctx context.Context, chatID string) (*entities.Recipient, error)
	ListRecipients(ctx context.Context) ([]entities.Recipient, error)
}
