// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRepositoryNotFound signals a repository that is not tracked.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrRepositoryExists signals a duplicate tracked repository.
	ErrRepositoryExists = errors.New("repository exists")
	// ErrRecipientNotFound signals a chat identity with no linked account.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrUserNotFound is returned when a tracked user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrMissingCredential signals an absent issue-tracker or chat token.
	ErrMissingCredential = errors.New("missing credential")
)
