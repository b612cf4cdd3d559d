// Package dto defines transport models for the HTTP API.
package dto

import "time"

// ErrorCode is a machine-readable error discriminator.
type ErrorCode string

const (
	// CodeNotFound marks a missing resource.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeInvalidArgument marks failed input validation.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeRepositoryExists marks a duplicate tracked repository.
	CodeRepositoryExists ErrorCode = "REPO_EXISTS"
	// CodeInternal marks unexpected failures.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorBody carries the code and human message of one error.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Repository is a tracked repository on the wire.
type Repository struct {
	ID               string `json:"id"`
	Author           string `json:"author"`
	Name             string `json:"name"`
	Link             string `json:"link"`
	TimeLimitSeconds int64  `json:"time_limit_seconds"`
	OwnerID          string `json:"owner_id"`
}

// CreateRepositoryRequest is the body of the track-repository call.
type CreateRepositoryRequest struct {
	Author           string `json:"author"`
	Name             string `json:"name"`
	Link             string `json:"link"`
	TimeLimitSeconds int64  `json:"time_limit_seconds"`
	OwnerID          string `json:"owner_id"`
}

// SetTimeLimitRequest updates a repository deadline.
type SetTimeLimitRequest struct {
	TimeLimitSeconds int64 `json:"time_limit_seconds"`
}

// CreateUserRequest registers a tracked-user account.
type CreateUserRequest struct {
	Email string `json:"email"`
}

// User is a tracked-user account on the wire.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LinkRecipientRequest binds a chat identity to a user account.
type LinkRecipientRequest struct {
	UserID  string `json:"user_id"`
	ChatID  string `json:"chat_id"`
	Mention string `json:"mention,omitempty"`
}

// NotifyRequest names the chat identity a notification run addresses.
type NotifyRequest struct {
	ChatID string `json:"chat_id"`
}

// Violation is one overdue issue on the wire.
type Violation struct {
	Title      string    `json:"title"`
	HTMLURL    string    `json:"html_url"`
	Assignee   string    `json:"assignee"`
	AssignedAt time.Time `json:"assigned_at"`
	Days       int       `json:"days"`
	Hours      int       `json:"hours"`
}

// Deadline is one open assigned issue with its rendered countdown.
type Deadline struct {
	Title    string `json:"title"`
	HTMLURL  string `json:"html_url"`
	Assignee string `json:"assignee"`
	Status   string `json:"status"`
}

// Review is one pull-request review on the wire.
type Review struct {
	Reviewer string `json:"reviewer"`
	State    string `json:"state"`
}

// ReviewBundle groups the reviews of one pull request.
type ReviewBundle struct {
	Repo      string   `json:"repo"`
	PullTitle string   `json:"pull_title"`
	Reviews   []Review `json:"reviews"`
}
