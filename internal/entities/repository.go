// Package entities contains core business entities.
package entities

// DefaultTimeLimitSeconds is the deadline applied to repositories that have
// no explicit time limit configured (24 hours).
const DefaultTimeLimitSeconds = 86400

// TrackedRepository is a repository watched for missed issue deadlines.
type TrackedRepository struct {
	ID               string
	Author           string
	Name             string
	Link             string
	TimeLimitSeconds int64
	OwnerID          string
}

// FullName returns the repository in "author/name" form.
func (r TrackedRepository) FullName() string {
	return r.Author + "/" + r.Name
}

// TimeLimit returns the configured limit, falling back to the default.
func (r TrackedRepository) TimeLimit() int64 {
	if r.TimeLimitSeconds <= 0 {
		return DefaultTimeLimitSeconds
	}
	return r.TimeLimitSeconds
}

// TrackedUser is an account that owns tracked repositories.
type TrackedUser struct {
	ID    string
	Email string
}

// Recipient binds a chat identity to a tracked user account.
type Recipient struct {
	UserID string
	ChatID string
}
