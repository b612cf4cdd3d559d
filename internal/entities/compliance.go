// Package entities contains core business entities.
package entities

import "time"

// Span is an elapsed or remaining amount of time in whole days and hours.
type Span struct {
	Days  int
	Hours int
}

// ComplianceRecord is the Judge's verdict for one overdue issue. Records are
// built fresh per invocation and never persisted.
type ComplianceRecord struct {
	Title      string
	HTMLURL    string
	Assignee   string
	AssignedAt time.Time
	Elapsed    Span
}

// DeadlineStatus pairs one open assigned issue with its rendered countdown
// or the sentinel explaining why no countdown exists.
type DeadlineStatus struct {
	Title    string
	HTMLURL  string
	Assignee string
	Status   string
}
