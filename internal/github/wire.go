package github

import (
	"encoding/json"
	"time"

	"github.com/ekumamatthew/hackathon-bot/internal/entities"
)

// Wire documents mirror the tracker's JSON shapes. Absent fields decode to
// zero values, which the entities treat as documented defaults.

type userDoc struct {
	Login string `json:"login"`
}

type issueDoc struct {
	Number        int             `json:"number"`
	Title         string          `json:"title"`
	State         string          `json:"state"`
	Body          string          `json:"body"`
	HTMLURL       string          `json:"html_url"`
	EventsURL     string          `json:"events_url"`
	RepositoryURL string          `json:"repository_url"`
	User          *userDoc        `json:"user"`
	Assignee      *userDoc        `json:"assignee"`
	Draft         bool            `json:"draft"`
	PullRequest   json.RawMessage `json:"pull_request"`
}

func (d issueDoc) toEntity() entities.Issue {
	issue := entities.Issue{
		Number:        d.Number,
		Title:         d.Title,
		State:         d.State,
		Body:          d.Body,
		HTMLURL:       d.HTMLURL,
		EventsURL:     d.EventsURL,
		RepositoryURL: d.RepositoryURL,
		Draft:         d.Draft,
		IsPullRequest: len(d.PullRequest) > 0 && string(d.PullRequest) != "null",
	}
	if d.User != nil {
		issue.Creator = d.User.Login
	}
	if d.Assignee != nil {
		issue.Assignee = d.Assignee.Login
	}
	return issue
}

type eventDoc struct {
	Event     string    `json:"event"`
	Assignee  *userDoc  `json:"assignee"`
	CreatedAt time.Time `json:"created_at"`
}

func (d eventDoc) toEntity() entities.AssignmentEvent {
	event := entities.AssignmentEvent{
		Kind:      d.Event,
		CreatedAt: d.CreatedAt,
	}
	if d.Assignee != nil {
		event.Assignee = d.Assignee.Login
	}
	return event
}

type pullDoc struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	User      *userDoc  `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func (d pullDoc) toEntity() entities.PullRequest {
	pull := entities.PullRequest{
		Number:    d.Number,
		Title:     d.Title,
		State:     d.State,
		CreatedAt: d.CreatedAt,
	}
	if d.User != nil {
		pull.Author = d.User.Login
	}
	return pull
}

type reviewDoc struct {
	User  *userDoc `json:"user"`
	State string   `json:"state"`
}

func (d reviewDoc) toEntity() entities.Review {
	review := entities.Review{State: d.State}
	if d.User != nil {
		review.Reviewer = d.User.Login
	}
	return review
}
