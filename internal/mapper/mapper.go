// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/ekumamatthew/hackathon-bot/internal/entities"
	"github.com/ekumamatthew/hackathon-bot/internal/transport/http/dto"
)

// FromDTORepository builds an entities.TrackedRepository from the create request.
func FromDTORepository(src dto.CreateRepositoryRequest) entities.TrackedRepository {
	return entities.TrackedRepository{
		Author:           src.Author,
		Name:             src.Name,
		Link:             src.Link,
		TimeLimitSeconds: src.TimeLimitSeconds,
		OwnerID:          src.OwnerID,
	}
}

// ToDTORepository maps a tracked repository to its transport model.
func ToDTORepository(repo entities.TrackedRepository) dto.Repository {
	return dto.Repository{
		ID:               repo.ID,
		Author:           repo.Author,
		Name:             repo.Name,
		Link:             repo.Link,
		TimeLimitSeconds: repo.TimeLimitSeconds,
		OwnerID:          repo.OwnerID,
	}
}

// ToDTORepositoryList maps a slice of tracked repositories.
func ToDTORepositoryList(repos []entities.TrackedRepository) []dto.Repository {
	res := make([]dto.Repository, 0, len(repos))
	for _, repo := range repos {
		res = append(res, ToDTORepository(repo))
	}
	return res
}

// ToDTOUser maps a tracked-user account to its transport model.
func ToDTOUser(u entities.TrackedUser) dto.User {
	return dto.User{
		ID:    u.ID,
		Email: u.Email,
	}
}

// ToDTOViolation maps one compliance record to its transport model.
func ToDTOViolation(rec entities.ComplianceRecord) dto.Violation {
	return dto.Violation{
		Title:      rec.Title,
		HTMLURL:    rec.HTMLURL,
		Assignee:   rec.Assignee,
		AssignedAt: rec.AssignedAt,
		Days:       rec.Elapsed.Days,
		Hours:      rec.Elapsed.Hours,
	}
}

// ToDTOViolationList maps a slice of compliance records.
func ToDTOViolationList(records []entities.ComplianceRecord) []dto.Violation {
	res := make([]dto.Violation, 0, len(records))
	for _, rec := range records {
		res = append(res, ToDTOViolation(rec))
	}
	return res
}

// ToDTODeadline maps one deadline status to its transport model.
func ToDTODeadline(status entities.DeadlineStatus) dto.Deadline {
	return dto.Deadline{
		Title:    status.Title,
		HTMLURL:  status.HTMLURL,
		Assignee: status.Assignee,
		Status:   status.Status,
	}
}

// ToDTODeadlineList maps a slice of deadline statuses.
func ToDTODeadlineList(statuses []entities.DeadlineStatus) []dto.Deadline {
	res := make([]dto.Deadline, 0, len(statuses))
	for _, status := range statuses {
		res = append(res, ToDTODeadline(status))
	}
	return res
}

// ToDTOReviewBundle maps one review bundle to its transport model.
func ToDTOReviewBundle(bundle entities.ReviewBundle) dto.ReviewBundle {
	reviews := make([]dto.Review, 0, len(bundle.Reviews))
	for _, r := range bundle.Reviews {
		reviews = append(reviews, dto.Review{Reviewer: r.Reviewer, State: r.State})
	}
	return dto.ReviewBundle{
		Repo:      bundle.Repo,
		PullTitle: bundle.PullTitle,
		Reviews:   reviews,
	}
}

// ToDTOReviewBundleList maps a slice of review bundles.
func ToDTOReviewBundleList(bundles []entities.ReviewBundle) []dto.ReviewBundle {
	res := make([]dto.ReviewBundle, 0, len(bundles))
	for _, b := range bundles {
		res = append(res, ToDTOReviewBundle(b))
	}
	return res
}
