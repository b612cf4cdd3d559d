package usecase

import (
	"context"
	"time"

	"github.com/ekumamatthew/hackathon-bot/internal/repository"
	"github.com/ekumamatthew/hackathon-bot/internal/usecase/engine"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ComplianceUsecaseInterface
	IssueUsecaseInterface
	RevisionUsecaseInterface
	RecipientUsecaseInterface
}

// New constructs the engine with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	tracker engine.TrackerClient,
	dispatcher engine.Dispatcher,
	timeout time.Duration,
) InterfaceUsecase {
	return engine.New(log, ctx, repo, tracker, dispatcher, timeout)
}
