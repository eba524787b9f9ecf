package services

import (
	"context"
	"time"

	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/syncqueue"
)

// ContainerDeps carries everything needed to assemble the service layer.
type ContainerDeps struct {
	Store       portsrepo.DocumentStore
	Users       portsrepo.UserRepository
	Queue       syncqueue.Scheduler
	JWTSecret   string
	JWTExpiry   time.Duration
	JWTIssuer   string
	GeminiKey   string
	GeminiModel string
}

// NewContainer creates the service container with properly wired dependencies.
func NewContainer(ctx context.Context, deps ContainerDeps) (*portssvc.ServiceContainer, error) {
	reconciler := NewReconcilerService(deps.Store, deps.Queue)

	insight, err := NewInsightService(ctx, deps.GeminiKey, deps.GeminiModel)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Reconciler: reconciler,
		Session:    NewSessionService(deps.Users, reconciler, deps.JWTSecret, deps.JWTExpiry, deps.JWTIssuer),
		Insight:    insight,
		Market:     NewMarketService(),
	}, nil
}
