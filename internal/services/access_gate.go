package services

import (
	"context"
	"errors"

	"eventsnap/internal/repositories"
	"eventsnap/pkg/utils"
)

// AccessGate answers per-request capability checks. Nothing is cached: an
// event deactivated a moment ago blocks the very next submission.
type AccessGate interface {
	CanManage(ctx context.Context, eventID, callerID string) (bool, error)
	CanSubmit(ctx context.Context, eventID string) (bool, error)
	CanView(ctx context.Context, eventID, callerID string) (bool, error)
}

type accessGate struct {
	events repositories.EventRepository
}

func NewAccessGate(events repositories.EventRepository) AccessGate {
	return &accessGate{events: events}
}

func (g *accessGate) CanManage(ctx context.Context, eventID, callerID string) (bool, error) {
	if callerID == "" {
		return false, nil
	}
	_, err := g.events.GetByIDForOwner(ctx, eventID, callerID)
	return allowed(err)
}

func (g *accessGate) CanSubmit(ctx context.Context, eventID string) (bool, error) {
	_, err := g.events.GetPublicActive(ctx, eventID)
	return allowed(err)
}

// CanView is the same check as CanManage: only owners browse galleries.
func (g *accessGate) CanView(ctx context.Context, eventID, callerID string) (bool, error) {
	return g.CanManage(ctx, eventID, callerID)
}

func allowed(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, utils.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
