package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventsnap/internal/models/db_models"
	"eventsnap/pkg/utils"
)

// EventRepository keeps owner lookups and public lookups as separate
// operations. Both report a missing row and a filtered-out row the same way
// (utils.ErrNotFound) so callers cannot probe for ids they do not own.
type EventRepository interface {
	Create(ctx context.Context, event *db_models.Event) error
	ListByOwner(ctx context.Context, ownerID string) ([]db_models.EventWithCount, error)
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*db_models.Event, error)
	GetPublicActive(ctx context.Context, id string) (*db_models.Event, error)
	SetActiveForOwner(ctx context.Context, id, ownerID string, active bool) (*db_models.Event, error)
	CountPhotos(ctx context.Context, eventID uuid.UUID) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *db_models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return dbError(err)
	}
	return nil
}

func (r *eventRepository) ListByOwner(ctx context.Context, ownerID string) ([]db_models.EventWithCount, error) {
	events := []db_models.EventWithCount{}
	err := r.db.WithContext(ctx).
		Model(&db_models.Event{}).
		Select(`events.*, (SELECT COUNT(*) FROM photos WHERE photos.event_id = events.id) AS photo_count`).
		Where("events.creator_id = ?", ownerID).
		Order("events.created_at DESC").
		Scan(&events).Error
	if err != nil {
		return nil, dbError(err)
	}
	return events, nil
}

func (r *eventRepository) GetByIDForOwner(ctx context.Context, id, ownerID string) (*db_models.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil || ownerID == "" {
		return nil, utils.ErrNotFound
	}

	var event db_models.Event
	err = r.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", eventID, ownerID).
		First(&event).Error
	if err != nil {
		return nil, lookupError(err)
	}
	return &event, nil
}

func (r *eventRepository) GetPublicActive(ctx context.Context, id string) (*db_models.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var event db_models.Event
	err = r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", eventID, true).
		First(&event).Error
	if err != nil {
		return nil, lookupError(err)
	}
	return &event, nil
}

func (r *eventRepository) SetActiveForOwner(ctx context.Context, id, ownerID string, active bool) (*db_models.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil || ownerID == "" {
		return nil, utils.ErrNotFound
	}

	res := r.db.WithContext(ctx).
		Model(&db_models.Event{}).
		Where("id = ? AND creator_id = ?", eventID, ownerID).
		Update("is_active", active)
	if res.Error != nil {
		return nil, dbError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}

	return r.GetByIDForOwner(ctx, id, ownerID)
}

func (r *eventRepository) CountPhotos(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Photo{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, dbError(err)
	}
	return count, nil
}

func lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrNotFound
	}
	return dbError(err)
}

func dbError(err error) error {
	return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
}
