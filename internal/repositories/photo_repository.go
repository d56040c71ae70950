package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventsnap/internal/models/db_models"
)

// PhotoRepository does no ownership checks; callers authorize eventID first.
type PhotoRepository interface {
	Create(ctx context.Context, photo *db_models.Photo) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Photo, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *db_models.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return dbError(err)
	}
	return nil
}

func (r *photoRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Photo, error) {
	photos := []db_models.Photo{}
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("uploaded_at DESC").
		Find(&photos).Error
	if err != nil {
		return nil, dbError(err)
	}
	return photos, nil
}
