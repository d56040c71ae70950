package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Photo is created once by the intake pipeline and never updated.
type Photo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_photos_event_filename"`
	Filename     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_photos_event_filename"`
	OriginalName string    `gorm:"type:varchar(512);not null"`
	MimeType     string    `gorm:"type:varchar(64);not null"`
	Size         int64     `gorm:"not null"`
	Width        int       `gorm:"not null"`
	Height       int       `gorm:"not null"`
	URL          string    `gorm:"type:varchar(1024);not null"`
	UploadedBy   string    `gorm:"type:varchar(255);not null"`
	UploadedAt   time.Time `gorm:"not null;index"`
	IsApproved   bool      `gorm:"not null"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.UploadedAt.IsZero() {
		p.UploadedAt = time.Now().UTC()
	}
	return nil
}

// PhotoURL is the public retrieval path for a stored photo.
func PhotoURL(eventID uuid.UUID, filename string) string {
	return "/uploads/" + eventID.String() + "/" + filename
}
