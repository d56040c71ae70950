package db_models

import "time"

// Event is an organizer-owned container guests submit photos into.
// CreatorID is the identity string handed over by the auth provider.
type Event struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Date        time.Time `gorm:"not null"`
	Location    *string   `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"not null"`
	CreatorID   string    `gorm:"type:varchar(255);not null;index"`

	Photos []Photo `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// EventWithCount is an Event row augmented with its current photo count.
type EventWithCount struct {
	Event
	PhotoCount int64
}
