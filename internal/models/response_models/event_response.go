package response_models

import "time"

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location"`
	IsActive    bool      `json:"isActive"`
	CreatorID   string    `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
	PhotoCount  int64     `json:"photoCount"`
	ShareURL    string    `json:"shareUrl"`
}

// PublicEventResponse is what guests see before uploading.
type PublicEventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location"`
	IsActive    bool      `json:"isActive"`
}
