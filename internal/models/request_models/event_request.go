package request_models

type CreateEventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
	Location    *string `json:"location"`
}

type SetEventStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
