package response_models

import "time"

type PhotoResponse struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	URL          string    `json:"url"`
	UploadedBy   string    `json:"uploadedBy"`
	UploadedAt   time.Time `json:"uploadedAt"`
	IsApproved   bool      `json:"isApproved"`
}

type PhotoSummary struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadResult is the terminal outcome of one submitted file.
type UploadResult struct {
	OriginalName string        `json:"originalName"`
	Success      bool          `json:"success"`
	Photo        *PhotoSummary `json:"photo,omitempty"`
	Error        string        `json:"error,omitempty"`
	Code         int           `json:"code"`
}

type UploadResponse struct {
	Uploaded int            `json:"uploaded"`
	Failed   int            `json:"failed"`
	Results  []UploadResult `json:"results"`
}
