package request_models

import "io"

// UploadFile is one guest file as received from the transport layer.
type UploadFile struct {
	OriginalName string
	ContentType  string
	Size         int64
	Open         func() (io.ReadCloser, error)
}

type Submission struct {
	EventID   string
	GuestName string
	File      UploadFile
}
