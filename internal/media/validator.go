package media

import (
	"fmt"
	"mime"
	"strings"

	"eventsnap/pkg/utils"
)

// DefaultMaxUploadBytes is the per-file ceiling guests are held to.
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

var acceptedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

type Validator struct {
	maxBytes int64
}

func NewValidator(maxBytes int64) *Validator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &Validator{maxBytes: maxBytes}
}

func (v *Validator) MaxBytes() int64 {
	return v.maxBytes
}

// Validate checks the guest's declared content type and size. It never looks
// at file contents.
func (v *Validator) Validate(contentType string, size int64) error {
	if size <= 0 {
		return utils.NewValidationError("file", "file is empty")
	}
	if size > v.maxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", utils.ErrTooLarge, size, v.maxBytes)
	}
	if !IsAcceptedType(contentType) {
		return fmt.Errorf("%w: %q", utils.ErrUnsupportedType, contentType)
	}
	return nil
}

func IsAcceptedType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	_, ok := acceptedTypes[strings.ToLower(strings.TrimSpace(mediaType))]
	return ok
}
