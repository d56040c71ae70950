package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventsnap/pkg/utils"
)

// BlobStore persists processed photo bytes under an event-scoped namespace.
// Put is write-once: it always generates a fresh name and never overwrites.
type BlobStore interface {
	Put(ctx context.Context, eventID, ext string, data []byte) (string, error)
	Get(ctx context.Context, eventID, name string) ([]byte, error)
}

var now = time.Now

// GenerateName builds "<unix-millis>-<random hex><ext>". The 64-bit random
// suffix keeps concurrent uploads within the same millisecond apart.
func GenerateName(ext string) (string, error) {
	suffix, err := utils.GenerateSecureToken(8)
	if err != nil {
		return "", fmt.Errorf("generate blob name: %w", err)
	}
	return fmt.Sprintf("%d-%s%s", now().UnixMilli(), suffix, normalizeExt(ext)), nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if !isSafeSegment(ext[1:]) {
		return ""
	}
	return ext
}

// isSafeSegment reports whether s can be used as a single path element.
func isSafeSegment(s string) bool {
	if s == "" || s == "." || s == ".." || len(s) > 255 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return !strings.HasPrefix(s, ".")
}

func checkKey(eventID, name string) error {
	if !isSafeSegment(eventID) || !isSafeSegment(name) {
		return fmt.Errorf("%w: %s/%s", utils.ErrBlobNotFound, eventID, name)
	}
	return nil
}
