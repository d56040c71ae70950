package storage

import (
	"path/filepath"
	"strings"
)

// Blob names are never reused, so responses may be cached forever.
const ImmutableCacheControl = "public, max-age=31536000, immutable"

func ContentTypeFor(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
