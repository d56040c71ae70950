package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"eventsnap/pkg/utils"
)

// LocalStore keeps blobs at <baseDir>/<eventID>/<name>. Writes go to a temp
// file in the same directory and are renamed into place, so a reader never
// observes a partially written blob at its final path.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	//nolint:gosec // uploaded photos are served publicly
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure upload dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) Put(ctx context.Context, eventID, ext string, data []byte) (string, error) {
	if !isSafeSegment(eventID) {
		return "", fmt.Errorf("%w: invalid event scope %q", utils.ErrStorage, eventID)
	}

	dir := filepath.Join(s.baseDir, eventID)
	// MkdirAll tolerates the directory already existing, including when a
	// concurrent first upload created it a moment ago.
	//nolint:gosec // uploaded photos are served publicly
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: ensure event dir: %v", utils.ErrStorage, err)
	}

	name, err := GenerateName(ext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %v", utils.ErrStorage, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("%w: write blob: %v", utils.ErrStorage, err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("%w: sync blob: %v", utils.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close blob: %v", utils.ErrStorage, err)
	}
	//nolint:gosec // uploaded photos are served publicly
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("%w: chmod blob: %v", utils.ErrStorage, err)
	}

	// A caller that went away must not end up with a committed blob.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	final := filepath.Join(dir, name)
	if _, err := os.Lstat(final); err == nil {
		return "", fmt.Errorf("%w: blob %s already exists", utils.ErrStorage, name)
	}
	if err := os.Rename(tmpPath, final); err != nil {
		return "", fmt.Errorf("%w: commit blob: %v", utils.ErrStorage, err)
	}
	committed = true

	return name, nil
}

func (s *LocalStore) Get(ctx context.Context, eventID, name string) ([]byte, error) {
	if err := checkKey(eventID, name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, eventID, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", utils.ErrBlobNotFound, eventID, name)
		}
		return nil, fmt.Errorf("%w: read blob: %v", utils.ErrStorage, err)
	}
	return data, nil
}
