package services

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventsnap/internal/models/db_models"
	"eventsnap/internal/models/response_models"
	"eventsnap/internal/repositories"
	"eventsnap/internal/storage"
	"eventsnap/pkg/utils"
)

type StoredFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type GalleryServiceInterface interface {
	ListPhotos(ctx context.Context, eventID, callerID string) ([]response_models.PhotoResponse, error)
	OpenFile(ctx context.Context, eventID, filename string) (*StoredFile, error)
	PrepareArchive(ctx context.Context, eventID, callerID string) (*PhotoArchive, error)
}

type GalleryService struct {
	gate      AccessGate
	eventRepo repositories.EventRepository
	photoRepo repositories.PhotoRepository
	blobs     storage.BlobStore
	logger    *zap.Logger
}

func NewGalleryService(
	gate AccessGate,
	eventRepo repositories.EventRepository,
	photoRepo repositories.PhotoRepository,
	blobs storage.BlobStore,
	logger *zap.Logger,
) GalleryServiceInterface {
	return &GalleryService{
		gate:      gate,
		eventRepo: eventRepo,
		photoRepo: photoRepo,
		blobs:     blobs,
		logger:    logger,
	}
}

func (s *GalleryService) ListPhotos(ctx context.Context, eventID, callerID string) ([]response_models.PhotoResponse, error) {
	ok, err := s.gate.CanView(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	id, parseErr := uuid.Parse(eventID)
	if !ok || parseErr != nil {
		return nil, utils.ErrNotFound
	}

	photos, err := s.photoRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoResponse(p))
	}
	return out, nil
}

// OpenFile serves stored bytes by name. Names carry 64 random bits and are
// never reused, which is what makes the public URL safe to hand out.
func (s *GalleryService) OpenFile(ctx context.Context, eventID, filename string) (*StoredFile, error) {
	data, err := s.blobs.Get(ctx, eventID, filename)
	if err != nil {
		return nil, err
	}
	return &StoredFile{
		Name:        filename,
		ContentType: storage.ContentTypeFor(filename),
		Data:        data,
	}, nil
}

// PrepareArchive authorizes the caller and snapshots the photo list. Writing
// happens later so the handler can still answer 404 before any bytes go out.
func (s *GalleryService) PrepareArchive(ctx context.Context, eventID, callerID string) (*PhotoArchive, error) {
	event, err := s.eventRepo.GetByIDForOwner(ctx, eventID, callerID)
	if err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	return &PhotoArchive{
		Name:    archiveName(event.Title),
		eventID: event.ID.String(),
		photos:  photos,
		blobs:   s.blobs,
		logger:  s.logger,
	}, nil
}

type PhotoArchive struct {
	Name    string
	eventID string
	photos  []db_models.Photo
	blobs   storage.BlobStore
	logger  *zap.Logger
}

func (a *PhotoArchive) Len() int {
	return len(a.photos)
}

// WriteTo streams a ZIP with one entry per photo. Photos are already JPEG,
// so entries are stored rather than deflated.
func (a *PhotoArchive) WriteTo(ctx context.Context, w io.Writer) error {
	zw := zip.NewWriter(w)
	used := make(map[string]int, len(a.photos))

	for _, p := range a.photos {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := a.blobs.Get(ctx, a.eventID, p.Filename)
		if err != nil {
			a.logger.Warn("archive entry skipped",
				zap.String("event_id", a.eventID), zap.String("filename", p.Filename), zap.Error(err))
			continue
		}

		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:     entryName(p, used),
			Method:   zip.Store,
			Modified: p.UploadedAt,
		})
		if err != nil {
			return fmt.Errorf("create archive entry: %w", err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("write archive entry: %w", err)
		}
	}
	return zw.Close()
}

func entryName(p db_models.Photo, used map[string]int) string {
	ext := filepath.Ext(p.Filename)
	base := sanitizeName(strings.TrimSuffix(filepath.Base(p.OriginalName), filepath.Ext(p.OriginalName)))
	if base == "" {
		base = strings.TrimSuffix(p.Filename, ext)
	}

	name := base + ext
	for n := 2; used[name] > 0; n++ {
		name = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
	used[name]++
	return name
}

func archiveName(title string) string {
	name := sanitizeName(title)
	if name == "" {
		name = "photos"
	}
	return name + "-" + time.Now().UTC().Format("20060102") + ".zip"
}

func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}

func toPhotoResponse(p db_models.Photo) response_models.PhotoResponse {
	return response_models.PhotoResponse{
		ID:           p.ID.String(),
		EventID:      p.EventID.String(),
		Filename:     p.Filename,
		OriginalName: p.OriginalName,
		MimeType:     p.MimeType,
		Size:         p.Size,
		Width:        p.Width,
		Height:       p.Height,
		URL:          p.URL,
		UploadedBy:   p.UploadedBy,
		UploadedAt:   p.UploadedAt,
		IsApproved:   p.IsApproved,
	}
}
