package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventsnap/internal/media"
	"eventsnap/internal/models/db_models"
	"eventsnap/internal/models/request_models"
	"eventsnap/pkg/utils"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *db_models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepo) ListByOwner(ctx context.Context, ownerID string) ([]db_models.EventWithCount, error) {
	args := m.Called(ctx, ownerID)
	events, _ := args.Get(0).([]db_models.EventWithCount)
	return events, args.Error(1)
}

func (m *mockEventRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*db_models.Event, error) {
	args := m.Called(ctx, id, ownerID)
	event, _ := args.Get(0).(*db_models.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) GetPublicActive(ctx context.Context, id string) (*db_models.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*db_models.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) SetActiveForOwner(ctx context.Context, id, ownerID string, active bool) (*db_models.Event, error) {
	args := m.Called(ctx, id, ownerID, active)
	event, _ := args.Get(0).(*db_models.Event)
	return event, args.Error(1)
}

func (m *mockEventRepo) CountPhotos(ctx context.Context, eventID uuid.UUID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

// memoryEvents is a stateful stand-in for the event table. It applies the
// same owner and active filters as the SQL repository.
type memoryEvents struct {
	mu     sync.Mutex
	events map[uuid.UUID]*db_models.Event
	photos *memoryPhotos
}

func newMemoryEvents(photos *memoryPhotos) *memoryEvents {
	return &memoryEvents{events: map[uuid.UUID]*db_models.Event{}, photos: photos}
}

func (m *memoryEvents) Create(_ context.Context, event *db_models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now().UTC()
	event.UpdatedAt = event.CreatedAt
	stored := *event
	m.events[event.ID] = &stored
	return nil
}

func (m *memoryEvents) ListByOwner(_ context.Context, ownerID string) ([]db_models.EventWithCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []db_models.EventWithCount{}
	for _, e := range m.events {
		if e.CreatorID == ownerID {
			out = append(out, db_models.EventWithCount{Event: *e, PhotoCount: m.photos.count(e.ID)})
		}
	}
	return out, nil
}

func (m *memoryEvents) lookup(id string) (*db_models.Event, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}
	e, ok := m.events[parsed]
	return e, ok
}

func (m *memoryEvents) GetByIDForOwner(_ context.Context, id, ownerID string) (*db_models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(id)
	if !ok || ownerID == "" || e.CreatorID != ownerID {
		return nil, utils.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memoryEvents) GetPublicActive(_ context.Context, id string) (*db_models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(id)
	if !ok || !e.IsActive {
		return nil, utils.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memoryEvents) SetActiveForOwner(_ context.Context, id, ownerID string, active bool) (*db_models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(id)
	if !ok || ownerID == "" || e.CreatorID != ownerID {
		return nil, utils.ErrNotFound
	}
	e.IsActive = active
	cp := *e
	return &cp, nil
}

func (m *memoryEvents) CountPhotos(_ context.Context, eventID uuid.UUID) (int64, error) {
	return m.photos.count(eventID), nil
}

type memoryPhotos struct {
	mu      sync.Mutex
	rows    []db_models.Photo
	failErr error
}

func (m *memoryPhotos) Create(_ context.Context, photo *db_models.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	for _, row := range m.rows {
		if row.EventID == photo.EventID && row.Filename == photo.Filename {
			return utils.ErrDatabaseError
		}
	}
	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now().UTC()
	}
	m.rows = append(m.rows, *photo)
	return nil
}

func (m *memoryPhotos) ListByEvent(_ context.Context, eventID uuid.UUID) ([]db_models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []db_models.Photo{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].EventID == eventID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memoryPhotos) count(eventID uuid.UUID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, row := range m.rows {
		if row.EventID == eventID {
			n++
		}
	}
	return n
}

func (m *memoryPhotos) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memoryBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	seq     int
	putErr  error
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{objects: map[string][]byte{}}
}

func (m *memoryBlobs) Put(_ context.Context, eventID, ext string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return "", m.putErr
	}
	m.seq++
	name := fmt.Sprintf("%d-%06d%s", time.Now().UnixMilli(), m.seq, ext)
	m.objects[eventID+"/"+name] = append([]byte(nil), data...)
	return name, nil
}

func (m *memoryBlobs) Get(_ context.Context, eventID, name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[eventID+"/"+name]
	if !ok {
		return nil, utils.ErrBlobNotFound
	}
	return data, nil
}

func (m *memoryBlobs) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// countingProcessor records how often decoding was attempted.
type countingProcessor struct {
	mu    sync.Mutex
	calls int
	next  ImageProcessor
}

func (p *countingProcessor) Process(data []byte) (*media.Processed, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.next.Process(data)
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 16 {
		for x := 0; x < w; x += 16 {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}))
	return buf.Bytes()
}

func uploadFile(name, contentType string, data []byte) request_models.UploadFile {
	return request_models.UploadFile{
		OriginalName: name,
		ContentType:  contentType,
		Size:         int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// declaredFile claims a size without carrying that many bytes.
func declaredFile(name, contentType string, size int64) request_models.UploadFile {
	return request_models.UploadFile{
		OriginalName: name,
		ContentType:  contentType,
		Size:         size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(nil)), nil
		},
	}
}
