package controllers

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventsnap/internal/models/response_models"
	"eventsnap/internal/services"
	"eventsnap/internal/storage"
	"eventsnap/pkg/utils"
)

func newGalleryRouter(svc *mockGalleryService, callerID string) *gin.Engine {
	ctrl := NewGalleryController(svc)
	r := gin.New()
	r.Use(withCaller(callerID))
	r.GET("/api/events/:id/photos", ctrl.ListPhotos)
	r.GET("/api/events/:id/archive", ctrl.DownloadArchive)
	r.GET("/uploads/:eventId/:filename", ctrl.ServeFile)
	return r
}

func TestListPhotos(t *testing.T) {
	svc := new(mockGalleryService)
	svc.On("ListPhotos", mock.Anything, "evt-1", "owner-1").
		Return([]response_models.PhotoResponse{{ID: "p2"}, {ID: "p1"}}, nil)
	svc.On("ListPhotos", mock.Anything, "evt-1", "intruder").Return(nil, utils.ErrNotFound)

	w := httptest.NewRecorder()
	newGalleryRouter(svc, "owner-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/evt-1/photos", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var photos []response_models.PhotoResponse
	decodeEnvelope(t, w, &photos)
	assert.Equal(t, "p2", photos[0].ID)

	w = httptest.NewRecorder()
	newGalleryRouter(svc, "intruder").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/evt-1/photos", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeFile(t *testing.T) {
	svc := new(mockGalleryService)
	svc.On("OpenFile", mock.Anything, "evt-1", "1-ab.jpg").
		Return(&services.StoredFile{Name: "1-ab.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")}, nil)
	svc.On("OpenFile", mock.Anything, "evt-1", "missing.jpg").Return(nil, utils.ErrBlobNotFound)

	r := newGalleryRouter(svc, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/evt-1/1-ab.jpg", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, storage.ImmutableCacheControl, w.Header().Get("Cache-Control"))
	assert.Equal(t, "jpeg", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/evt-1/missing.jpg", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "File not found", decodeEnvelope(t, w, nil).Message)
}

func TestServeFile_RealStoreRejectsTraversal(t *testing.T) {
	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	gallery := services.NewGalleryService(nil, nil, nil, blobs, nil)

	r := gin.New()
	r.GET("/uploads/:eventId/:filename", NewGalleryController(gallery).ServeFile)

	for _, path := range []string{"/uploads/evt/..%2F..%2Fetc%2Fpasswd", "/uploads/evt/.upload-1.tmp", "/uploads/evt/none.jpg"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestDownloadArchive(t *testing.T) {
	svc := new(mockGalleryService)
	svc.On("PrepareArchive", mock.Anything, "evt-1", "owner-1").
		Return(&services.PhotoArchive{Name: "Wedding-20250601.zip"}, nil)

	w := httptest.NewRecorder()
	newGalleryRouter(svc, "owner-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/evt-1/archive", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/zip", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Wedding-20250601.zip"`, w.Header().Get("Content-Disposition"))

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}

func TestDownloadArchive_NotOwner(t *testing.T) {
	svc := new(mockGalleryService)
	svc.On("PrepareArchive", mock.Anything, "evt-1", "intruder").Return(nil, utils.ErrNotFound)

	w := httptest.NewRecorder()
	newGalleryRouter(svc, "intruder").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/evt-1/archive", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestHealth(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	r := gin.New()
	r.GET("/healthz", NewHealthController(db).Health)

	dbMock.ExpectPing()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	dbMock.ExpectPing().WillReturnError(errors.New("connection refused"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
