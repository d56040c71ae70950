package controllers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventsnap/internal/models/request_models"
	"eventsnap/internal/models/response_models"
	"eventsnap/internal/services"
	"eventsnap/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withCaller stands in for the JWT middleware.
func withCaller(callerID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("trace_id", "trace-test")
		if callerID != "" {
			c.Set("user_id", callerID)
		}
		c.Next()
	}
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) utils.APIResponse {
	t.Helper()
	var raw struct {
		utils.APIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.APIResponse
}

type mockEventService struct {
	mock.Mock
}

func (m *mockEventService) CreateEvent(ctx context.Context, ownerID string, req request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	args := m.Called(ctx, ownerID, req)
	resp, _ := args.Get(0).(*response_models.EventResponse)
	return resp, args.Error(1)
}

func (m *mockEventService) ListEvents(ctx context.Context, ownerID string) ([]response_models.EventResponse, error) {
	args := m.Called(ctx, ownerID)
	resp, _ := args.Get(0).([]response_models.EventResponse)
	return resp, args.Error(1)
}

func (m *mockEventService) GetEvent(ctx context.Context, id, ownerID string) (*response_models.EventResponse, error) {
	args := m.Called(ctx, id, ownerID)
	resp, _ := args.Get(0).(*response_models.EventResponse)
	return resp, args.Error(1)
}

func (m *mockEventService) GetPublicEvent(ctx context.Context, id string) (*response_models.PublicEventResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*response_models.PublicEventResponse)
	return resp, args.Error(1)
}

func (m *mockEventService) SetActive(ctx context.Context, id, ownerID string, active bool) (*response_models.EventResponse, error) {
	args := m.Called(ctx, id, ownerID, active)
	resp, _ := args.Get(0).(*response_models.EventResponse)
	return resp, args.Error(1)
}

type mockIntakeService struct {
	mock.Mock
}

func (m *mockIntakeService) Submit(ctx context.Context, sub request_models.Submission) (*response_models.PhotoSummary, error) {
	args := m.Called(ctx, sub)
	resp, _ := args.Get(0).(*response_models.PhotoSummary)
	return resp, args.Error(1)
}

func (m *mockIntakeService) SubmitBatch(ctx context.Context, eventID, guestName string, files []request_models.UploadFile) []services.FileOutcome {
	args := m.Called(ctx, eventID, guestName, files)
	return args.Get(0).([]services.FileOutcome)
}

type mockGalleryService struct {
	mock.Mock
}

func (m *mockGalleryService) ListPhotos(ctx context.Context, eventID, callerID string) ([]response_models.PhotoResponse, error) {
	args := m.Called(ctx, eventID, callerID)
	resp, _ := args.Get(0).([]response_models.PhotoResponse)
	return resp, args.Error(1)
}

func (m *mockGalleryService) OpenFile(ctx context.Context, eventID, filename string) (*services.StoredFile, error) {
	args := m.Called(ctx, eventID, filename)
	resp, _ := args.Get(0).(*services.StoredFile)
	return resp, args.Error(1)
}

func (m *mockGalleryService) PrepareArchive(ctx context.Context, eventID, callerID string) (*services.PhotoArchive, error) {
	args := m.Called(ctx, eventID, callerID)
	resp, _ := args.Get(0).(*services.PhotoArchive)
	return resp, args.Error(1)
}
