package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"eventsnap/internal/models/db_models"
	"eventsnap/internal/models/request_models"
	"eventsnap/internal/models/response_models"
	"eventsnap/internal/repositories"
	"eventsnap/pkg/utils"
)

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, ownerID string, req request_models.CreateEventRequest) (*response_models.EventResponse, error)
	ListEvents(ctx context.Context, ownerID string) ([]response_models.EventResponse, error)
	GetEvent(ctx context.Context, id, ownerID string) (*response_models.EventResponse, error)
	GetPublicEvent(ctx context.Context, id string) (*response_models.PublicEventResponse, error)
	SetActive(ctx context.Context, id, ownerID string, active bool) (*response_models.EventResponse, error)
}

type EventService struct {
	eventRepo  repositories.EventRepository
	appBaseURL string
	logger     *zap.Logger
}

func NewEventService(eventRepo repositories.EventRepository, appBaseURL string, logger *zap.Logger) EventServiceInterface {
	return &EventService{
		eventRepo:  eventRepo,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		logger:     logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, ownerID string, req request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	if ownerID == "" {
		return nil, utils.ErrUnauthorized
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, utils.NewValidationError("title", "Title is required")
	}
	date, err := utils.ParseEventDate(req.Date)
	if err != nil {
		return nil, utils.NewValidationError("date", "Date must be an ISO-8601 timestamp")
	}

	event := &db_models.Event{
		Title:       title,
		Description: optional(req.Description),
		Date:        date,
		Location:    optional(req.Location),
		IsActive:    true,
		CreatorID:   ownerID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event created", zap.String("event_id", event.ID.String()), zap.String("creator_id", ownerID))
	resp := s.toResponse(event, 0)
	return &resp, nil
}

func (s *EventService) ListEvents(ctx context.Context, ownerID string) ([]response_models.EventResponse, error) {
	events, err := s.eventRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, s.toResponse(&events[i].Event, events[i].PhotoCount))
	}
	return out, nil
}

func (s *EventService) GetEvent(ctx context.Context, id, ownerID string) (*response_models.EventResponse, error) {
	event, err := s.eventRepo.GetByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	count, err := s.eventRepo.CountPhotos(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(event, count)
	return &resp, nil
}

func (s *EventService) GetPublicEvent(ctx context.Context, id string) (*response_models.PublicEventResponse, error) {
	event, err := s.eventRepo.GetPublicActive(ctx, id)
	if err != nil {
		return nil, err
	}

	return &response_models.PublicEventResponse{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		IsActive:    event.IsActive,
	}, nil
}

func (s *EventService) SetActive(ctx context.Context, id, ownerID string, active bool) (*response_models.EventResponse, error) {
	event, err := s.eventRepo.SetActiveForOwner(ctx, id, ownerID, active)
	if err != nil {
		return nil, err
	}
	count, err := s.eventRepo.CountPhotos(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event status changed", zap.String("event_id", event.ID.String()), zap.Bool("is_active", active))
	resp := s.toResponse(event, count)
	return &resp, nil
}

// ShareURL is the guest upload link distributed by the organizer.
func (s *EventService) ShareURL(eventID string) string {
	return s.appBaseURL + "/event/" + eventID + "/upload"
}

func (s *EventService) toResponse(event *db_models.Event, photoCount int64) response_models.EventResponse {
	id := event.ID.String()
	return response_models.EventResponse{
		ID:          id,
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Location:    event.Location,
		IsActive:    event.IsActive,
		CreatorID:   event.CreatorID,
		CreatedAt:   event.CreatedAt,
		PhotoCount:  photoCount,
		ShareURL:    s.ShareURL(id),
	}
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
