package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventsnap/internal/media"
	"eventsnap/internal/models/db_models"
	"eventsnap/internal/models/request_models"
	"eventsnap/internal/models/response_models"
	"eventsnap/internal/repositories"
	"eventsnap/internal/storage"
	"eventsnap/pkg/utils"
)

// IntakeState names the steps one submitted file moves through.
type IntakeState string

const (
	StateReceived  IntakeState = "received"
	StateValidated IntakeState = "validated"
	StateProcessed IntakeState = "processed"
	StateStored    IntakeState = "stored"
	StateRecorded  IntakeState = "recorded"
	StateRejected  IntakeState = "rejected"
	StateFailed    IntakeState = "failed"
)

type FileValidator interface {
	Validate(contentType string, size int64) error
	MaxBytes() int64
}

type ImageProcessor interface {
	Process(data []byte) (*media.Processed, error)
}

// FileOutcome is the terminal result for one file of a batch.
type FileOutcome struct {
	OriginalName string
	State        IntakeState
	Photo        *response_models.PhotoSummary
	Err          error
}

type IntakeServiceInterface interface {
	Submit(ctx context.Context, sub request_models.Submission) (*response_models.PhotoSummary, error)
	SubmitBatch(ctx context.Context, eventID, guestName string, files []request_models.UploadFile) []FileOutcome
}

type IntakeService struct {
	gate      AccessGate
	validator FileValidator
	processor ImageProcessor
	blobs     storage.BlobStore
	photoRepo repositories.PhotoRepository
	logger    *zap.Logger
}

func NewIntakeService(
	gate AccessGate,
	validator FileValidator,
	processor ImageProcessor,
	blobs storage.BlobStore,
	photoRepo repositories.PhotoRepository,
	logger *zap.Logger,
) IntakeServiceInterface {
	return &IntakeService{
		gate:      gate,
		validator: validator,
		processor: processor,
		blobs:     blobs,
		photoRepo: photoRepo,
		logger:    logger,
	}
}

// Submit runs one file through validate, process, store and record. Each
// step only starts after the previous one fully succeeded, so a failure never
// leaves a Photo row behind. A failed record after a successful store leaves
// an orphaned blob, which is logged for manual reconciliation.
func (s *IntakeService) Submit(ctx context.Context, sub request_models.Submission) (*response_models.PhotoSummary, error) {
	log := s.logger.With(
		zap.String("event_id", sub.EventID),
		zap.String("original_name", sub.File.OriginalName),
	)
	log.Debug("intake", zap.String("state", string(StateReceived)))

	guestName := strings.TrimSpace(sub.GuestName)
	if guestName == "" {
		return nil, s.reject(log, utils.NewValidationError("guestName", "Guest name is required"))
	}

	ok, err := s.gate.CanSubmit(ctx, sub.EventID)
	if err != nil {
		return nil, s.fail(log, err)
	}
	eventID, parseErr := uuid.Parse(sub.EventID)
	if !ok || parseErr != nil {
		return nil, s.reject(log, utils.ErrEventUnavailable)
	}

	if err := s.validator.Validate(sub.File.ContentType, sub.File.Size); err != nil {
		return nil, s.reject(log, err)
	}
	log.Debug("intake", zap.String("state", string(StateValidated)))

	raw, err := s.readFile(sub.File)
	if err != nil {
		if errors.Is(err, utils.ErrTooLarge) {
			return nil, s.reject(log, err)
		}
		return nil, s.fail(log, err)
	}

	processed, err := s.processor.Process(raw)
	if err != nil {
		return nil, s.fail(log, err)
	}
	log.Debug("intake", zap.String("state", string(StateProcessed)),
		zap.Int("width", processed.Width), zap.Int("height", processed.Height), zap.Int("size", len(processed.Data)))

	filename, err := s.blobs.Put(ctx, eventID.String(), processed.Ext, processed.Data)
	if err != nil {
		if !errors.Is(err, utils.ErrStorage) {
			err = fmt.Errorf("%w: %w", utils.ErrStorage, err)
		}
		return nil, s.fail(log, err)
	}
	log = log.With(zap.String("filename", filename))
	log.Debug("intake", zap.String("state", string(StateStored)))

	photo := &db_models.Photo{
		EventID:      eventID,
		Filename:     filename,
		OriginalName: sub.File.OriginalName,
		MimeType:     processed.MimeType,
		Size:         int64(len(processed.Data)),
		Width:        processed.Width,
		Height:       processed.Height,
		URL:          db_models.PhotoURL(eventID, filename),
		UploadedBy:   guestName,
		IsApproved:   true,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		log.Error("photo record failed after blob was stored; blob is orphaned",
			zap.String("state", string(StateFailed)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", utils.ErrPersistence, err)
	}
	log.Info("intake", zap.String("state", string(StateRecorded)), zap.String("photo_id", photo.ID.String()))

	return &response_models.PhotoSummary{
		ID:         photo.ID.String(),
		Filename:   photo.Filename,
		UploadedBy: photo.UploadedBy,
		UploadedAt: photo.UploadedAt,
	}, nil
}

// SubmitBatch processes files one after another. A failing file does not
// stop its siblings; each gets its own outcome.
func (s *IntakeService) SubmitBatch(ctx context.Context, eventID, guestName string, files []request_models.UploadFile) []FileOutcome {
	outcomes := make([]FileOutcome, 0, len(files))
	for _, file := range files {
		photo, err := s.Submit(ctx, request_models.Submission{
			EventID:   eventID,
			GuestName: guestName,
			File:      file,
		})
		outcomes = append(outcomes, FileOutcome{
			OriginalName: file.OriginalName,
			State:        TerminalState(err),
			Photo:        photo,
			Err:          err,
		})
	}
	return outcomes
}

// TerminalState classifies a Submit result. Guest-correctable problems are
// rejections; everything else is a failure.
func TerminalState(err error) IntakeState {
	switch {
	case err == nil:
		return StateRecorded
	case errors.Is(err, utils.ErrValidation),
		errors.Is(err, utils.ErrEventUnavailable),
		errors.Is(err, utils.ErrTooLarge),
		errors.Is(err, utils.ErrUnsupportedType):
		return StateRejected
	default:
		return StateFailed
	}
}

// readFile reads at most one byte past the ceiling so a body larger than its
// declared size is still caught.
func (s *IntakeService) readFile(file request_models.UploadFile) ([]byte, error) {
	if file.Open == nil {
		return nil, errors.New("upload has no content")
	}
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = rc.Close() }()

	limit := s.validator.MaxBytes()
	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", utils.ErrTooLarge, limit)
	}
	return data, nil
}

func (s *IntakeService) reject(log *zap.Logger, err error) error {
	log.Info("intake", zap.String("state", string(StateRejected)), zap.Error(err))
	return err
}

func (s *IntakeService) fail(log *zap.Logger, err error) error {
	if errors.Is(err, utils.ErrDecode) {
		log.Info("intake", zap.String("state", string(StateFailed)), zap.Error(err))
	} else {
		log.Error("intake", zap.String("state", string(StateFailed)), zap.Error(err))
	}
	return err
}
