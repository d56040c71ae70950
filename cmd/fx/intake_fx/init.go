package intake_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventsnap/internal/config"
	"eventsnap/internal/media"
	"eventsnap/internal/repositories"
	"eventsnap/internal/services"
	"eventsnap/internal/storage"
)

var Module = fx.Provide(
	providePhotoRepo, provideValidator, provideProcessor, provideIntakeService)

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepository {
	return repositories.NewPhotoRepository(db)
}

func provideValidator(cfg *config.Config) services.FileValidator {
	return media.NewValidator(cfg.Media.MaxUploadBytes)
}

func provideProcessor(cfg *config.Config) services.ImageProcessor {
	return media.NewImageProcessor(cfg.Media.MaxDimension, cfg.Media.JPEGQuality)
}

func provideIntakeService(
	gate services.AccessGate,
	validator services.FileValidator,
	processor services.ImageProcessor,
	blobs storage.BlobStore,
	photoRepo repositories.PhotoRepository,
	logger *zap.Logger,
) services.IntakeServiceInterface {
	return services.NewIntakeService(gate, validator, processor, blobs, photoRepo, logger.Named("intake"))
}
