package gallery_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"eventsnap/internal/repositories"
	"eventsnap/internal/services"
	"eventsnap/internal/storage"
)

var Module = fx.Provide(
	provideGalleryService)

func provideGalleryService(
	gate services.AccessGate,
	eventRepo repositories.EventRepository,
	photoRepo repositories.PhotoRepository,
	blobs storage.BlobStore,
	logger *zap.Logger,
) services.GalleryServiceInterface {
	return services.NewGalleryService(gate, eventRepo, photoRepo, blobs, logger.Named("gallery"))
}
