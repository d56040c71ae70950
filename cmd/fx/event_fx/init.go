package event_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventsnap/internal/config"
	"eventsnap/internal/repositories"
	"eventsnap/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideAccessGate, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideAccessGate(eventRepo repositories.EventRepository) services.AccessGate {
	return services.NewAccessGate(eventRepo)
}

func provideEventService(eventRepo repositories.EventRepository, cfg *config.Config, logger *zap.Logger) services.EventServiceInterface {
	return services.NewEventService(eventRepo, cfg.AppBaseURL, logger.Named("events"))
}
