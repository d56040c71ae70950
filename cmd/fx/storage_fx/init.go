package storage_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"eventsnap/internal/config"
	"eventsnap/internal/storage"
)

var Module = fx.Provide(
	provideBlobStore)

func provideBlobStore(cfg *config.Config, logger *zap.Logger) (storage.BlobStore, error) {
	store, err := storage.NewStoreFromConfig(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	logger.Info("blob store ready", zap.String("driver", cfg.Storage.Driver))
	return store, nil
}
