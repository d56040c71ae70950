package controllers_fx

import (
	"go.uber.org/fx"

	"eventsnap/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewUploadController),
	fx.Provide(controllers.NewGalleryController),
	fx.Provide(controllers.NewHealthController))
