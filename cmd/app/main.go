package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"eventsnap/cmd/fx/config_fx"
	"eventsnap/cmd/fx/controllers_fx"
	"eventsnap/cmd/fx/db_fx"
	"eventsnap/cmd/fx/event_fx"
	"eventsnap/cmd/fx/gallery_fx"
	"eventsnap/cmd/fx/intake_fx"
	"eventsnap/cmd/fx/storage_fx"
	"eventsnap/internal/api/controllers"
	"eventsnap/internal/config"
	"eventsnap/pkg/middleware"
)

// multipartSlack covers form fields and part headers on top of file bytes.
const multipartSlack = 1 << 20

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		storage_fx.Module,
		event_fx.Module,
		intake_fx.Module,
		gallery_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	eventController *controllers.EventController,
	uploadController *controllers.UploadController,
	galleryController *controllers.GalleryController,
	healthController *controllers.HealthController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Media.MaxUploadBytes + multipartSlack
	r.Use(middleware.TraceIDMiddleware(logger.Named("http")))
	r.Use(middleware.RequestLoggerMiddleware())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, []byte(cfg.JWTSecret), eventController, uploadController, galleryController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtSecret []byte,
	eventController *controllers.EventController,
	uploadController *controllers.UploadController,
	galleryController *controllers.GalleryController,
	healthController *controllers.HealthController) {

	r.GET("/healthz", healthController.Health)
	r.GET("/uploads/:eventId/:filename", galleryController.ServeFile)

	api := r.Group("/api")
	api.POST("/upload", uploadController.UploadPhotos)
	api.GET("/events/:id/public", eventController.GetPublicEvent)

	eventsGroup := api.Group("/events")
	eventsGroup.Use(middleware.JWTAuthMiddleware(jwtSecret))
	eventsGroup.POST("", eventController.CreateEvent)
	eventsGroup.GET("", eventController.ListEvents)
	eventsGroup.GET("/:id", eventController.GetEvent)
	eventsGroup.PATCH("/:id/status", eventController.SetEventStatus)
	eventsGroup.GET("/:id/photos", galleryController.ListPhotos)
	eventsGroup.GET("/:id/archive", galleryController.DownloadArchive)
}
