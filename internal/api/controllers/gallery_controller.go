package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventsnap/internal/services"
	"eventsnap/internal/storage"
	"eventsnap/pkg/utils"
)

type GalleryController struct {
	galleryService services.GalleryServiceInterface
}

func NewGalleryController(galleryService services.GalleryServiceInterface) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// ListPhotos godoc
// @Summary List event photos
// @Description Owner-only gallery, newest first
// @Tags Gallery
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} response_models.PhotoResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/events/{id}/photos [get]
func (g *GalleryController) ListPhotos(c *gin.Context) {
	photos, err := g.galleryService.ListPhotos(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photos, "Photos fetched successfully")
}

// DownloadArchive godoc
// @Summary Download all photos
// @Description ZIP archive of every photo in the event
// @Tags Gallery
// @Produce application/zip
// @Param id path string true "Event ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/events/{id}/archive [get]
func (g *GalleryController) DownloadArchive(c *gin.Context) {
	archive, err := g.galleryService.PrepareArchive(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Type", "application/zip")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Name))
	c.Status(http.StatusOK)

	// The status line is already out; a failure here can only be logged.
	if err := archive.WriteTo(c.Request.Context(), c.Writer); err != nil {
		utils.LoggerFrom(c).Warn("archive download interrupted",
			zap.String("event_id", c.Param("id")), zap.Error(err))
	}
}

// ServeFile godoc
// @Summary Raw photo bytes
// @Tags Gallery
// @Produce image/jpeg
// @Param eventId path string true "Event ID"
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /uploads/{eventId}/{filename} [get]
func (g *GalleryController) ServeFile(c *gin.Context) {
	file, err := g.galleryService.OpenFile(c.Request.Context(), c.Param("eventId"), c.Param("filename"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Cache-Control", storage.ImmutableCacheControl)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
