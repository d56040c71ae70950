package controllers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventsnap/internal/models/request_models"
	"eventsnap/internal/models/response_models"
	"eventsnap/internal/services"
	"eventsnap/pkg/utils"
)

type UploadController struct {
	intakeService services.IntakeServiceInterface
}

func NewUploadController(intakeService services.IntakeServiceInterface) *UploadController {
	return &UploadController{
		intakeService: intakeService,
	}
}

// UploadPhotos godoc
// @Summary Upload guest photos
// @Description Multipart upload of one or more photos to an active event
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param eventId formData string true "Event ID"
// @Param guestName formData string true "Guest name"
// @Param file formData file true "Photo (repeatable)"
// @Success 200 {object} response_models.UploadResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/upload [post]
func (u *UploadController) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	defer func() { _ = form.RemoveAll() }()

	eventID := firstValue(form, "eventId")
	guestName := firstValue(form, "guestName")
	headers := form.File["file"]
	if eventID == "" || guestName == "" || len(headers) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	files := make([]request_models.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, toUploadFile(fh))
	}

	outcomes := u.intakeService.SubmitBatch(c.Request.Context(), eventID, guestName, files)

	resp := response_models.UploadResponse{Results: make([]response_models.UploadResult, 0, len(outcomes))}
	var firstErr error
	for _, o := range outcomes {
		result := response_models.UploadResult{OriginalName: o.OriginalName}
		if o.Err != nil {
			if firstErr == nil {
				firstErr = o.Err
			}
			result.Code, result.Error = utils.ErrorStatus(o.Err)
			resp.Failed++
		} else {
			result.Success = true
			result.Code = http.StatusOK
			result.Photo = o.Photo
			resp.Uploaded++
		}
		resp.Results = append(resp.Results, result)
	}

	if resp.Uploaded == 0 {
		utils.HandleServiceError(c, firstErr)
		return
	}
	if resp.Failed > 0 {
		utils.LoggerFrom(c).Info("partial upload",
			zap.String("event_id", eventID), zap.Int("uploaded", resp.Uploaded), zap.Int("failed", resp.Failed))
	}

	utils.RespondSuccess(c, resp, fmt.Sprintf("Uploaded %d of %d photos", resp.Uploaded, len(outcomes)))
}

func firstValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

func toUploadFile(fh *multipart.FileHeader) request_models.UploadFile {
	return request_models.UploadFile{
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
