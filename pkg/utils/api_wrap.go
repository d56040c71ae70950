package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondWithStatus(c, http.StatusCreated, data, message)
}

func RespondWithStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// ErrorStatus maps a service error to its HTTP status and client message.
func ErrorStatus(err error) (int, string) {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrEventUnavailable):
		return http.StatusNotFound, "Event not found or inactive"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Event not found"
	case errors.Is(err, ErrBlobNotFound):
		return http.StatusNotFound, "File not found"
	case errors.Is(err, ErrTooLarge):
		return http.StatusBadRequest, "File too large"
	case errors.Is(err, ErrUnsupportedType):
		return http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, and WebP are allowed"
	case errors.Is(err, ErrDecode):
		return http.StatusBadRequest, "File is not a valid image"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrStorage), errors.Is(err, ErrPersistence):
		return http.StatusInternalServerError, "Upload failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := ErrorStatus(err)
	if code >= http.StatusInternalServerError {
		LoggerFrom(c).Error("request failed", zap.Error(err))
	}
	RespondError(c, code, message)
}
