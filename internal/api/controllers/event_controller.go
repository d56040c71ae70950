package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"eventsnap/internal/models/request_models"
	"eventsnap/internal/services"
	"eventsnap/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Create a new event owned by the authenticated organizer
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event"
// @Success 201 {object} response_models.EventResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	event, err := e.eventService.CreateEvent(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, event, "Event created successfully")
}

// ListEvents godoc
// @Summary List my events
// @Description Events owned by the caller, newest first, with photo counts
// @Tags Events
// @Produce json
// @Success 200 {array} response_models.EventResponse
// @Security BearerAuth
// @Router /api/events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	events, err := e.eventService.ListEvents(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// GetEvent godoc
// @Summary Get one of my events
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response_models.EventResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/events/{id} [get]
func (e *EventController) GetEvent(c *gin.Context) {
	event, err := e.eventService.GetEvent(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

// SetEventStatus godoc
// @Summary Activate or deactivate an event
// @Description Inactive events stop accepting guest uploads
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body request_models.SetEventStatusRequest true "Status"
// @Success 200 {object} response_models.EventResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/events/{id}/status [patch]
func (e *EventController) SetEventStatus(c *gin.Context) {
	var req request_models.SetEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	event, err := e.eventService.SetActive(c.Request.Context(), c.Param("id"), c.GetString("user_id"), *req.IsActive)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event status updated successfully")
}

// GetPublicEvent godoc
// @Summary Public event info for guests
// @Description Only active events are visible
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response_models.PublicEventResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/events/{id}/public [get]
func (e *EventController) GetPublicEvent(c *gin.Context) {
	event, err := e.eventService.GetPublicEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

// bindingMessage names the first field that failed binding.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return jsonName(verrs[0].Field()) + " is required"
	}
	return "Invalid request body"
}

func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
