package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/services"
)

// ActivityHandler handles activity-related requests.
type ActivityHandler struct {
	activityService services.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService services.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// AddActivityRequest represents the request payload for adding an activity.
// Name and category presence is enforced by the service so a missing field
// is reported as MISSING_FIELD rather than a generic binding error.
type AddActivityRequest struct {
	Name     string  `json:"name" binding:"omitempty,max=255"`
	Category string  `json:"category" binding:"omitempty,max=100"`
	Cost     float64 `json:"cost" binding:"omitempty,gte=0"`
	TimeSlot *string `json:"time_slot" binding:"omitempty,clock_time"`
	IsBooked bool    `json:"is_booked"`
}

// UpdateActivityRequest represents the request payload for updating an activity.
type UpdateActivityRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Category *string  `json:"category" binding:"omitempty,min=1,max=100"`
	Cost     *float64 `json:"cost" binding:"omitempty,gte=0"`
	TimeSlot *string  `json:"time_slot" binding:"omitempty,clock_time"`
	IsBooked *bool    `json:"is_booked"`
}

// AddActivity handles attaching an activity to a destination.
// @Summary     Add activity
// @Description Add a bookable activity to a destination
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       destId  path string             true "Destination ID"
// @Param       request body AddActivityRequest true "Activity details"
// @Success     201 {object} models.Activity "Activity created"
// @Failure     400 {object} ErrorResponse "Invalid input or missing name/category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Destination not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /destinations/{destId}/activities [post]
func (h *ActivityHandler) AddActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	destinationID, err := parsePathID(c, "destId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	activity, err := h.activityService.AddActivity(userID, destinationID, req.Name, req.Category, req.Cost, req.TimeSlot, req.IsBooked)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

// UpdateActivity handles a partial activity update.
// @Summary     Update activity
// @Description Update activity fields; ownership chain re-checked per call
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       activityId path string                true "Activity ID"
// @Param       request    body UpdateActivityRequest true "Updated activity fields"
// @Success     200 {object} models.Activity "Updated activity"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities/{activityId} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	activityID, err := parsePathID(c, "activityId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	activity, err := h.activityService.UpdateActivity(userID, activityID, services.ActivityUpdate{
		Name:     req.Name,
		Category: req.Category,
		Cost:     req.Cost,
		TimeSlot: req.TimeSlot,
		IsBooked: req.IsBooked,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// DeleteActivity handles deleting an activity.
// @Summary     Delete activity
// @Description Delete an activity; ownership chain re-checked per call
// @Tags        activities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       activityId path string true "Activity ID"
// @Success     200 {object} MessageResponse "Activity deleted"
// @Failure     400 {object} ErrorResponse "Invalid activity ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Activity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activities/{activityId} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	activityID, err := parsePathID(c, "activityId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.activityService.DeleteActivity(userID, activityID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
