package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
	"globetrotter/internal/services"
)

// TripHandler handles trip-related requests.
type TripHandler struct {
	tripService services.TripServicer
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService services.TripServicer) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// CreateTripRequest represents the request payload for creating a trip.
type CreateTripRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=255"`
	StartDate   models.DateOnly `json:"start_date" binding:"required"`
	EndDate     models.DateOnly `json:"end_date" binding:"required"`
	BudgetLimit float64         `json:"budget_limit" binding:"omitempty,gte=0"`
	CoverPhoto  string          `json:"cover_photo" binding:"omitempty,max=500"`
	IsPublic    bool            `json:"is_public"`
}

// UpdateTripRequest represents the request payload for updating a trip.
// All fields are optional; omitted fields keep their stored value.
type UpdateTripRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=255"`
	StartDate   *models.DateOnly `json:"start_date"`
	EndDate     *models.DateOnly `json:"end_date"`
	BudgetLimit *float64         `json:"budget_limit" binding:"omitempty,gte=0"`
	CoverPhoto  *string          `json:"cover_photo" binding:"omitempty,max=500"`
	IsPublic    *bool            `json:"is_public"`
}

// CreateTrip handles the creation of a new trip.
// @Summary     Create a trip
// @Description Create a new trip with a date window and budget ceiling
// @Tags        trips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTripRequest true "Trip details"
// @Success     201 {object} models.Trip "Trip created"
// @Failure     400 {object} ErrorResponse "Invalid input or inverted date range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	trip, err := h.tripService.CreateTrip(userID, req.Title, req.StartDate, req.EndDate, req.BudgetLimit, req.CoverPhoto, req.IsPublic)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// GetTrips handles listing the authenticated user's trips.
// @Summary     Get trips
// @Description Get a paginated summary list of the authenticated user's trips
// @Tags        trips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[services.TripSummary] "Paginated trip summaries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips [get]
func (h *TripHandler) GetTrips(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.tripService.GetUserTrips(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTrip handles retrieving a trip with its full itinerary.
// @Summary     Get trip by ID
// @Description Get a trip with destinations, activities, and expenses
// @Tags        trips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} models.Trip "Trip details"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	trip, err := h.tripService.GetTripByID(userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// UpdateTrip handles a partial trip update.
// @Summary     Update trip
// @Description Update trip fields; shrinking the window past an existing destination fails
// @Tags        trips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Trip ID"
// @Param       request body UpdateTripRequest true "Updated trip fields"
// @Success     200 {object} models.Trip "Updated trip"
// @Failure     400 {object} ErrorResponse "Invalid input or inverted date range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     409 {object} ErrorResponse "Destinations outside new window"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id} [put]
func (h *TripHandler) UpdateTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	trip, err := h.tripService.UpdateTrip(userID, tripID, services.TripUpdate{
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BudgetLimit: req.BudgetLimit,
		CoverPhoto:  req.CoverPhoto,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// DeleteTrip handles deleting a trip and all of its children.
// @Summary     Delete trip
// @Description Delete a trip; destinations, activities, and expenses cascade
// @Tags        trips
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} MessageResponse "Trip deleted"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tripID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tripService.DeleteTrip(userID, tripID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// GetSharedTrip handles the public read-only shared trip view.
// @Summary     Get shared trip
// @Description Resolve a public share token to a read-only trip view
// @Tags        trips
// @Accept      json
// @Produce     json
// @Param       token path string true "Share token"
// @Success     200 {object} services.SharedTrip "Shared trip"
// @Failure     404 {object} ErrorResponse "Trip not found or not publicly shared"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/shared/{token} [get]
func (h *TripHandler) GetSharedTrip(c *gin.Context) {
	token := c.Param("token")

	trip, err := h.tripService.GetSharedTrip(token)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
