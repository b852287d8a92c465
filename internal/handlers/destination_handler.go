package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
	"globetrotter/internal/services"
)

// DestinationHandler handles destination-related requests.
type DestinationHandler struct {
	destinationService services.DestinationServicer
}

// NewDestinationHandler creates a new DestinationHandler.
func NewDestinationHandler(destinationService services.DestinationServicer) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

// AddDestinationRequest represents the request payload for adding a destination.
type AddDestinationRequest struct {
	CityName      string          `json:"city_name" binding:"required,min=1,max=255"`
	Country       string          `json:"country" binding:"required,min=1,max=255"`
	ArrivalDate   models.DateOnly `json:"arrival_date" binding:"required"`
	DepartureDate models.DateOnly `json:"departure_date" binding:"required"`
	OrderIndex    *int            `json:"order_index" binding:"omitempty,gte=0"`
}

// UpdateDestinationRequest represents the request payload for updating a destination.
type UpdateDestinationRequest struct {
	CityName      *string          `json:"city_name" binding:"omitempty,min=1,max=255"`
	Country       *string          `json:"country" binding:"omitempty,min=1,max=255"`
	ArrivalDate   *models.DateOnly `json:"arrival_date"`
	DepartureDate *models.DateOnly `json:"departure_date"`
	OrderIndex    *int             `json:"order_index" binding:"omitempty,gte=0"`
}

// ReorderDestinationsRequest carries the caller-supplied permutation of
// destination IDs in their new display order.
type ReorderDestinationsRequest struct {
	DestinationIDs []string `json:"destination_ids" binding:"required"`
}

// AddDestination handles adding a destination to a trip.
// @Summary     Add destination
// @Description Add a destination whose stay must nest inside the trip window
// @Tags        destinations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Trip ID"
// @Param       request body AddDestinationRequest true "Destination details"
// @Success     201 {object} models.Destination "Destination created"
// @Failure     400 {object} ErrorResponse "Invalid input, inverted range, or outside trip window"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/destinations [post]
func (h *DestinationHandler) AddDestination(c *gin.Context) {
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

	var req AddDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	destination, err := h.destinationService.AddDestination(
		userID, tripID, req.CityName, req.Country, req.ArrivalDate, req.DepartureDate, req.OrderIndex,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"destination": destination})
}

// UpdateDestination handles a partial destination update.
// @Summary     Update destination
// @Description Update destination fields; dates are re-validated against the trip window
// @Tags        destinations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       destId  path string                   true "Destination ID"
// @Param       request body UpdateDestinationRequest true "Updated destination fields"
// @Success     200 {object} models.Destination "Updated destination"
// @Failure     400 {object} ErrorResponse "Invalid input, inverted range, or outside trip window"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Destination not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /destinations/{destId} [put]
func (h *DestinationHandler) UpdateDestination(c *gin.Context) {
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

	var req UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	destination, err := h.destinationService.UpdateDestination(userID, destinationID, services.DestinationUpdate{
		CityName:      req.CityName,
		Country:       req.Country,
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		OrderIndex:    req.OrderIndex,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"destination": destination})
}

// DeleteDestination handles deleting a destination and its activities.
// @Summary     Delete destination
// @Description Delete a destination; its activities cascade, sibling indices keep gaps
// @Tags        destinations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       destId path string true "Destination ID"
// @Success     200 {object} MessageResponse "Destination deleted"
// @Failure     400 {object} ErrorResponse "Invalid destination ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Destination not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /destinations/{destId} [delete]
func (h *DestinationHandler) DeleteDestination(c *gin.Context) {
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

	if err := h.destinationService.DeleteDestination(userID, destinationID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}

// ReorderDestinations handles bulk destination reordering.
// @Summary     Reorder destinations
// @Description Assign order_index by position from the supplied ID sequence; best-effort, re-fetch to confirm
// @Tags        destinations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                     true "Trip ID"
// @Param       request body ReorderDestinationsRequest true "Destination IDs in new order"
// @Success     200 {object} MessageResponse "Destinations reordered"
// @Failure     400 {object} ErrorResponse "Payload is not an ID array"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Reorder partially applied"
// @Router      /trips/{id}/destinations/reorder [put]
func (h *DestinationHandler) ReorderDestinations(c *gin.Context) {
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

	var req ReorderDestinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A present-but-non-array payload is a type error, not a missing field.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidArgument, "destination_ids must be an array"))
			return
		}
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidArgument, err.Error()))
		return
	}

	if err := h.destinationService.ReorderDestinations(userID, tripID, req.DestinationIDs); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destinations reordered successfully"})
}
