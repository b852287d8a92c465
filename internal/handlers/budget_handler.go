package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
)

// BudgetHandler handles budget breakdown requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetTripBudget handles computing a trip's budget breakdown.
// @Summary     Get budget breakdown
// @Description Compute the trip's cost breakdown from expenses and activity costs
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Trip ID"
// @Success     200 {object} services.BudgetBreakdown "Budget breakdown"
// @Failure     400 {object} ErrorResponse "Invalid trip ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Trip not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trips/{id}/budget [get]
func (h *BudgetHandler) GetTripBudget(c *gin.Context) {
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

	breakdown, err := h.budgetService.ComputeBudget(userID, tripID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
