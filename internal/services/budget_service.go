package services

import (
	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// budgetService produces the read-only cost breakdown for a trip. Nothing
// is cached: every call recomputes from the current expense and activity
// rows, so the result is always consistent with stored state.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// activitiesCategory is the synthetic breakdown category that aggregated
// activity costs are reported under. An expense category with the same
// literal name is merged additively.
const activitiesCategory = "Activities"

type categoryTotal struct {
	Category string
	Total    float64
}

// ComputeBudget sums expenses grouped by category (case-sensitive, as
// stored), folds total activity cost in under "Activities" when positive,
// and derives total, remaining, and percentage used. Remaining may go
// negative; percentage is 0 when no budget limit is set.
func (s *budgetService) ComputeBudget(userID, tripID string) (*BudgetBreakdown, error) {
	trip, err := ownedTrip(s.db, userID, tripID)
	if err != nil {
		return nil, err
	}

	var totals []categoryTotal
	err = s.db.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("trip_id = ?", trip.ID).
		Group("category").
		Scan(&totals).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	breakdown := make(map[string]float64, len(totals)+1)
	for _, ct := range totals {
		breakdown[ct.Category] = ct.Total
	}

	var activitiesCost float64
	err = s.db.Model(&models.Activity{}).
		Joins("JOIN destinations ON destinations.id = activities.destination_id").
		Where("destinations.trip_id = ?", trip.ID).
		Select("COALESCE(SUM(activities.cost), 0)").
		Scan(&activitiesCost).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if activitiesCost > 0 {
		breakdown[activitiesCategory] += activitiesCost
	}

	var totalCost float64
	for _, amount := range breakdown {
		totalCost += amount
	}

	var percentageUsed float64
	if trip.BudgetLimit > 0 {
		percentageUsed = totalCost / trip.BudgetLimit * 100
	}

	return &BudgetBreakdown{
		BudgetLimit:    trip.BudgetLimit,
		TotalCost:      totalCost,
		Remaining:      trip.BudgetLimit - totalCost,
		Breakdown:      breakdown,
		PercentageUsed: percentageUsed,
	}, nil
}
