package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
)

// expenseService records cost entries directly against a trip. Expense
// dates are deliberately not validated against the trip window; entries
// like pre-trip bookings land outside it.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// AddExpense records an expense against the trip.
func (s *expenseService) AddExpense(userID, tripID, category string, amount float64, date models.DateOnly, description string) (*models.Expense, error) {
	trip, err := ownedTrip(s.db, userID, tripID)
	if err != nil {
		return nil, err
	}

	if category == "" || date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrMissingField, "Category, amount, and date are required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must not be negative")
	}

	expense := &models.Expense{
		TripID:      trip.ID,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetTripExpenses returns a paginated list of the trip's expenses,
// newest date first.
func (s *expenseService) GetTripExpenses(userID, tripID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	trip, err := ownedTrip(s.db, userID, tripID)
	if err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("trip_id = ?", trip.ID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense removes an expense if its trip belongs to the user.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	var expense models.Expense
	err := s.db.
		Joins("JOIN trips ON trips.id = expenses.trip_id").
		Where("expenses.id = ? AND trips.user_id = ?", expenseID, userID).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
