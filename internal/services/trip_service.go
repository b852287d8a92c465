package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
)

// tripService owns the trip date window and budget ceiling. Any window
// mutation that would strand an existing destination outside the new
// range is rejected before a single row is written.
type tripService struct {
	db *gorm.DB
}

// NewTripService creates a new TripServicer.
func NewTripService(db *gorm.DB) TripServicer {
	return &tripService{db: db}
}

// generateShareToken returns a fresh opaque 64-hex-character token.
func generateShareToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// CreateTrip creates a trip with a fresh unique share token.
func (s *tripService) CreateTrip(userID, title string, startDate, endDate models.DateOnly, budgetLimit float64, coverPhoto string, isPublic bool) (*models.Trip, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingField, "title, start_date, and end_date are required")
	}
	if startDate.After(endDate) {
		return nil, apperrors.ErrInvalidRange
	}

	token, err := generateShareToken()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	trip := &models.Trip{
		UserID:      userID,
		Title:       title,
		StartDate:   startDate,
		EndDate:     endDate,
		BudgetLimit: budgetLimit,
		CoverPhoto:  coverPhoto,
		IsPublic:    isPublic,
		ShareToken:  token,
	}

	if err := s.db.Create(trip).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return trip, nil
}

// GetUserTrips returns a paginated summary list of the user's trips,
// most recent start date first.
func (s *tripService) GetUserTrips(userID string, page pagination.PageRequest) (*pagination.PageResponse[TripSummary], error) {
	page.Defaults()

	base := s.db.Model(&models.Trip{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var trips []models.Trip
	if err := base.Preload("Destinations").
		Order("start_date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&trips).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summaries := make([]TripSummary, 0, len(trips))
	for _, trip := range trips {
		summaries = append(summaries, TripSummary{
			ID:          trip.ID,
			Title:       trip.Title,
			StartDate:   trip.StartDate,
			EndDate:     trip.EndDate,
			BudgetLimit: trip.BudgetLimit,
			CoverPhoto:  trip.CoverPhoto,
			IsPublic:    trip.IsPublic,
			CityCount:   len(trip.Destinations),
		})
	}

	result := pagination.NewPageResponse(summaries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTripByID returns the trip with its full itinerary: destinations
// sorted by order_index, their activities, and the trip's expenses.
func (s *tripService) GetTripByID(userID, tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := s.db.
		Preload("Destinations", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("Destinations.Activities").
		Preload("Expenses").
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}

// UpdateTrip applies a partial update. Shrinking the date window is
// rejected when any existing destination would fall outside the proposed
// range; widening always succeeds.
func (s *tripService) UpdateTrip(userID, tripID string, update TripUpdate) (*models.Trip, error) {
	trip, err := ownedTrip(s.db, userID, tripID)
	if err != nil {
		return nil, err
	}

	newStart := trip.StartDate
	newEnd := trip.EndDate
	if update.StartDate != nil {
		newStart = *update.StartDate
	}
	if update.EndDate != nil {
		newEnd = *update.EndDate
	}

	if newStart.After(newEnd) {
		return nil, apperrors.ErrInvalidRange
	}

	// Window changed: every existing destination must still fit.
	if update.StartDate != nil || update.EndDate != nil {
		var destinations []models.Destination
		if err := s.db.Where("trip_id = ?", trip.ID).Find(&destinations).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, dest := range destinations {
			if dest.ArrivalDate.Before(newStart) || dest.DepartureDate.After(newEnd) {
				return nil, apperrors.ErrRangeConflict
			}
		}
	}

	updates := make(map[string]interface{})
	if update.Title != nil && *update.Title != "" {
		updates["title"] = *update.Title
	}
	if update.StartDate != nil {
		updates["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		updates["end_date"] = *update.EndDate
	}
	if update.BudgetLimit != nil {
		updates["budget_limit"] = *update.BudgetLimit
	}
	if update.CoverPhoto != nil {
		updates["cover_photo"] = *update.CoverPhoto
	}
	if update.IsPublic != nil {
		updates["is_public"] = *update.IsPublic
	}

	if len(updates) > 0 {
		if err := s.db.Model(trip).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return trip, nil
}

// DeleteTrip removes the trip and everything beneath it: destinations,
// their activities, and expenses, in one transaction.
func (s *tripService) DeleteTrip(userID, tripID string) error {
	trip, err := ownedTrip(s.db, userID, tripID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		destIDs := tx.Model(&models.Destination{}).Select("id").Where("trip_id = ?", trip.ID)
		if err := tx.Where("destination_id IN (?)", destIDs).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.Destination{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(trip).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetSharedTrip resolves a public share token to a read-only trip view.
// The owner's user ID and the token itself are stripped from the output.
func (s *tripService) GetSharedTrip(token string) (*SharedTrip, error) {
	var trip models.Trip
	err := s.db.
		Preload("Destinations", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("Destinations.Activities").
		Where("share_token = ? AND is_public = ?", token, true).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrTripNotFound, "Trip not found or not publicly shared")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	destinations := trip.Destinations
	if destinations == nil {
		destinations = []models.Destination{}
	}

	return &SharedTrip{
		ID:           trip.ID,
		Title:        trip.Title,
		StartDate:    trip.StartDate,
		EndDate:      trip.EndDate,
		BudgetLimit:  trip.BudgetLimit,
		CoverPhoto:   trip.CoverPhoto,
		IsPublic:     trip.IsPublic,
		Destinations: destinations,
	}, nil
}
