package services

import (
	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// activityService attaches bookable items to destinations. Every mutation
// re-resolves the activity -> destination -> trip -> user chain; a broken
// chain is a not-found, full stop.
type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// AddActivity attaches an activity to a destination. The time slot is a
// bare clock time and is not checked against the destination's dates.
func (s *activityService) AddActivity(userID, destinationID, name, category string, cost float64, timeSlot *string, isBooked bool) (*models.Activity, error) {
	destination, err := ownedDestination(s.db, userID, destinationID)
	if err != nil {
		return nil, err
	}

	if name == "" || category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingField, "Name and category are required")
	}

	activity := &models.Activity{
		DestinationID: destination.ID,
		Name:          name,
		Category:      category,
		Cost:          cost,
		TimeSlot:      timeSlot,
		IsBooked:      isBooked,
	}

	if err := s.db.Create(activity).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return activity, nil
}

// UpdateActivity applies a partial update after re-checking ownership.
func (s *activityService) UpdateActivity(userID, activityID string, update ActivityUpdate) (*models.Activity, error) {
	activity, err := ownedActivity(s.db, userID, activityID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Name != nil && *update.Name != "" {
		updates["name"] = *update.Name
	}
	if update.Category != nil && *update.Category != "" {
		updates["category"] = *update.Category
	}
	if update.Cost != nil {
		updates["cost"] = *update.Cost
	}
	if update.TimeSlot != nil {
		updates["time_slot"] = *update.TimeSlot
	}
	if update.IsBooked != nil {
		updates["is_booked"] = *update.IsBooked
	}

	if len(updates) > 0 {
		if err := s.db.Model(activity).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return activity, nil
}

// DeleteActivity removes an activity after re-checking ownership.
func (s *activityService) DeleteActivity(userID, activityID string) error {
	activity, err := ownedActivity(s.db, userID, activityID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(activity).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
