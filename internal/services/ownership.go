package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// Ownership lookups. Every mutation below the trip level re-walks the
// chain child -> parent -> trip -> user on each call; a chain that does
// not resolve to the caller's trip is reported as not found, never as a
// permission distinction.

// ownedTrip loads a trip only if it belongs to the given user.
func ownedTrip(db *gorm.DB, userID, tripID string) (*models.Trip, error) {
	var trip models.Trip
	if err := db.Where("id = ? AND user_id = ?", tripID, userID).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &trip, nil
}

// ownedDestination loads a destination only if its trip belongs to the user.
func ownedDestination(db *gorm.DB, userID, destinationID string) (*models.Destination, error) {
	var destination models.Destination
	err := db.
		Joins("JOIN trips ON trips.id = destinations.trip_id").
		Where("destinations.id = ? AND trips.user_id = ?", destinationID, userID).
		First(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDestinationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &destination, nil
}

// ownedActivity loads an activity only if the chain
// activity -> destination -> trip resolves to the user.
func ownedActivity(db *gorm.DB, userID, activityID string) (*models.Activity, error) {
	var activity models.Activity
	err := db.
		Joins("JOIN destinations ON destinations.id = activities.destination_id").
		Joins("JOIN trips ON trips.id = destinations.trip_id").
		Where("activities.id = ? AND trips.user_id = ?", activityID, userID).
		First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &activity, nil
}
