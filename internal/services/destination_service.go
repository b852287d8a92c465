package services

import (
	"fmt"

	"gorm.io/gorm"

	apperrors "globetrotter/internal/errors"
	"globetrotter/internal/models"
)

// destinationService maintains the ordered list of destinations per trip.
// order_index is a sort hint: appends compute max+1 without serializing
// against concurrent writers, deletes leave gaps, and only a reorder
// re-packs the sequence into a dense 0-based run.
type destinationService struct {
	db *gorm.DB
}

// NewDestinationService creates a new DestinationServicer.
func NewDestinationService(db *gorm.DB) DestinationServicer {
	return &destinationService{db: db}
}

// AddDestination validates the stay against the trip window and appends
// the destination. When no explicit index is given, the new index is
// max(existing)+1, or 0 for the first destination. The computed max is
// racy under concurrent appends; duplicate indices are tolerated.
func (s *destinationService) AddDestination(userID, tripID, cityName, country string, arrivalDate, departureDate models.DateOnly, orderIndex *int) (*models.Destination, error) {
	trip, err := ownedTrip(s.db, userID, tripID)
	if err != nil {
		return nil, err
	}

	if cityName == "" || country == "" {
		return nil, apperrors.WithMessage(apperrors.ErrMissingField, "city_name, country, arrival_date, and departure_date are required")
	}
	if arrivalDate.After(departureDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRange, "Arrival date must be before departure date")
	}
	if !trip.Contains(arrivalDate, departureDate) {
		return nil, apperrors.ErrOutOfWindow
	}

	finalIndex := 0
	if orderIndex != nil {
		finalIndex = *orderIndex
	} else {
		var maxIndex int
		err := s.db.Model(&models.Destination{}).
			Where("trip_id = ?", trip.ID).
			Select("COALESCE(MAX(order_index), -1)").
			Scan(&maxIndex).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		finalIndex = maxIndex + 1
	}

	destination := &models.Destination{
		TripID:        trip.ID,
		CityName:      cityName,
		Country:       country,
		ArrivalDate:   arrivalDate,
		DepartureDate: departureDate,
		OrderIndex:    finalIndex,
	}

	if err := s.db.Create(destination).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return destination, nil
}

// UpdateDestination applies a partial update, re-validating the effective
// date range against the owning trip's window.
func (s *destinationService) UpdateDestination(userID, destinationID string, update DestinationUpdate) (*models.Destination, error) {
	destination, err := ownedDestination(s.db, userID, destinationID)
	if err != nil {
		return nil, err
	}

	newArrival := destination.ArrivalDate
	newDeparture := destination.DepartureDate
	if update.ArrivalDate != nil {
		newArrival = *update.ArrivalDate
	}
	if update.DepartureDate != nil {
		newDeparture = *update.DepartureDate
	}

	if update.ArrivalDate != nil || update.DepartureDate != nil {
		if newArrival.After(newDeparture) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidRange, "Arrival date must be before departure date")
		}

		var trip models.Trip
		if err := s.db.Where("id = ?", destination.TripID).First(&trip).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if !trip.Contains(newArrival, newDeparture) {
			return nil, apperrors.ErrOutOfWindow
		}
	}

	updates := make(map[string]interface{})
	if update.CityName != nil && *update.CityName != "" {
		updates["city_name"] = *update.CityName
	}
	if update.Country != nil && *update.Country != "" {
		updates["country"] = *update.Country
	}
	if update.ArrivalDate != nil {
		updates["arrival_date"] = *update.ArrivalDate
	}
	if update.DepartureDate != nil {
		updates["departure_date"] = *update.DepartureDate
	}
	if update.OrderIndex != nil {
		updates["order_index"] = *update.OrderIndex
	}

	if len(updates) > 0 {
		if err := s.db.Model(destination).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return destination, nil
}

// DeleteDestination removes the destination and its activities. Surviving
// siblings keep their order_index; gaps persist until the next reorder.
func (s *destinationService) DeleteDestination(userID, destinationID string) error {
	destination, err := ownedDestination(s.db, userID, destinationID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination_id = ?", destination.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Delete(destination).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ReorderDestinations assigns order_index = position (0-based) for each ID
// in the given sequence. IDs that do not belong to the trip are silent
// no-ops, and destinations omitted from the list keep their old index.
// Writes are per-row and deliberately not transactional: a storage
// failure partway through leaves a partially applied order and is
// surfaced as PARTIAL_REORDER so callers know to re-fetch.
func (s *destinationService) ReorderDestinations(userID, tripID string, orderedIDs []string) error {
	trip, err := ownedTrip(s.db, userID, tripID)
	if err != nil {
		return err
	}

	for position, destinationID := range orderedIDs {
		err := s.db.Model(&models.Destination{}).
			Where("id = ? AND trip_id = ?", destinationID, trip.ID).
			Update("order_index", position).Error
		if err != nil {
			return apperrors.Wrap(apperrors.ErrPartialReorder,
				fmt.Errorf("reorder stopped at position %d (destination %s): %w", position, destinationID, err))
		}
	}

	return nil
}
