package services

import (
	"testing"

	"globetrotter/internal/models"
	"globetrotter/internal/testutil"
)

func TestAddActivity(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)

		slot := "14:30"
		activity, err := svc.AddActivity(user.ID, dest.ID, "Louvre Tour", "Museum", 25, &slot, false)
		testutil.AssertNoError(t, err)

		if activity.Name != "Louvre Tour" {
			t.Errorf("expected name Louvre Tour, got %s", activity.Name)
		}
		if activity.TimeSlot == nil || *activity.TimeSlot != "14:30" {
			t.Errorf("expected time slot 14:30, got %v", activity.TimeSlot)
		}
	})

	t.Run("no_time_slot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)

		activity, err := svc.AddActivity(user.ID, dest.ID, "Beach Walk", "Outdoors", 0, nil, false)
		testutil.AssertNoError(t, err)

		if activity.TimeSlot != nil {
			t.Errorf("expected nil time slot, got %v", *activity.TimeSlot)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)

		_, err := svc.AddActivity(user.ID, dest.ID, "", "Museum", 25, nil, false)
		testutil.AssertAppError(t, err, "MISSING_FIELD")
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)

		_, err := svc.AddActivity(user.ID, dest.ID, "Louvre Tour", "", 25, nil, false)
		testutil.AssertAppError(t, err, "MISSING_FIELD")
	})

	t.Run("other_users_destination_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, owner.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)

		_, err := svc.AddActivity(other.ID, dest.ID, "Louvre Tour", "Museum", 25, nil, false)
		testutil.AssertAppError(t, err, "DESTINATION_NOT_FOUND")
	})
}

func TestUpdateActivity(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)
		activity := testutil.CreateTestActivity(t, db, dest.ID, 50)

		booked := true
		newCost := 75.0
		updated, err := svc.UpdateActivity(user.ID, activity.ID, ActivityUpdate{Cost: &newCost, IsBooked: &booked})
		testutil.AssertNoError(t, err)

		if updated.Cost != 75 {
			t.Errorf("expected cost 75, got %f", updated.Cost)
		}
		if !updated.IsBooked {
			t.Error("expected activity to be booked")
		}
		if updated.Name != activity.Name {
			t.Errorf("expected name unchanged, got %s", updated.Name)
		}
	})

	t.Run("ownership_chain_checked", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, owner.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)
		activity := testutil.CreateTestActivity(t, db, dest.ID, 50)

		newCost := 75.0
		_, err := svc.UpdateActivity(other.ID, activity.ID, ActivityUpdate{Cost: &newCost})
		testutil.AssertAppError(t, err, "ACTIVITY_NOT_FOUND")
	})
}

func TestDeleteActivity(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)
		activity := testutil.CreateTestActivity(t, db, dest.ID, 50)

		err := svc.DeleteActivity(user.ID, activity.ID)
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Activity{}).Where("id = ?", activity.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected activity deleted, found %d rows", count)
		}
	})

	t.Run("other_users_activity_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewActivityService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, owner.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)
		activity := testutil.CreateTestActivity(t, db, dest.ID, 50)

		err := svc.DeleteActivity(other.ID, activity.ID)
		testutil.AssertAppError(t, err, "ACTIVITY_NOT_FOUND")
	})
}
