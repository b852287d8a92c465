package services

import (
	"testing"
	"time"

	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
	"globetrotter/internal/testutil"
)

func TestCreateTrip(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)

		trip, err := svc.CreateTrip(user.ID, "Summer in Europe",
			models.NewDate(2025, time.June, 1), models.NewDate(2025, time.June, 30),
			2500, "", false)
		testutil.AssertNoError(t, err)

		if trip.ID == "" {
			t.Fatal("expected non-empty trip ID")
		}
		if trip.Title != "Summer in Europe" {
			t.Errorf("expected title Summer in Europe, got %s", trip.Title)
		}
		if len(trip.ShareToken) != 64 {
			t.Errorf("expected 64-char share token, got %d chars", len(trip.ShareToken))
		}
	})

	t.Run("single_day_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)

		day := models.NewDate(2025, time.June, 1)
		_, err := svc.CreateTrip(user.ID, "Day Trip", day, day, 0, "", false)
		testutil.AssertNoError(t, err)
	})

	t.Run("missing_title", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTrip(user.ID, "",
			models.NewDate(2025, time.June, 1), models.NewDate(2025, time.June, 30),
			0, "", false)
		testutil.AssertAppError(t, err, "MISSING_FIELD")
	})

	t.Run("inverted_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTrip(user.ID, "Backwards",
			models.NewDate(2025, time.June, 30), models.NewDate(2025, time.June, 1),
			0, "", false)
		testutil.AssertAppError(t, err, "INVALID_RANGE")
	})

	t.Run("unique_share_tokens", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)

		trip1, err := svc.CreateTrip(user.ID, "First",
			models.NewDate(2025, time.June, 1), models.NewDate(2025, time.June, 30), 0, "", false)
		testutil.AssertNoError(t, err)
		trip2, err := svc.CreateTrip(user.ID, "Second",
			models.NewDate(2025, time.July, 1), models.NewDate(2025, time.July, 31), 0, "", false)
		testutil.AssertNoError(t, err)

		if trip1.ShareToken == trip2.ShareToken {
			t.Error("expected distinct share tokens")
		}
	})
}

func TestGetUserTrips(t *testing.T) {
	t.Run("returns_user_trips_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestTrip(t, db, user1.ID)
		testutil.CreateTestTrip(t, db, user1.ID)
		testutil.CreateTestTrip(t, db, user2.ID)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserTrips(user1.ID, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 trips, got %d", result.TotalItems)
		}
	})

	t.Run("city_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		testutil.CreateTestDestination(t, db, trip.ID, 0)
		testutil.CreateTestDestination(t, db, trip.ID, 1)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserTrips(user.ID, page)
		testutil.AssertNoError(t, err)

		if len(result.Data) != 1 {
			t.Fatalf("expected 1 trip, got %d", len(result.Data))
		}
		if result.Data[0].CityCount != 2 {
			t.Errorf("expected city count 2, got %d", result.Data[0].CityCount)
		}
	})
}

func TestGetTripByID(t *testing.T) {
	t.Run("destinations_sorted_by_order_index", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		d2 := testutil.CreateTestDestination(t, db, trip.ID, 2)
		d0 := testutil.CreateTestDestination(t, db, trip.ID, 0)
		d1 := testutil.CreateTestDestination(t, db, trip.ID, 1)

		got, err := svc.GetTripByID(user.ID, trip.ID)
		testutil.AssertNoError(t, err)

		if len(got.Destinations) != 3 {
			t.Fatalf("expected 3 destinations, got %d", len(got.Destinations))
		}
		wantOrder := []string{d0.ID, d1.ID, d2.ID}
		for i, dest := range got.Destinations {
			if dest.ID != wantOrder[i] {
				t.Errorf("position %d: expected destination %s, got %s", i, wantOrder[i], dest.ID)
			}
		}
	})

	t.Run("other_users_trip_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, owner.ID)

		_, err := svc.GetTripByID(other.ID, trip.ID)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})
}

func TestUpdateTrip(t *testing.T) {
	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)

		newTitle := "Renamed"
		updated, err := svc.UpdateTrip(user.ID, trip.ID, TripUpdate{Title: &newTitle})
		testutil.AssertNoError(t, err)

		if updated.Title != "Renamed" {
			t.Errorf("expected title Renamed, got %s", updated.Title)
		}
		if !updated.StartDate.Equal(trip.StartDate.Time) {
			t.Errorf("expected start date unchanged, got %s", updated.StartDate)
		}
		if updated.BudgetLimit != trip.BudgetLimit {
			t.Errorf("expected budget limit unchanged, got %f", updated.BudgetLimit)
		}
	})

	t.Run("inverted_effective_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)

		// New start after the existing end.
		newStart := models.NewDate(2025, time.July, 15)
		_, err := svc.UpdateTrip(user.ID, trip.ID, TripUpdate{StartDate: &newStart})
		testutil.AssertAppError(t, err, "INVALID_RANGE")
	})

	t.Run("shrink_stranding_destination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		testutil.CreateTestDestinationWithStay(t, db, trip.ID, 0,
			models.NewDate(2025, time.June, 5), models.NewDate(2025, time.June, 10))

		newStart := models.NewDate(2025, time.June, 8)
		_, err := svc.UpdateTrip(user.ID, trip.ID, TripUpdate{StartDate: &newStart})
		testutil.AssertAppError(t, err, "RANGE_CONFLICT")

		// No partial write: the stored window is untouched.
		got, err := svc.GetTripByID(user.ID, trip.ID)
		testutil.AssertNoError(t, err)
		if !got.StartDate.Equal(trip.StartDate.Time) {
			t.Errorf("expected start date unchanged after rejected shrink, got %s", got.StartDate)
		}
	})

	t.Run("widen_always_succeeds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		testutil.CreateTestDestination(t, db, trip.ID, 0)

		newStart := models.NewDate(2025, time.May, 1)
		newEnd := models.NewDate(2025, time.July, 31)
		updated, err := svc.UpdateTrip(user.ID, trip.ID, TripUpdate{StartDate: &newStart, EndDate: &newEnd})
		testutil.AssertNoError(t, err)

		if !updated.StartDate.Equal(newStart.Time) || !updated.EndDate.Equal(newEnd.Time) {
			t.Errorf("expected widened window %s..%s, got %s..%s", newStart, newEnd, updated.StartDate, updated.EndDate)
		}
	})

	t.Run("shrink_with_no_destinations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)

		newEnd := models.NewDate(2025, time.June, 2)
		_, err := svc.UpdateTrip(user.ID, trip.ID, TripUpdate{EndDate: &newEnd})
		testutil.AssertNoError(t, err)
	})
}

func TestDeleteTrip(t *testing.T) {
	t.Run("cascades_to_children", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, user.ID)
		dest := testutil.CreateTestDestination(t, db, trip.ID, 0)
		testutil.CreateTestActivity(t, db, dest.ID, 50)
		testutil.CreateTestExpense(t, db, trip.ID, "Food", 25)

		err := svc.DeleteTrip(user.ID, trip.ID)
		testutil.AssertNoError(t, err)

		var destCount, actCount, expCount int64
		db.Model(&models.Destination{}).Where("trip_id = ?", trip.ID).Count(&destCount)
		db.Model(&models.Activity{}).Where("destination_id = ?", dest.ID).Count(&actCount)
		db.Model(&models.Expense{}).Where("trip_id = ?", trip.ID).Count(&expCount)
		if destCount != 0 || actCount != 0 || expCount != 0 {
			t.Errorf("expected all children deleted, got %d destinations, %d activities, %d expenses",
				destCount, actCount, expCount)
		}
	})

	t.Run("other_users_trip_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		trip := testutil.CreateTestTrip(t, db, owner.ID)

		err := svc.DeleteTrip(other.ID, trip.ID)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})
}

func TestGetSharedTrip(t *testing.T) {
	t.Run("public_trip_resolves", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)

		trip, err := svc.CreateTrip(user.ID, "Shared",
			models.NewDate(2025, time.June, 1), models.NewDate(2025, time.June, 30),
			1000, "", true)
		testutil.AssertNoError(t, err)
		testutil.CreateTestDestination(t, db, trip.ID, 0)

		shared, err := svc.GetSharedTrip(trip.ShareToken)
		testutil.AssertNoError(t, err)

		if shared.Title != "Shared" {
			t.Errorf("expected title Shared, got %s", shared.Title)
		}
		if len(shared.Destinations) != 1 {
			t.Errorf("expected 1 destination, got %d", len(shared.Destinations))
		}
	})

	t.Run("private_trip_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)
		user := testutil.CreateTestUser(t, db)

		trip, err := svc.CreateTrip(user.ID, "Private",
			models.NewDate(2025, time.June, 1), models.NewDate(2025, time.June, 30),
			1000, "", false)
		testutil.AssertNoError(t, err)

		_, err = svc.GetSharedTrip(trip.ShareToken)
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})

	t.Run("unknown_token_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTripService(db)

		_, err := svc.GetSharedTrip("deadbeef")
		testutil.AssertAppError(t, err, "TRIP_NOT_FOUND")
	})
}
