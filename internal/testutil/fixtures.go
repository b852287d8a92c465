package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"globetrotter/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTrip creates a trip spanning June 2025 with a 1000 budget.
func CreateTestTrip(t *testing.T, db *gorm.DB, userID string) *models.Trip {
	t.Helper()
	return CreateTestTripWithWindow(t, db, userID,
		models.NewDate(2025, time.June, 1), models.NewDate(2025, time.June, 30))
}

// CreateTestTripWithWindow creates a trip with the given date window.
func CreateTestTripWithWindow(t *testing.T, db *gorm.DB, userID string, start, end models.DateOnly) *models.Trip {
	t.Helper()

	trip := &models.Trip{
		UserID:      userID,
		Title:       fmt.Sprintf("Test Trip %d", nextID()),
		StartDate:   start,
		EndDate:     end,
		BudgetLimit: 1000,
	}
	if err := db.Create(trip).Error; err != nil {
		t.Fatalf("failed to create test trip: %v", err)
	}
	return trip
}

// CreateTestDestination creates a destination at the given order index,
// staying June 5-10 inside the default trip window.
func CreateTestDestination(t *testing.T, db *gorm.DB, tripID string, orderIndex int) *models.Destination {
	t.Helper()
	return CreateTestDestinationWithStay(t, db, tripID, orderIndex,
		models.NewDate(2025, time.June, 5), models.NewDate(2025, time.June, 10))
}

// CreateTestDestinationWithStay creates a destination with the given stay range.
func CreateTestDestinationWithStay(t *testing.T, db *gorm.DB, tripID string, orderIndex int, arrival, departure models.DateOnly) *models.Destination {
	t.Helper()

	n := nextID()
	dest := &models.Destination{
		TripID:        tripID,
		CityName:      fmt.Sprintf("Test City %d", n),
		Country:       fmt.Sprintf("Test Country %d", n),
		ArrivalDate:   arrival,
		DepartureDate: departure,
		OrderIndex:    orderIndex,
	}
	if err := db.Create(dest).Error; err != nil {
		t.Fatalf("failed to create test destination: %v", err)
	}
	return dest
}

// CreateTestActivity creates an activity with the given cost.
func CreateTestActivity(t *testing.T, db *gorm.DB, destinationID string, cost float64) *models.Activity {
	t.Helper()

	activity := &models.Activity{
		DestinationID: destinationID,
		Name:          fmt.Sprintf("Test Activity %d", nextID()),
		Category:      "Sightseeing",
		Cost:          cost,
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}
	return activity
}

// CreateTestExpense creates an expense in the given category and amount,
// dated inside the default trip window.
func CreateTestExpense(t *testing.T, db *gorm.DB, tripID, category string, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		TripID:   tripID,
		Category: category,
		Amount:   amount,
		Date:     models.NewDate(2025, time.June, 15),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
