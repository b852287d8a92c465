package services

import (
	"globetrotter/internal/models"
	"globetrotter/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TripSummary is the condensed trip representation used in list views.
type TripSummary struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	StartDate   models.DateOnly `json:"start_date"`
	EndDate     models.DateOnly `json:"end_date"`
	BudgetLimit float64         `json:"budget_limit"`
	CoverPhoto  string          `json:"cover_photo,omitempty"`
	IsPublic    bool            `json:"is_public"`
	CityCount   int             `json:"city_count"`
}

// TripUpdate holds the optional fields of a trip update. Nil pointers
// leave the stored value untouched.
type TripUpdate struct {
	Title       *string
	StartDate   *models.DateOnly
	EndDate     *models.DateOnly
	BudgetLimit *float64
	CoverPhoto  *string
	IsPublic    *bool
}

// SharedTrip is the public read-only projection of a shared trip. It
// deliberately omits the owner's user ID and the share token itself.
type SharedTrip struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	StartDate    models.DateOnly      `json:"start_date"`
	EndDate      models.DateOnly      `json:"end_date"`
	BudgetLimit  float64              `json:"budget_limit"`
	CoverPhoto   string               `json:"cover_photo,omitempty"`
	IsPublic     bool                 `json:"is_public"`
	Destinations []models.Destination `json:"destinations"`
}

// TripServicer defines the contract for trip-related business logic.
type TripServicer interface {
	CreateTrip(userID, title string, startDate, endDate models.DateOnly, budgetLimit float64, coverPhoto string, isPublic bool) (*models.Trip, error)
	GetUserTrips(userID string, page pagination.PageRequest) (*pagination.PageResponse[TripSummary], error)
	GetTripByID(userID, tripID string) (*models.Trip, error)
	UpdateTrip(userID, tripID string, update TripUpdate) (*models.Trip, error)
	DeleteTrip(userID, tripID string) error
	GetSharedTrip(token string) (*SharedTrip, error)
}

// DestinationUpdate holds the optional fields of a destination update.
type DestinationUpdate struct {
	CityName      *string
	Country       *string
	ArrivalDate   *models.DateOnly
	DepartureDate *models.DateOnly
	OrderIndex    *int
}

// DestinationServicer defines the contract for destination sequencing.
type DestinationServicer interface {
	AddDestination(userID, tripID, cityName, country string, arrivalDate, departureDate models.DateOnly, orderIndex *int) (*models.Destination, error)
	UpdateDestination(userID, destinationID string, update DestinationUpdate) (*models.Destination, error)
	DeleteDestination(userID, destinationID string) error
	ReorderDestinations(userID, tripID string, orderedIDs []string) error
}

// ActivityUpdate holds the optional fields of an activity update.
type ActivityUpdate struct {
	Name     *string
	Category *string
	Cost     *float64
	TimeSlot *string
	IsBooked *bool
}

// ActivityServicer defines the contract for the activity ledger.
type ActivityServicer interface {
	AddActivity(userID, destinationID, name, category string, cost float64, timeSlot *string, isBooked bool) (*models.Activity, error)
	UpdateActivity(userID, activityID string, update ActivityUpdate) (*models.Activity, error)
	DeleteActivity(userID, activityID string) error
}

// ExpenseServicer defines the contract for trip expense tracking.
type ExpenseServicer interface {
	AddExpense(userID, tripID, category string, amount float64, date models.DateOnly, description string) (*models.Expense, error)
	GetTripExpenses(userID, tripID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(userID, expenseID string) error
}

// BudgetBreakdown is the computed cost projection for a trip. Breakdown
// maps expense categories to summed amounts; aggregated activity costs
// appear under the synthetic "Activities" category.
type BudgetBreakdown struct {
	BudgetLimit    float64            `json:"budget_limit"`
	TotalCost      float64            `json:"total_cost"`
	Remaining      float64            `json:"remaining"`
	Breakdown      map[string]float64 `json:"breakdown"`
	PercentageUsed float64            `json:"percentage_used"`
}

// BudgetServicer defines the contract for budget aggregation.
type BudgetServicer interface {
	ComputeBudget(userID, tripID string) (*BudgetBreakdown, error)
}

// CityResult is a city entry returned by the mock search catalog.
type CityResult struct {
	CityName  string `json:"city_name"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	CostIndex int    `json:"cost_index"`
}

// ActivityResult is an activity suggestion returned by the mock search catalog.
type ActivityResult struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	City     string  `json:"city"`
	Cost     float64 `json:"cost"`
	Duration string  `json:"duration"`
}

// SearchServicer defines the contract for the mock city/activity search.
type SearchServicer interface {
	SearchCities(query, country, region string) []CityResult
	SearchActivities(query, category, city string) []ActivityResult
}
