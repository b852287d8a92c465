package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"globetrotter/internal/handlers"
	"globetrotter/internal/logger"
	"globetrotter/internal/middleware"
	"globetrotter/internal/models"
	"globetrotter/internal/services"
	"globetrotter/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Trip{},
		&models.Destination{},
		&models.Activity{},
		&models.Expense{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	tripService := services.NewTripService(db)
	destinationService := services.NewDestinationService(db)
	activityService := services.NewActivityService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	searchService := services.NewSearchService()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	tripHandler := handlers.NewTripHandler(tripService)
	destinationHandler := handlers.NewDestinationHandler(destinationService)
	activityHandler := handlers.NewActivityHandler(activityService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	search := v1.Group("/search")
	search.GET("/cities", searchHandler.SearchCities)
	search.GET("/activities", searchHandler.SearchActivities)

	v1.GET("/trips/shared/:token", tripHandler.GetSharedTrip)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	trips := protected.Group("/trips")
	trips.GET("", tripHandler.GetTrips)
	trips.POST("", tripHandler.CreateTrip)
	trips.GET("/:id", tripHandler.GetTrip)
	trips.PUT("/:id", tripHandler.UpdateTrip)
	trips.DELETE("/:id", tripHandler.DeleteTrip)
	trips.GET("/:id/budget", budgetHandler.GetTripBudget)
	trips.POST("/:id/destinations", destinationHandler.AddDestination)
	trips.PUT("/:id/destinations/reorder", destinationHandler.ReorderDestinations)
	trips.POST("/:id/expenses", expenseHandler.AddExpense)
	trips.GET("/:id/expenses", expenseHandler.GetTripExpenses)

	destinations := protected.Group("/destinations")
	destinations.PUT("/:destId", destinationHandler.UpdateDestination)
	destinations.DELETE("/:destId", destinationHandler.DeleteDestination)
	destinations.POST("/:destId/activities", activityHandler.AddActivity)

	activities := protected.Group("/activities")
	activities.PUT("/:activityId", activityHandler.UpdateActivity)
	activities.DELETE("/:activityId", activityHandler.DeleteActivity)

	expenses := protected.Group("/expenses")
	expenses.DELETE("/:expenseId", expenseHandler.DeleteExpense)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// createTrip creates a trip and returns its ID.
func (app *testApp) createTrip(t *testing.T, token, title, start, end string, budget float64) string {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"start_date":%q,"end_date":%q,"budget_limit":%g}`, title, start, end, budget)
	rec := app.request("POST", "/api/v1/trips", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trip failed: %d %s", rec.Code, rec.Body.String())
	}
	trip := parseJSON(t, rec)["trip"].(map[string]interface{})
	return trip["id"].(string)
}

// addDestination adds a destination to a trip and returns its ID.
func (app *testApp) addDestination(t *testing.T, token, tripID, city, country, arrival, departure string) string {
	t.Helper()
	body := fmt.Sprintf(`{"city_name":%q,"country":%q,"arrival_date":%q,"departure_date":%q}`,
		city, country, arrival, departure)
	rec := app.request("POST", "/api/v1/trips/"+tripID+"/destinations", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add destination failed: %d %s", rec.Code, rec.Body.String())
	}
	dest := parseJSON(t, rec)["destination"].(map[string]interface{})
	return dest["id"].(string)
}
