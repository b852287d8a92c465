package main

import (
	"fmt"
	"net/http"
	"os"

	"globetrotter/internal/config"
	"globetrotter/internal/database"
	"globetrotter/internal/handlers"
	"globetrotter/internal/logger"
	"globetrotter/internal/middleware"
	"globetrotter/internal/services"
	"globetrotter/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "globetrotter/internal/docs" // Import swagger docs
)

// @title           Globetrotter API
// @version         1.0
// @description     Globetrotter is a travel-planning application: trips with ordered destinations and activities, expense tracking against a budget, and read-only trip sharing.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	tripService := services.NewTripService(db)
	destinationService := services.NewDestinationService(db)
	activityService := services.NewActivityService(db)
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	searchService := services.NewSearchService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	tripHandler := handlers.NewTripHandler(tripService)
	destinationHandler := handlers.NewDestinationHandler(destinationService)
	activityHandler := handlers.NewActivityHandler(activityService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
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

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Trip routes
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

	// Destination routes
	destinations := protected.Group("/destinations")
	destinations.PUT("/:destId", destinationHandler.UpdateDestination)
	destinations.DELETE("/:destId", destinationHandler.DeleteDestination)
	destinations.POST("/:destId/activities", activityHandler.AddActivity)

	// Activity routes
	activities := protected.Group("/activities")
	activities.PUT("/:activityId", activityHandler.UpdateActivity)
	activities.DELETE("/:activityId", activityHandler.DeleteActivity)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.DELETE("/:expenseId", expenseHandler.DeleteExpense)

	log.Infof("Starting Globetrotter backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
