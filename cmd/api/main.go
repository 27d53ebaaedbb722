package main

import (
	"fmt"
	"net/http"
	"os"

	"hearth/internal/config"
	"hearth/internal/database"
	"hearth/internal/handlers"
	"hearth/internal/logger"
	"hearth/internal/middleware"
	"hearth/internal/services"
	"hearth/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

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

	// Register custom binding validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Seed the achievement catalog and, optionally, the demo household
	if err := dbManager.Seed(appConfig.SeedDemoData); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	taskService := services.NewTaskService(db, userService)
	eventService := services.NewEventService(db, userService)
	budgetService := services.NewBudgetService(db)
	transactionService := services.NewTransactionService(db, budgetService)
	jarService := services.NewJarService(db, budgetService)
	typeService := services.NewTypeService(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	eventHandler := handlers.NewEventHandler(eventService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	jarHandler := handlers.NewJarHandler(jarService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	typeHandler := handlers.NewTypeHandler(typeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware (allow all origins, the app serves local frontends)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// User routes
	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.GetUsers)
	users.GET("/:id", userHandler.GetUserByID)
	users.GET("/:id/achievements", userHandler.GetUserAchievements)
	users.PUT("/:id/avatar/:avatarId", userHandler.UpdateAvatar)

	// Per-user task and event feeds
	users.POST("/:id/tasks", taskHandler.CreateTask)
	users.GET("/:id/tasks", taskHandler.GetUserTasks)
	users.PUT("/:id/tasks/:taskId/done", taskHandler.ToggleTaskDone)
	users.POST("/:id/events", eventHandler.CreateEvent)
	users.GET("/:id/events", eventHandler.GetUserEvents)
	users.GET("/:id/events/last", eventHandler.GetLastEvent)

	// Task routes
	tasks := v1.Group("/tasks")
	tasks.GET("/:id", taskHandler.GetTaskByID)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// Event routes
	events := v1.Group("/events")
	events.GET("/:id", eventHandler.GetEventByID)
	events.PUT("/:id", eventHandler.UpdateEvent)
	events.DELETE("/:id", eventHandler.DeleteEvent)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/last", transactionHandler.GetLastTransaction)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Jar routes
	jars := v1.Group("/jars")
	jars.POST("", jarHandler.CreateJar)
	jars.GET("", jarHandler.GetJars)
	jars.GET("/highest", jarHandler.GetHighestProgressJar)
	jars.GET("/:id", jarHandler.GetJarByID)
	jars.PUT("/:id/deadline", jarHandler.UpdateJarDeadline)
	jars.PUT("/:id/amount", jarHandler.UpdateJarAmounts)
	jars.DELETE("/:id", jarHandler.DeleteJar)

	// Type catalog routes
	types := v1.Group("/types")
	types.POST("", typeHandler.CreateType)
	types.GET("/:relate", typeHandler.GetTypesByRelation)

	// Budget routes
	budget := v1.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.GET("/statistics", budgetHandler.GetStatistics)
	budget.PUT("", budgetHandler.SetBudget)

	log.Infof("Starting Hearth backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
