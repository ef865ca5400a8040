package main

import (
	_ "dealership/api/swagger" // swagger docs
	"dealership/internal/database"
	"dealership/internal/handler"
	"dealership/internal/middleware"
	"dealership/internal/repository"
	"dealership/internal/service"
	"dealership/internal/websocket"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Dealership Application Management API
// @version         1.0
// @description     API for dealership application intake, status tracking, payments, approval letters and support tickets.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbSslMode := os.Getenv("DB_SSLMODE")

	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	if dbUser == "" {
		dbUser = "postgres"
	}
	if dbPassword == "" {
		dbPassword = "postgres"
	}
	if dbName == "" {
		dbName = "dealership"
	}
	if dbSslMode == "" {
		dbSslMode = "disable"
	}

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub for status-change events
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Application creation defaults
	appCfg := service.ApplicationConfig{
		TrackingPrefix: os.Getenv("TRACKING_ID_PREFIX"),
	}
	defaultAmount := os.Getenv("DEFAULT_PAYMENT_AMOUNT")
	if defaultAmount == "" {
		defaultAmount = "50000.00"
	}
	if amount, parseErr := decimal.NewFromString(defaultAmount); parseErr == nil {
		appCfg.DefaultPaymentAmount = &amount
	} else {
		log.Printf("Invalid DEFAULT_PAYMENT_AMOUNT %q, applications will have no default: %v", defaultAmount, parseErr)
	}

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	appRepo := repository.NewApplicationRepository(db)
	statusRepo := repository.NewStatusUpdateRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	letterRepo := repository.NewLetterRepository(db)
	supportRepo := repository.NewSupportRepository(db)
	userRepo := repository.NewUserRepository(db)

	applicationService := service.NewApplicationService(appRepo, statusRepo, txManager, wsHub, appCfg)
	paymentService := service.NewPaymentService(paymentRepo, appRepo, txManager)
	letterService := service.NewLetterService(letterRepo, appRepo, txManager)
	supportService := service.NewSupportService(supportRepo)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(db)

	// Initialize Handlers
	applicationHandler := handler.NewApplicationHandler(applicationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	letterHandler := handler.NewLetterHandler(letterService)
	supportHandler := handler.NewSupportHandler(supportService)
	authHandler := handler.NewAuthHandler(userService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration from CORS_ORIGINS (comma-separated allow-list)
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173"
	}
	origins := strings.Split(corsOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Actor identification only; no route requires authentication
	router.Use(middleware.IdentifyActor())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for status-change events
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Register API Routes
	applicationHandler.RegisterRoutes(router.Group(""))
	paymentHandler.RegisterRoutes(router.Group(""))
	letterHandler.RegisterRoutes(router.Group(""))
	supportHandler.RegisterRoutes(router.Group(""))
	authHandler.RegisterRoutes(router.Group(""))
	statsHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
