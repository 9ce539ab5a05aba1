// main.go - clubhub: campus club and events portal
package main

import (
	"log"
	"os"
	"time"

	"clubhub/database"
	"clubhub/handlers"
	"clubhub/handlers/manager"
	"clubhub/middleware"
	"clubhub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	db := database.InitDB()
	defer database.CloseDB()

	database.RunMigrations(db)
	database.Seed(db)

	// Construct services; the chatbot gets the same DB handle so its
	// snapshot always reflects the live catalogue.
	clubService := services.NewClubService(db)
	eventService := services.NewEventService(db)

	var inference *services.InferenceClient
	if token := os.Getenv("HUGGINGFACE_API_TOKEN"); token != "" {
		inference = services.NewInferenceClient(token)
	} else {
		log.Println("⚠️  HUGGINGFACE_API_TOKEN not set, assistant will reply with a fallback message")
	}
	chatbot := services.NewChatbot(db, inference)

	clubHandler := handlers.NewClubHandler(clubService)
	eventHandler := handlers.NewEventHandler(eventService)
	chatHandler := handlers.NewChatHandler(chatbot)
	managerHandler := manager.NewHandler(clubService, eventService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.FiberRateLimitMiddleware())

	// Serve the front-end bundle
	app.Static("/", "./static")

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/student", handlers.StudentLogin)
	authGroup.Post("/manager", handlers.ManagerLogin)
	authGroup.Post("/logout", handlers.Logout)

	// Public catalogue
	api.Get("/clubs", clubHandler.ListClubs)
	api.Get("/clubs/:id", clubHandler.GetClub)
	api.Get("/events", eventHandler.ListEvents)

	// Chat assistant (any logged-in role)
	chatGroup := api.Group("/chat")
	chatGroup.Use(middleware.AuthMiddleware)
	chatGroup.Post("/message", chatHandler.SendMessage)
	chatGroup.Post("/clear", chatHandler.ClearHistory)
	chatGroup.Get("/suggestions", chatHandler.Suggestions)

	// Streaming chat transport
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(chatHandler.ChatSocket))

	// Manager back-office
	managerGroup := api.Group("/manager")
	managerGroup.Use(middleware.ManagerAuthMiddleware)
	managerGroup.Get("/dashboard", managerHandler.Dashboard)
	managerGroup.Post("/clubs", managerHandler.CreateClub)
	managerGroup.Put("/clubs/:id", managerHandler.UpdateClub)
	managerGroup.Delete("/clubs/:id", managerHandler.DeleteClub)
	managerGroup.Post("/clubs/:id/members", managerHandler.AddMember)
	managerGroup.Put("/members/:id", managerHandler.UpdateMember)
	managerGroup.Delete("/members/:id", managerHandler.RemoveMember)
	managerGroup.Post("/events", managerHandler.CreateEvent)
	managerGroup.Put("/events/:id", managerHandler.UpdateEvent)
	managerGroup.Delete("/events/:id", managerHandler.DeleteEvent)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🤖 Assistant configured: %v", inference != nil)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("WARNING: JWT_SECRET not set, using the development default. Generate one with: openssl rand -base64 64")
	}

	if os.Getenv("APP_ENV") == "production" {
		if os.Getenv("JWT_SECRET") == "" {
			log.Fatal("FATAL: JWT_SECRET must be set in production")
		}
		if os.Getenv("MANAGER_PASSWORD_HASH") == "" && os.Getenv("MANAGER_PASSWORD") == "" {
			log.Println("WARNING: manager credentials not configured for production")
		}
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
