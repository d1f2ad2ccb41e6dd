package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"tripmate/internal/assistant"
	"tripmate/internal/config"
	"tripmate/internal/database"
	"tripmate/internal/handlers"
	"tripmate/internal/jobs"
	"tripmate/internal/logging"
	"tripmate/internal/middleware"
	"tripmate/internal/services"
	"tripmate/pkg/auth"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting TripMate Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s)", cfg.Port)

	// Database (SQLite by default, MySQL via mysql:// DSN)
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Initialize(); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// MongoDB (optional, for user preferences)
	var mongoDB *database.MongoDB
	if cfg.MongoURI != "" {
		log.Println("🔗 Connecting to MongoDB...")
		mongoDB, err = database.NewMongoDB(cfg.MongoURI)
		if err != nil {
			log.Printf("⚠️ Failed to connect to MongoDB: %v (preferences disabled)", err)
			mongoDB = nil
		} else {
			defer mongoDB.Close(context.Background())
		}
	} else {
		log.Println("⚠️ MONGODB_URI not set - preferences persistence disabled")
	}

	// Redis (optional, for stats caching)
	var redisService *services.RedisService
	if cfg.RedisURL != "" {
		log.Println("🔗 Connecting to Redis...")
		redisService, err = services.NewRedisService(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (stats caching disabled)", err)
			redisService = nil
		} else {
			defer redisService.Close()
		}
	} else {
		log.Println("⚠️ REDIS_URL not set - stats caching disabled")
	}

	// Prometheus metrics
	services.InitMetrics()

	// Record services
	userService := services.NewUserService(db)
	personService := services.NewPersonService(db)
	expenseService := services.NewExpenseService(db)
	journalService := services.NewJournalService(db)
	pinService := services.NewPinService(db)
	routineService := services.NewRoutineService(db)
	packingService := services.NewPackingService(db)
	foodLogService := services.NewFoodLogService(db)
	providerService := services.NewProviderService(db)
	preferencesService := services.NewPreferencesService(mongoDB)
	statsService := services.NewStatsService(routineService, foodLogService, expenseService, redisService)

	// Sync providers from providers.json and keep watching it
	if err := providerService.SyncFromFile(context.Background(), cfg.ProvidersFile); err != nil {
		log.Printf("⚠️ Provider sync failed: %v", err)
	}
	go startProvidersFileWatcher(cfg.ProvidersFile, providerService)

	// Assistant pipeline
	store := &assistant.ServiceStore{
		People:   personService,
		Expenses: expenseService,
		Journal:  journalService,
		FoodLogs: foodLogService,
		Pins:     pinService,
	}
	completionClient := assistant.NewHTTPCompletionClient(providerService, time.Duration(cfg.LLMTimeoutSeconds)*time.Second)
	parser := assistant.NewParser(completionClient)
	fallback := assistant.NewFallback(store)
	synthesizer := assistant.NewSynthesizer(completionClient)
	executor := assistant.NewExecutor(parser, fallback, store, synthesizer, assistant.Options{
		ConfidenceThreshold: &cfg.ConfidenceThreshold,
	})

	// JWT auth
	var jwtAuth *auth.JWTAuth
	if cfg.JWTSecret != "" {
		jwtAuth, err = auth.NewJWTAuth(cfg.JWTSecret, 15*time.Minute, 7*24*time.Hour)
		if err != nil {
			log.Fatalf("❌ Failed to initialize JWT auth: %v", err)
		}
		log.Println("✅ JWT auth initialized")
	} else {
		if os.Getenv("ENVIRONMENT") == "production" {
			log.Fatal("❌ JWT_SECRET is required in production")
		}
		log.Println("⚠️ JWT_SECRET not set - auth disabled (development mode only)")
	}

	// Background jobs
	jobScheduler, err := jobs.NewScheduler(db, providerService, cfg.ProvidersFile, cfg.RetentionDays)
	if err != nil {
		log.Fatalf("❌ Failed to create job scheduler: %v", err)
	}
	if err := jobScheduler.Start(); err != nil {
		log.Fatalf("❌ Failed to start background jobs: %v", err)
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TripMate v1.0",
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    5 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	prometheus := fiberprometheus.New("tripmate")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
	log.Println("📊 Prometheus metrics endpoint enabled at /metrics")

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173,http://localhost:3000"
		log.Println("⚠️  ALLOWED_ORIGINS not set, using development defaults")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: allowedOrigins != "*",
	}))

	// Handlers
	authHandler := handlers.NewAuthHandler(jwtAuth, userService)
	commandHandler := handlers.NewCommandHandler(executor)
	pinHandler := handlers.NewPinHandler(pinService)
	personHandler := handlers.NewPersonHandler(personService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, statsService)
	journalHandler := handlers.NewJournalHandler(journalService)
	routineHandler := handlers.NewRoutineHandler(routineService, statsService)
	packingHandler := handlers.NewPackingHandler(packingService, getEnvDefault("PACKING_SEEDS_FILE", "configs/packing_seeds.yaml"))
	foodLogHandler := handlers.NewFoodLogHandler(foodLogService, statsService)
	statsHandler := handlers.NewStatsHandler(statsService)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)
	providerHandler := handlers.NewProviderHandler(providerService)
	consoleHandler := handlers.NewConsoleWebSocketHandler(executor)

	// Routes
	app.Get("/health", handlers.Health)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	api := app.Group("/api", middleware.AuthMiddleware(jwtAuth))
	api.Get("/auth/me", authHandler.Me)

	// Model-backed endpoints get a tighter per-user budget
	assistantLimiter := middleware.NewAssistantRateLimiter(30, 5)
	defer assistantLimiter.Close()
	api.Post("/command", assistantLimiter.Handler(), commandHandler.Command)
	api.Post("/query", assistantLimiter.Handler(), commandHandler.Query)

	api.Get("/pins", pinHandler.List)
	api.Post("/pins", pinHandler.Create)
	api.Patch("/pins/:id", pinHandler.Update)
	api.Delete("/pins/:id", pinHandler.Delete)

	api.Get("/people", personHandler.List)
	api.Post("/people", personHandler.Create)

	api.Get("/expenses", expenseHandler.List)
	api.Post("/expenses", expenseHandler.Create)
	api.Get("/expenses/export", expenseHandler.Export)

	api.Get("/journal", journalHandler.List)
	api.Post("/journal", journalHandler.Create)
	api.Get("/journal/:id/html", journalHandler.HTML)

	api.Get("/routine", routineHandler.List)
	api.Post("/routine", routineHandler.Create)
	api.Post("/routine/:id/done", routineHandler.MarkDone)

	api.Get("/packing", packingHandler.List)
	api.Post("/packing", packingHandler.Create)
	api.Post("/packing/seed", packingHandler.Seed)
	api.Post("/packing/:id/toggle", packingHandler.Toggle)
	api.Delete("/packing/:id", packingHandler.Delete)

	api.Post("/meals", foodLogHandler.CreateMeal)
	api.Post("/water", foodLogHandler.CreateWater)

	api.Get("/stats/today", statsHandler.Today)

	api.Get("/preferences", preferencesHandler.Get)
	api.Patch("/preferences", preferencesHandler.Update)

	api.Get("/providers", providerHandler.List)
	api.Patch("/providers/:id", providerHandler.SetEnabled)

	// WebSocket console
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/console", middleware.AuthMiddleware(jwtAuth), websocket.New(consoleHandler.HandleConnection))

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")

		if err := jobScheduler.Stop(); err != nil {
			log.Printf("⚠️ Error stopping background jobs: %v", err)
		}

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// startProvidersFileWatcher watches providers.json for changes and re-syncs
func startProvidersFileWatcher(filePath string, providerService *services.ProviderService) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("⚠️  Failed to create file watcher: %v", err)
		return
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		log.Printf("⚠️  Failed to get absolute path for %s: %v", filePath, err)
		watcher.Close()
		return
	}

	// Watching the directory is more reliable than watching the file,
	// editors replace files on save
	dir := filepath.Dir(absPath)
	filename := filepath.Base(absPath)

	if err := watcher.Add(dir); err != nil {
		log.Printf("⚠️  Failed to watch directory %s: %v", dir, err)
		watcher.Close()
		return
	}

	log.Printf("👁️  Watching %s for changes (hot-reload enabled)", filePath)

	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					log.Printf("🔄 Detected changes in %s, re-syncing providers...", filePath)
					ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
					defer cancel()
					if err := providerService.SyncFromFile(ctx, filePath); err != nil {
						log.Printf("❌ Failed to sync providers after file change: %v", err)
					}
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️  File watcher error: %v", err)
		}
	}
}

func getEnvDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
