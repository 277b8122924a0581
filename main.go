// File: drepto/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drepto/config"
	"drepto/cron"
	"drepto/database"
	catalogRepo "drepto/database/repository/catalog"
	"drepto/handlers"
	"drepto/middleware"
	"drepto/routes"
	"drepto/services/cart"
	ai "drepto/services/intelligence"
	"drepto/services/portal"
	"drepto/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// catalog collaborator.
	staticCatalog := catalogRepo.NewStaticCatalog()
	var catalog catalogRepo.CatalogRepository = staticCatalog
	var appointments catalogRepo.AppointmentRepository = staticCatalog
	var mongoClient *mongo.Client
	if cfg.CatalogSource == "mongo" {
		if err := database.InitDB(rootCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
		}
		mongoClient = database.MongoClient
		mongoCatalog := catalogRepo.NewMongoCatalog(database.Database())
		if err := mongoCatalog.EnsureIndexes(rootCtx); err != nil {
			logger.Warn("main: catalog indexes not created", zap.Error(err))
		}
		catalog = mongoCatalog
		appointments = mongoCatalog
	}

	// stores.
	var redisClients []*redis.Client
	var cartStore cart.Store = cart.NewMemoryStore()
	if cfg.CartStore == "redis" {
		client := utils.GetCartCacheClient()
		redisClients = append(redisClients, client)
		cartStore = cart.NewRedisStore(client, 0)
	}
	var ctxStore ai.ContextStore = ai.NewMemoryContextStore()
	if cfg.AIContextStore == "redis" {
		client := utils.GetAIContextCacheClient()
		redisClients = append(redisClients, client)
		ctxStore = ai.NewRedisContextStore(client, cfg.AIContextTTL)
	}

	// assistant. Without a key every reply is the fallback text.
	var sender ai.Sender
	gemini, err := ai.NewGeminiClient(rootCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("main: AI assistant running without a model", zap.Error(err))
	} else {
		defer gemini.Close()
		sender = gemini
	}
	assistant := ai.NewAssistant(sender, ctxStore, logger)

	// sessions.
	registry := portal.NewRegistry(portal.Deps{
		Catalog:        catalog,
		Appointments:   appointments,
		CartStore:      cartStore,
		Assistant:      assistant,
		Logger:         logger,
		ReminderDelay:  cfg.ReminderDelay,
		PaymentDelay:   cfg.PaymentDelay,
		AmbulanceDelay: cfg.AmbulanceSearchDelay,
	}, cfg.SessionTTL)
	cron.InitSessionJanitor(rootCtx, registry, time.Minute)
	utils.StartHealthMonitor(rootCtx, redisClients, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(catalog, registry, time.Now)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stop()
	registry.CloseAll()
	if mongoClient != nil {
		if err := database.CloseDB(ctx); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
		}
	}
	_ = logger.Sync()
	logger.Sugar().Info("main: server stopped gracefully")
}
