package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pizzahub/pizzahub-api/config"
	orderControllers "github.com/pizzahub/pizzahub-api/controllers/order"
	"github.com/pizzahub/pizzahub-api/middleware"
	"github.com/pizzahub/pizzahub-api/routes"
	"github.com/pizzahub/pizzahub-api/storage"
	"github.com/pizzahub/pizzahub-api/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("PIZZAHUB_CONFIG"))
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	records, err := newRecords(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Stores: catalog is session-scoped, the rest persist through records
	catalog := store.NewCatalog()
	cart := store.NewCart(records, logger)
	orders := store.NewOrders(records, cart, logger)
	session := store.NewSession(records, cart, logger)

	// Feed order events into the websocket broadcast
	orders.SetNotify(orderControllers.BroadcastOrder)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, &routes.Stores{
		Catalog: catalog,
		Cart:    cart,
		Orders:  orders,
		Session: session,
	}, cfg.Admin.APIKey)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("address", addr), zap.String("storage", cfg.Storage.Backend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srvErr <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-srvErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("Shutdown incomplete", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRecords(cfg *config.Config, logger *zap.Logger) (storage.Records, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		return storage.NewPostgresRecords(cfg.Storage.Postgres.DSN())
	case "redis":
		r := storage.NewRedisRecords(cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.Ping(ctx); err != nil {
			return nil, err
		}
		return r, nil
	default:
		logger.Info("Using in-memory storage, state will not survive restarts")
		return storage.NewMemoryRecords(), nil
	}
}
