package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	identityapp "github.com/storefront/backend/internal/application/identity"
	orderingapp "github.com/storefront/backend/internal/application/ordering"
	reportapp "github.com/storefront/backend/internal/application/report"
	shoppingapp "github.com/storefront/backend/internal/application/shopping"
	storageapp "github.com/storefront/backend/internal/application/storage"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level)))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := persistence.AutoMigrate(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Services
	tokens := auth.NewSessionTokenService(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.Issuer)
	authService := identityapp.NewAuthService(userRepo, tokens, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	cartService := shoppingapp.NewCartService(cartRepo, productRepo, log)
	checkoutService := orderingapp.NewCheckoutService(orderRepo, cartRepo, addressRepo, log)
	statsService := reportapp.NewStatsService(productRepo, userRepo, orderRepo)
	uploadService := storageapp.NewUploadService(objectStorage(cfg, log))

	// Router
	r := router.New(
		router.WithMiddleware(
			logger.Recovery(log),
			middleware.RequestID(),
			logger.GinMiddleware(log),
			middleware.SecureHeaders(),
			middleware.CORSWithConfig(corsConfig(cfg)),
			middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		),
		router.WithAdminMiddleware(
			middleware.SessionAuth(tokens),
			middleware.RequireRole(string(identity.RoleAdmin)),
		),
	)
	r.RegisterPublic(
		handler.NewAuthHandler(authService, cfg.Cookie, log),
		handler.NewUploadHandler(uploadService, log),
	)
	r.RegisterAdmin(
		handler.NewCategoryHandler(categoryService, log),
		handler.NewProductHandler(productService, log),
		handler.NewCartHandler(cartService, log),
		handler.NewOrderHandler(checkoutService, log),
		handler.NewStatsHandler(statsService, log),
	)

	engine := r.Setup()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting",
			zap.String("port", cfg.App.Port),
			zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// objectStorage returns the S3 client when a bucket is configured and a
// local stub otherwise, so development works without cloud credentials.
func objectStorage(cfg *config.Config, log *zap.Logger) storageapp.ObjectStorage {
	if cfg.Storage.Bucket == "" {
		log.Warn("No storage bucket configured, presigned URLs will use the stub backend")
		return storage.NewStubObjectStorage()
	}

	s3Store, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	return s3Store
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		cors.AllowedOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		cors.AllowedMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		cors.AllowedHeaders = cfg.HTTP.CORSAllowHeaders
	}
	return cors
}
