package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sitegen_ai_server/api"
	"sitegen_ai_server/config"
	"sitegen_ai_server/internal/ai"
	internalapi "sitegen_ai_server/internal/api"
	"sitegen_ai_server/internal/logger"
	"sitegen_ai_server/internal/placeholder"
	"sitegen_ai_server/internal/registry"
	"sitegen_ai_server/internal/site"
)

func main() {
	// Load .env before viper so env-sourced config sees it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	// Resolution cache: in-memory by default, redis when configured.
	var cache placeholder.Cache
	switch cfg.CacheBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddress,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			zlog.Warn("redis unreachable, continuing with in-memory cache", zap.Error(err))
			cache = placeholder.NewMemoryCache()
		} else {
			cache = placeholder.NewRedisCache(rdb, zlog)
			defer rdb.Close()
		}
		cancel()
	default:
		cache = placeholder.NewMemoryCache()
	}

	generator := ai.NewGenerator(cfg.OpenAIKey, cfg.TextModel, cfg.ImageModel, zlog)
	resolver := placeholder.NewResolver(generator, generator, cache, zlog)
	builder := site.NewBuilder(registry.New(), resolver, zlog)
	handler := internalapi.NewAPIHandler(builder, resolver, cfg.OutputDir, cfg.SaveToDisk, zlog)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	api.RegisterRoutes(router, handler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generation calls are slow; keep the write timeout generous.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("starting API server", zap.String("address", cfg.ServerAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("API server listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zlog.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("API server forced shutdown", zap.Error(err))
	}
}
