package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/inkhaven/inkhaven/backend/go-services/handlers"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/config"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/database"
	drafthandler "github.com/inkhaven/inkhaven/backend/go-services/internal/draft/handler"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft/service"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/draft/store"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/events"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/notify"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/storage"
	"github.com/inkhaven/inkhaven/backend/go-services/internal/writers"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/logger"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/metrics"
	"github.com/inkhaven/inkhaven/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Viewer-Id")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery + viewer resolution
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.ViewerMiddleware(cfg.JWT.Secret))

	// Connect to Redis early: it backs both the notification sink and the
	// optional distributed rate limiter.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-viewer when identified, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Writer directory: Mongo-backed when configured, in-memory otherwise.
	var directory writers.Directory
	if cfg.MongoDB.URI != "" {
		ctx := context.Background()
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("could not connect to MongoDB (%v) — using in-memory writer directory", err)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			directory = writers.NewMongoDirectory(client.Database(cfg.MongoDB.Database).Collection("writers"))
			logger.Infof("Using Mongo-backed writer directory")
		}
	}
	if directory == nil {
		directory = writers.NewMemoryDirectory()
	}

	// Notification sink: Redis-backed when available.
	var sink notify.Sink = notify.NopSink{}
	if redisClient != nil {
		sink = notify.NewRedisSink(redisClient, "notify:")
	}

	// The draft engine proper: one emitter, one store, one service for the
	// whole process. All draft state is memory-resident and lost on restart.
	emitter := events.NewEmitter()
	drafts := store.New(emitter)
	svc := service.New(drafts, emitter, directory, sink)

	drafthandler.RegisterDraftRoutes(r, svc)
	handlers.RegisterSwagger(r)

	// Attachment hand-off to MinIO when configured.
	if minioCfg := storage.LoadMinIOConfig(); minioCfg.Endpoint != "" {
		assetStore, err := storage.NewMinIOStorage(minioCfg)
		if err != nil {
			logger.Warnf("asset store unavailable: %v", err)
		} else {
			drafthandler.RegisterAssetRoutes(r, assetStore)
			logger.Infof("asset uploads enabled (bucket %s)", minioCfg.Bucket)
		}
	}

	// Test-only state reset; never mounted in production.
	if cfg.Server.Environment != "production" {
		r.POST("/api/test/reset", func(c *gin.Context) {
			svc.Reset()
			c.Status(http.StatusNoContent)
		})
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — the draft store is always ready once constructed;
	// report optional dependency status alongside.
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"store": true,
			"redis": redisClient != nil || cfg.Redis.Host == "",
		}
		ready := true
		for _, ok := range deps {
			if !ok {
				ready = false
			}
		}
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting draft service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
