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

	"github.com/clinicdash/clinicdash/handlers"
	"github.com/clinicdash/clinicdash/internal/appointment"
	"github.com/clinicdash/clinicdash/internal/config"
	"github.com/clinicdash/clinicdash/internal/content"
	"github.com/clinicdash/clinicdash/internal/doctor"
	"github.com/clinicdash/clinicdash/internal/uistate"
	"github.com/clinicdash/clinicdash/pkg/logger"
	"github.com/clinicdash/clinicdash/pkg/metrics"
	"github.com/clinicdash/clinicdash/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: content_api=%v redis=%v gate=%v", cfg.ContentAPI.URL != "", cfg.Redis.Host != "", cfg.Gate.Enabled)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, X-Client-ID, "+cfg.Gate.Header)
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so UI state and the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional rate limiting (per dashboard client, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Remote content API wiring: one client, one store, one edit session, one feed
	client := content.NewClient(cfg.ContentAPI)
	store := doctor.NewStore(client)
	session := doctor.NewSession(store)
	feed := appointment.NewFeed(client)

	// Per-client UI state: Redis when available so tab selection survives restarts
	var uiRepo uistate.Repository
	if redisClient != nil {
		uiRepo = uistate.NewRedisRepository(redisClient, "uistate:", 24*time.Hour)
		logger.Infof("Using Redis for UI state storage")
	} else {
		uiRepo = uistate.NewMemoryRepository()
	}

	// Prime the caches; a cold start against an unreachable API still serves
	// (with empty, stale-marked data) rather than refusing to boot.
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ContentAPI.Timeout)
		if err := store.Refresh(ctx); err != nil {
			logger.Warnf("initial doctor fetch failed: %v", err)
		}
		if err := feed.Refresh(ctx); err != nil {
			logger.Warnf("initial appointment fetch failed: %v", err)
		}
		cancel()
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		// content readiness: the last refresh against the remote API succeeded
		deps["content"] = store.LastError() == nil && !store.RefreshedAt().IsZero()
		if !deps["content"] {
			ready = false
		}

		// Redis readiness only matters when it was configured
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Dashboard routes, behind the operator gate when enabled
	api := r.Group("/")
	if cfg.Gate.Enabled {
		api.Use(middleware.OperatorGate(cfg.Gate.Header))
	}
	handlers.NewDoctorHandler(store, session).Register(api)
	handlers.NewAppointmentHandler(feed).Register(api)
	handlers.NewDashboardHandler(store, feed, uiRepo).Register(api)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting dashboard service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
