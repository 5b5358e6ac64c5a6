package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahyatri/sahyatri-backend/handlers"
	"github.com/sahyatri/sahyatri-backend/internal/complaints"
	"github.com/sahyatri/sahyatri-backend/internal/config"
	"github.com/sahyatri/sahyatri-backend/internal/database"
	"github.com/sahyatri/sahyatri-backend/internal/mapdata"
	"github.com/sahyatri/sahyatri-backend/internal/oidc"
	"github.com/sahyatri/sahyatri-backend/internal/storage"
	"github.com/sahyatri/sahyatri-backend/internal/users"
	"github.com/sahyatri/sahyatri-backend/pkg/logger"
	"github.com/sahyatri/sahyatri-backend/pkg/metrics"
	"github.com/sahyatri/sahyatri-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: auth0=%v mongo=%v redis=%v", cfg.Auth0.IssuerBaseURL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Permissive CORS for the browser frontend; tighten per-origin in production.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsCfg))

	// shared runtime vars used by handlers/readiness
	var verifier middleware.Verifier
	var userSvc *users.Service
	var complaintSvc *complaints.Service

	ctx := context.Background()

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Greeting kept for frontend smoke checks
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, your Sahyatri backend is running!")
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["storage"] = userSvc != nil && complaintSvc != nil
		if !deps["storage"] {
			ready = false
		}

		if cfg.Auth0.IssuerBaseURL != "" {
			deps["oidc"] = verifier != nil
			if !deps["oidc"] {
				ready = false
			}
		} else {
			// not configured -> consider OK
			deps["oidc"] = true
		}

		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Auth0 OIDC verifier
	if cfg.Auth0.IssuerBaseURL != "" && cfg.Auth0.Audience != "" {
		ver, err := oidc.NewVerifier(ctx, cfg.Auth0.IssuerBaseURL, cfg.Auth0.Audience)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifier = ver
		}
	}

	// Optional insecure verifier for integration tests: parse token claims without signature verification
	if verifier == nil {
		if strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN")), "true") {
			logger.Warnf("enabling insecure token verifier (integration mode)")
			verifier = oidc.NewInsecureVerifier()
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	} else {
		defer func() { _ = client.Disconnect(ctx) }()
		db := client.Database(cfg.MongoDB.Database)
		if err := database.EnsureIndexes(ctx, db); err != nil {
			logger.Warnf("index bootstrap failed: %v", err)
		}
		userSvc = users.NewService(users.NewMongoRepository(db.Collection("users")), cfg.Auth0.ClaimsNamespace)
		complaintSvc = complaints.NewService(complaints.NewMongoRepository(db.Collection("complaints")))
	}

	// In-process map document: seeded at boot, volatile across restarts
	mapStore := mapdata.NewStore()
	handlers.NewMapHandler(mapStore).Register(r)

	// Optional MinIO-backed icon storage
	var iconStore *storage.IconStore
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		iconStore, err = storage.NewIconStore(mcfg)
		if err != nil {
			logger.Warnf("icon storage unavailable: %v", err)
			iconStore = nil
		}
	}

	// Token-protected API surface
	if verifier != nil {
		api := r.Group("/api", middleware.AuthMiddleware(verifier))
		if userSvc != nil {
			handlers.NewUserHandler(userSvc).Register(api)
		}
		if complaintSvc != nil {
			handlers.NewComplaintHandler(complaintSvc).Register(api)
		}
		handlers.NewIconHandler(iconStore, mapStore).Register(api)
	} else {
		logger.Warnf("protected routes not registered because no token verifier is configured")
	}

	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Debugf("services: users=%v complaints=%v verifier=%v icons=%v", userSvc != nil, complaintSvc != nil, verifier != nil, iconStore != nil)
	logger.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
