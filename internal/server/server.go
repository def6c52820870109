// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/code-sankar/Backend-ChaiAurCode/internal/cache"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/config"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/database"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/middleware"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/models"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/repository"
	"github.com/code-sankar/Backend-ChaiAurCode/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo     repository.UserRepository
	videoRepo    repository.VideoRepository
	commentRepo  repository.CommentRepository
	tweetRepo    repository.TweetRepository
	subRepo      repository.SubscriptionRepository
	playlistRepo repository.PlaylistRepository
	statsRepo    repository.StatsRepository
	productRepo  repository.ProductRepository

	videoService    *service.VideoService
	commentService  *service.CommentService
	tweetService    *service.TweetService
	subService      *service.SubscriptionService
	playlistService *service.PlaylistService
	statsService    *service.StatsService
	userService     *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("videotube-api"),
		userRepo:       repository.NewUserRepository(db),
		videoRepo:      repository.NewVideoRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		tweetRepo:      repository.NewTweetRepository(db),
		subRepo:        repository.NewSubscriptionRepository(db),
		playlistRepo:   repository.NewPlaylistRepository(db),
		statsRepo:      repository.NewStatsRepository(db),
		productRepo:    repository.NewProductRepository(db),
	}

	server.videoService = service.NewVideoService(server.videoRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.videoRepo)
	server.tweetService = service.NewTweetService(server.tweetRepo, server.userRepo)
	server.subService = service.NewSubscriptionService(server.subRepo, server.userRepo)
	server.playlistService = service.NewPlaylistService(server.playlistRepo, server.videoRepo)
	server.statsService = service.NewStatsService(server.statsRepo, server.videoRepo, server.userRepo)
	server.userService = service.NewUserService(server.userRepo, server.subRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// OpenTelemetry spans
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return models.RespondWithError(c, fiber.StatusTooManyRequests,
				models.NewValidationError("Too many requests, please try again later."))
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/healthcheck", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "VideoTube Backend Metrics Dashboard",
	}))

	// Auth routes
	users := api.Group("/users")
	users.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	users.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	users.Post("/refresh-token", s.Refresh)
	users.Post("/logout", s.AuthRequired(), s.Logout)

	// Current account
	users.Get("/current-user", s.AuthRequired(), s.GetCurrentUser)
	users.Patch("/update-account", s.AuthRequired(), s.UpdateAccount)
	users.Post("/change-password", s.AuthRequired(), s.ChangePassword)
	users.Delete("/me", s.AuthRequired(), s.DeleteAccount)

	// Channel profiles; specific routes before the generic /:id route
	users.Get("/", s.GetAllUsers)
	users.Get("/c/:username", s.GetChannelProfile)
	users.Get("/:id/videos", s.GetUserVideos)
	users.Get("/:id/tweets", s.GetUserTweets)
	users.Get("/:id/playlists", s.GetUserPlaylists)
	users.Get("/:id", s.GetUser)

	// Video routes
	videos := api.Group("/videos")
	videos.Get("/", s.GetVideos)
	videos.Post("/", s.AuthRequired(), middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "upload_video"), s.CreateVideo)
	videos.Get("/:id/comments", s.GetComments)
	videos.Post("/:id/comments", s.AuthRequired(), middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.AddComment)
	videos.Post("/:id/like", s.AuthRequired(), s.ToggleVideoLike)
	videos.Patch("/:id/toggle-publish", s.AuthRequired(), s.TogglePublish)
	videos.Patch("/:id", s.AuthRequired(), s.UpdateVideo)
	videos.Delete("/:id", s.AuthRequired(), s.DeleteVideo)
	videos.Get("/:id", s.GetVideo)

	// Comment routes (update/delete by comment ID)
	comments := api.Group("/comments", s.AuthRequired())
	comments.Patch("/:id", s.UpdateComment)
	comments.Delete("/:id", s.DeleteComment)

	// Like routes
	likes := api.Group("/likes", s.AuthRequired())
	likes.Get("/videos", s.GetLikedVideos)

	// Tweet routes
	tweets := api.Group("/tweets")
	tweets.Post("/", s.AuthRequired(), middleware.RateLimit(
		s.redis, 10, time.Minute, "create_tweet"), s.CreateTweet)
	tweets.Patch("/:id", s.AuthRequired(), s.UpdateTweet)
	tweets.Delete("/:id", s.AuthRequired(), s.DeleteTweet)

	// Subscription routes
	subs := api.Group("/subscriptions")
	subs.Post("/c/:channelId", s.AuthRequired(), s.ToggleSubscription)
	subs.Get("/c/:channelId", s.GetChannelSubscribers)
	subs.Get("/u/:subscriberId", s.GetSubscribedChannels)

	// Playlist routes
	playlists := api.Group("/playlist")
	playlists.Post("/", s.AuthRequired(), s.CreatePlaylist)
	playlists.Patch("/add/:videoId/:playlistId", s.AuthRequired(), s.AddVideoToPlaylist)
	playlists.Patch("/remove/:videoId/:playlistId", s.AuthRequired(), s.RemoveVideoFromPlaylist)
	playlists.Get("/video/:videoId", s.AuthRequired(), s.GetPlaylistsForVideo)
	playlists.Patch("/:id", s.AuthRequired(), s.UpdatePlaylist)
	playlists.Delete("/:id", s.AuthRequired(), s.DeletePlaylist)
	playlists.Get("/:id", s.GetPlaylist)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats/:userId", s.GetChannelStats)
	dashboard.Get("/videos", s.AuthRequired(), s.GetChannelVideos)

	// Product routes (isolated e-commerce surface)
	products := api.Group("/products")
	products.Get("/", s.GetProducts)
	products.Post("/", s.AuthRequired(), s.CreateProduct)
	products.Get("/categories", s.GetCategories)
	products.Post("/categories", s.AuthRequired(), s.CreateCategory)
	products.Patch("/:id", s.AuthRequired(), s.UpdateProduct)
	products.Delete("/:id", s.AuthRequired(), s.DeleteProduct)
	products.Get("/:id", s.GetProduct)
}

// HealthCheck handles GET /api/v1/healthcheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return models.Respond(c, fiber.StatusOK, fiber.Map{"status": "OK"}, "Everything is fine")
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			tokenString = c.Cookies("accessToken")
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		userID, err := s.validateToken(c, tokenString, s.config.JWTSecret)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}

		// Store user ID in context
		c.Locals("userID", userID)
		// Sync to UserContext for logging and downstream services
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// validateToken parses and verifies a token against the given secret,
// checking the signing method, issuer, audience and JTI revocation list.
func (s *Server) validateToken(c *fiber.Ctx, tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthorizedError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		return 0, models.NewUnauthorizedError("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		return 0, models.NewUnauthorizedError("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewUnauthorizedError("Invalid subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("Invalid user ID in token")
	}

	// Check JTI for revocation
	if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
		isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
		if err == nil && isBlacklisted > 0 {
			return 0, models.NewUnauthorizedError("Token has been revoked")
		}
	}

	return uint(userID), nil
}

// optionalUserID attempts to extract userID from the Authorization header but
// does not enforce it. Anonymous callers get zero.
func (s *Server) optionalUserID(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	tokenString := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Cookies("accessToken")
	}
	if tokenString == "" {
		return 0, false
	}

	userID, err := s.validateToken(c, tokenString, s.config.JWTSecret)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "VideoTube API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
