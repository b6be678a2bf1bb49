package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	motorhubHTTP "motorhub/internal/controller/http"
	"motorhub/internal/repo/persistent"
	"motorhub/internal/usecase"
	"motorhub/pkg/cache"
	"motorhub/pkg/config"
	"motorhub/pkg/database"
	"motorhub/pkg/jwt"
	"motorhub/pkg/logger"
	"motorhub/pkg/metrics"
	"motorhub/pkg/middleware"
	"motorhub/pkg/queue"
	"motorhub/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg           *config.Config
	log           *logger.Logger
	db            *gorm.DB
	redisClient   *redis.Client
	storageClient *storage.Client
	jwtService    *jwt.Service
	queueClient   *queue.Client
	httpServer    *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting and in-app notifications)", err)
		redisClient = nil
	}

	storageClient, err := storage.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without decision queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:           cfg,
		log:           log,
		db:            db,
		redisClient:   redisClient,
		storageClient: storageClient,
		jwtService:    jwtService,
		queueClient:   queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	requestRepo := persistent.NewRoleRequestRepository(a.db)
	accountRepo := persistent.NewAccountRepository(a.db)
	listingRepo := persistent.NewListingRepository(a.db)

	// Initialize use cases
	payments := usecase.NewPaymentCollector(a.log)
	entitlementUseCase := usecase.NewEntitlementUseCase(accountRepo, listingRepo, payments, a.log)
	provisioner := usecase.NewProvisioner(userRepo, accountRepo, a.log)
	intakeUseCase := usecase.NewRequestIntakeUseCase(requestRepo, userRepo, a.storageClient, a.log)
	reviewUseCase := usecase.NewRequestReviewUseCase(requestRepo, provisioner, a.redisClient, a.queueClient, a.log)
	listingUseCase := usecase.NewListingUseCase(listingRepo, entitlementUseCase, a.log)
	identityUseCase := usecase.NewIdentityUseCase(userRepo, a.jwtService, a.log)
	notificationUseCase := usecase.NewNotificationUseCase(a.redisClient, a.log)

	// Deliver decision notifications from the queue
	if a.queueClient != nil {
		if err := a.queueClient.ConsumeDecisionTasks(notificationUseCase.HandleDecisionTask); err != nil {
			a.log.Error("Failed to start decision task consumer: %v", err)
		}
	}

	// Initialize HTTP handlers
	identityHandler := motorhubHTTP.NewIdentityHandler(identityUseCase)
	roleRequestHandler := motorhubHTTP.NewRoleRequestHandler(intakeUseCase)
	reviewHandler := motorhubHTTP.NewReviewHandler(intakeUseCase, reviewUseCase)
	accountHandler := motorhubHTTP.NewAccountHandler(entitlementUseCase)
	listingHandler := motorhubHTTP.NewListingHandler(listingUseCase)
	notificationHandler := motorhubHTTP.NewNotificationHandler(notificationUseCase, a.redisClient, a.jwtService, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	if a.cfg.MetricsEnabled {
		r.GET("/metrics", metrics.Handler())
	}

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rateLimit := middleware.RateLimitMiddleware(
		a.redisClient,
		a.cfg.SubmitRateLimit,
		time.Duration(a.cfg.SubmitRateWindow)*time.Second,
	)

	api := r.Group("/api/v1")
	{
		api.POST("/register", identityHandler.Register)
		api.POST("/login", identityHandler.Login)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/me", identityHandler.Me)

			protected.POST("/role-requests", rateLimit, roleRequestHandler.Submit)
			protected.GET("/role-requests/mine", roleRequestHandler.ListMine)
			protected.POST("/role-requests/:id/documents", roleRequestHandler.AttachDocument)

			protected.GET("/accounts/:id", accountHandler.Get)
			protected.POST("/accounts/:id/subscription/upgrade", accountHandler.UpgradeTier)
			protected.GET("/accounts/:id/listing-eligibility", accountHandler.ListingEligibility)
			protected.GET("/accounts/:id/features", accountHandler.Features)

			protected.POST("/listings", listingHandler.Create)
			protected.GET("/listings", listingHandler.ListMine)

			protected.GET("/notifications", notificationHandler.GetNotifications)
			protected.GET("/notifications/stream", notificationHandler.Stream)

			// Review endpoints
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/role-requests", reviewHandler.List)
				admin.GET("/role-requests/:id", reviewHandler.Get)
				admin.POST("/role-requests/:id/decision", reviewHandler.Decide)
				admin.POST("/role-requests/:id/reprovision", reviewHandler.Reprovision)
			}
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("motorhub API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down motorhub API...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close queue connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("motorhub API exited")
	return nil
}
