package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/blendworks/backend/internal/application/catalog"
	complianceapp "github.com/blendworks/backend/internal/application/compliance"
	eventapp "github.com/blendworks/backend/internal/application/event"
	inventoryapp "github.com/blendworks/backend/internal/application/inventory"
	partnerapp "github.com/blendworks/backend/internal/application/partner"
	productionapp "github.com/blendworks/backend/internal/application/production"
	recipeapp "github.com/blendworks/backend/internal/application/recipe"
	tradeapp "github.com/blendworks/backend/internal/application/trade"
	"github.com/blendworks/backend/internal/domain/shared"
	"github.com/blendworks/backend/internal/infrastructure/cache"
	"github.com/blendworks/backend/internal/infrastructure/config"
	"github.com/blendworks/backend/internal/infrastructure/event"
	"github.com/blendworks/backend/internal/infrastructure/logger"
	"github.com/blendworks/backend/internal/infrastructure/persistence"
	"github.com/blendworks/backend/internal/infrastructure/storage"
	"github.com/blendworks/backend/internal/infrastructure/telemetry"
	"github.com/blendworks/backend/internal/interfaces/http/handler"
	"github.com/blendworks/backend/internal/interfaces/http/middleware"
	"github.com/blendworks/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/blendworks/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Blendworks Backend API
//	@version		1.0
//	@description	Back-office API for tea and coffee manufacturing: inventory ledger, batch production, recipes and costing, suppliers, compliance and sales orders.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/blendworks/backend
//	@contact.email	support@blendworks.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Initialize OpenTelemetry providers. Disabled telemetry yields no-op
	// providers, so the wiring below is unconditional.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Warn("Tracer provider shutdown failed", zap.Error(err))
		}
	}()

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Warn("Meter provider shutdown failed", zap.Error(err))
		}
	}()

	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize OTEL logger provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
			log.Warn("OTEL logger provider shutdown failed", zap.Error(err))
		}
	}()

	// Initialize database with GORM log level mapped from app log level
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// Register database tracing callbacks when enabled
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:          true,
			SlowQueryThresh:  cfg.Telemetry.DBSlowQueryThresh,
			WithoutVariables: cfg.App.Env == "production",
		}, log)
		if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Initialize repositories
	itemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	movementRepo := persistence.NewGormInventoryMovementRepository(db.DB)
	receiptRepo := persistence.NewGormStockReceiptRepository(db.DB)
	wastageRepo := persistence.NewGormWastageRecordRepository(db.DB)
	blendStockRepo := persistence.NewGormTeaCoffeeStockRepository(db.DB)
	batchRepo := persistence.NewGormBatchRecordRepository(db.DB)
	categoryRepo := persistence.NewGormProductCategoryRepository(db.DB)
	materialRepo := persistence.NewGormRawMaterialRepository(db.DB)
	skuRepo := persistence.NewGormCustomSKURepository(db.DB)
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	productRepo := persistence.NewGormFinalProductRepository(db.DB)
	orderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	methodRepo := persistence.NewGormDeliveryMethodRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	equipmentRepo := persistence.NewGormEquipmentRepository(db.DB)
	documentRepo := persistence.NewGormComplianceDocumentRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	// Transaction scopes for multi-repository writes
	inventoryTxScope := persistence.NewGormInventoryTransactionScope(db.DB)
	productionTxScope := persistence.NewGormProductionTransactionScope(db.DB)

	// Event serialization and in-process event bus
	serializer := event.NewEventSerializer()
	event.RegisterAllEvents(serializer)

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(inventoryapp.NewReorderAlertHandler(log))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := eventBus.Stop(stopCtx); err != nil {
			log.Warn("Event bus stop failed", zap.Error(err))
		}
	}()

	// Domain events flow through the outbox table and are dispatched to the
	// bus by the background processor (transactional outbox pattern).
	outboxStore := event.NewOutboxStore(outboxRepo, serializer)

	if cfg.Event.ProcessorEnabled {
		processorCfg := event.DefaultOutboxProcessorConfig()
		if cfg.Event.BatchSize > 0 {
			processorCfg.BatchSize = cfg.Event.BatchSize
		}
		outboxProcessor := event.NewOutboxProcessor(outboxRepo, eventBus, serializer, processorCfg, log)
		if err := outboxProcessor.Start(ctx); err != nil {
			log.Fatal("Failed to start outbox processor", zap.Error(err))
		}
		defer outboxProcessor.Stop(context.Background())
		log.Info("Outbox processor started",
			zap.Int("batch_size", processorCfg.BatchSize),
			zap.Duration("poll_interval", processorCfg.PollInterval),
		)
	}

	// Idempotency store: Redis when reachable, in-memory otherwise
	idempotencyStore, err := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}

	// Object storage for compliance document files
	var objectStorage complianceapp.ObjectStorageService
	if cfg.Storage.AccessKey != "" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("S3 object storage initialized",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("region", cfg.Storage.Region),
		)
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("Object storage credentials missing, using stub storage")
	}

	// Initialize application services
	inventoryService := inventoryapp.NewInventoryService(
		itemRepo, movementRepo, receiptRepo, wastageRepo, blendStockRepo, inventoryTxScope)
	inventoryService.SetEventPublisher(outboxStore)
	inventoryService.SetIdempotencyStore(idempotencyStore, shared.DefaultIdempotencyConfig())

	batchService := productionapp.NewBatchService(batchRepo, itemRepo, productionTxScope)
	batchService.SetEventPublisher(outboxStore)

	recipeService := recipeapp.NewRecipeService(recipeRepo, productRepo, materialRepo)
	catalogService := catalogapp.NewCatalogService(categoryRepo, materialRepo, skuRepo)

	supplierService := partnerapp.NewSupplierService(supplierRepo)
	supplierService.SetEventPublisher(outboxStore)

	salesOrderService := tradeapp.NewSalesOrderService(orderRepo, methodRepo)
	salesOrderService.SetEventPublisher(outboxStore)

	documentService := complianceapp.NewDocumentService(documentRepo, objectStorage)
	equipmentService := complianceapp.NewEquipmentService(equipmentRepo)
	outboxService := eventapp.NewOutboxService(outboxRepo, log)

	// Business-level metrics collected from stock levels on a fixed interval
	businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:         meterProvider.Meter("blendworks.business"),
		Logger:        log,
		StockProvider: telemetry.NewGormStockMetricsProvider(db.DB),
	})
	if err != nil {
		log.Warn("Failed to initialize business metrics", zap.Error(err))
	} else {
		businessMetrics.StartPeriodicCollection(ctx, 5*time.Minute)
		defer businessMetrics.Stop()
	}

	// Initialize HTTP handlers
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	productionHandler := handler.NewProductionHandler(batchService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	partnerHandler := handler.NewPartnerHandler(supplierService)
	tradeHandler := handler.NewTradeHandler(salesOrderService)
	complianceHandler := handler.NewComplianceHandler(documentService, equipmentService)
	outboxHandler := handler.NewOutboxHandler(outboxService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - OTEL spans per request (when telemetry enabled)
	// 5. Metrics - HTTP RED metrics (when telemetry enabled)
	// 6. Security - Add security headers
	// 7. CORS - Handle cross-origin requests
	// 8. BodyLimit - Limit request body size
	// 9. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
		engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			MeterProvider: meterProvider,
			ServiceName:   cfg.Telemetry.ServiceName,
			Enabled:       true,
		}))
		engine.Use(middleware.Profiling())
	}

	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside the API version prefix)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation endpoint with IP protection
	if cfg.Swagger.Enabled {
		swaggerGroup := engine.Group("/swagger")
		swaggerGroup.Use(middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}))
		swaggerGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/categories", catalogHandler.CreateCategory)
	catalogRoutes.GET("/categories", catalogHandler.ListCategories)
	catalogRoutes.PUT("/categories/:id", catalogHandler.UpdateCategory)
	catalogRoutes.DELETE("/categories/:id", catalogHandler.DeactivateCategory)
	catalogRoutes.POST("/raw-materials", catalogHandler.CreateRawMaterial)
	catalogRoutes.GET("/raw-materials", catalogHandler.ListRawMaterials)
	catalogRoutes.GET("/raw-materials/:id", catalogHandler.GetRawMaterial)
	catalogRoutes.PUT("/raw-materials/:id", catalogHandler.UpdateRawMaterial)
	catalogRoutes.POST("/skus", catalogHandler.RegisterSKU)
	catalogRoutes.GET("/skus", catalogHandler.ListSKUs)
	catalogRoutes.POST("/skus/generate", catalogHandler.GenerateSKU)

	inventoryRoutes := router.NewDomainGroup("inventory", "/inventory")
	inventoryRoutes.POST("/items", inventoryHandler.CreateItem)
	inventoryRoutes.GET("/items", inventoryHandler.List)
	inventoryRoutes.GET("/items/by-name", inventoryHandler.GetItemByName)
	inventoryRoutes.GET("/items/:id", inventoryHandler.GetItem)
	inventoryRoutes.PUT("/items/:id", inventoryHandler.UpdateItem)
	inventoryRoutes.POST("/items/:id/adjust", inventoryHandler.AdjustStock)
	inventoryRoutes.POST("/receive", inventoryHandler.ReceiveStock)
	inventoryRoutes.POST("/wastage", inventoryHandler.RecordWastage)
	inventoryRoutes.GET("/movements", inventoryHandler.ListMovements)
	inventoryRoutes.POST("/blend-weights", inventoryHandler.RecordBlendWeight)

	productionRoutes := router.NewDomainGroup("production", "/production")
	productionRoutes.POST("/batches", productionHandler.CreateBatch)
	productionRoutes.GET("/batches", productionHandler.ListBatches)
	productionRoutes.GET("/batches/by-number/:number", productionHandler.GetBatchByNumber)
	productionRoutes.GET("/batches/:id", productionHandler.GetBatch)
	productionRoutes.PUT("/batches/:id", productionHandler.UpdateBatch)
	productionRoutes.POST("/batches/:id/finish", productionHandler.FinishBatch)
	productionRoutes.POST("/batches/:id/reopen", productionHandler.ReopenBatch)

	recipeRoutes := router.NewDomainGroup("recipe", "/recipes")
	recipeRoutes.POST("", recipeHandler.CreateRecipe)
	recipeRoutes.GET("", recipeHandler.ListRecipes)
	recipeRoutes.GET("/:id", recipeHandler.GetRecipe)
	recipeRoutes.PUT("/:id", recipeHandler.UpdateRecipe)
	recipeRoutes.DELETE("/:id", recipeHandler.DeactivateRecipe)
	recipeRoutes.GET("/:id/costing", recipeHandler.CostRecipe)

	productRoutes := router.NewDomainGroup("final-product", "/final-products")
	productRoutes.POST("", recipeHandler.CreateFinalProduct)
	productRoutes.GET("", recipeHandler.ListFinalProducts)
	productRoutes.GET("/:id", recipeHandler.GetFinalProduct)
	productRoutes.PUT("/:id", recipeHandler.UpdateFinalProduct)
	productRoutes.DELETE("/:id", recipeHandler.DeactivateFinalProduct)

	supplierRoutes := router.NewDomainGroup("supplier", "/suppliers")
	supplierRoutes.POST("", partnerHandler.CreateSupplier)
	supplierRoutes.GET("", partnerHandler.ListSuppliers)
	supplierRoutes.GET("/:id", partnerHandler.GetSupplier)
	supplierRoutes.PUT("/:id", partnerHandler.UpdateSupplier)
	supplierRoutes.POST("/:id/activate", partnerHandler.ActivateSupplier)
	supplierRoutes.POST("/:id/deactivate", partnerHandler.DeactivateSupplier)
	supplierRoutes.POST("/:id/block", partnerHandler.BlockSupplier)

	orderRoutes := router.NewDomainGroup("trade", "/orders")
	orderRoutes.POST("", tradeHandler.CreateOrder)
	orderRoutes.GET("", tradeHandler.ListOrders)
	orderRoutes.GET("/:id", tradeHandler.GetOrder)
	orderRoutes.POST("/:id/items", tradeHandler.AddItem)
	orderRoutes.PUT("/:id/items/:item_id", tradeHandler.UpdateItemQuantity)
	orderRoutes.DELETE("/:id/items/:item_id", tradeHandler.RemoveItem)
	orderRoutes.PUT("/:id/delivery", tradeHandler.SetDelivery)
	orderRoutes.POST("/:id/confirm", tradeHandler.ConfirmOrder)
	orderRoutes.POST("/:id/deliver", tradeHandler.MarkDelivered)
	orderRoutes.POST("/:id/cancel", tradeHandler.CancelOrder)

	deliveryRoutes := router.NewDomainGroup("delivery-method", "/delivery-methods")
	deliveryRoutes.POST("", tradeHandler.CreateDeliveryMethod)
	deliveryRoutes.GET("", tradeHandler.ListDeliveryMethods)

	complianceRoutes := router.NewDomainGroup("compliance", "/compliance")
	complianceRoutes.POST("/documents", complianceHandler.CreateDocument)
	complianceRoutes.GET("/documents", complianceHandler.ListDocuments)
	complianceRoutes.GET("/documents/:id", complianceHandler.GetDocument)
	complianceRoutes.DELETE("/documents/:id", complianceHandler.DeleteDocument)
	complianceRoutes.POST("/documents/:id/upload", complianceHandler.InitiateUpload)
	complianceRoutes.POST("/documents/:id/versions", complianceHandler.ConfirmVersion)
	complianceRoutes.GET("/documents/:id/download", complianceHandler.GetDownloadURL)
	complianceRoutes.PUT("/documents/:id/review-due", complianceHandler.SetReviewDue)
	complianceRoutes.POST("/documents/:id/archive", complianceHandler.ArchiveDocument)
	complianceRoutes.POST("/documents/:id/unarchive", complianceHandler.UnarchiveDocument)

	equipmentRoutes := router.NewDomainGroup("equipment", "/equipment")
	equipmentRoutes.POST("", complianceHandler.CreateEquipment)
	equipmentRoutes.GET("", complianceHandler.ListEquipment)
	equipmentRoutes.GET("/:id", complianceHandler.GetEquipment)
	equipmentRoutes.PUT("/:id", complianceHandler.UpdateEquipment)
	equipmentRoutes.DELETE("/:id", complianceHandler.DeleteEquipment)
	equipmentRoutes.POST("/:id/service", complianceHandler.RecordService)
	equipmentRoutes.POST("/:id/calibration", complianceHandler.RecordCalibration)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/outbox/dead", outboxHandler.GetDeadLetterEntries)
	systemRoutes.POST("/outbox/dead/retry-all", outboxHandler.RetryAllDeadEntries)
	systemRoutes.GET("/outbox/stats", outboxHandler.GetStats)
	systemRoutes.GET("/outbox/:id", outboxHandler.GetEntry)
	systemRoutes.POST("/outbox/:id/retry", outboxHandler.RetryDeadEntry)

	// Register all domain groups
	r.Register(catalogRoutes).
		Register(inventoryRoutes).
		Register(productionRoutes).
		Register(recipeRoutes).
		Register(productRoutes).
		Register(supplierRoutes).
		Register(orderRoutes).
		Register(deliveryRoutes).
		Register(complianceRoutes).
		Register(equipmentRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
