package main

import (
	"log/slog"
	"net/http"

	_ "buyit/api/swagger" // swagger docs
	"buyit/internal/config"
	"buyit/internal/database"
	"buyit/internal/handler"
	"buyit/internal/intake"
	"buyit/internal/middleware"
	"buyit/internal/repository"
	"buyit/internal/service"
	"buyit/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// app holds the wired dependency graph shared by serve and seed.
type app struct {
	cfg config.Config
	log *slog.Logger
	db  *gorm.DB
	hub *websocket.Hub

	requests  service.RequestService
	orders    service.PurchaseOrderService
	invoices  service.InvoiceService
	stats     service.StatisticsService
	audit     service.AuditService
	reports   service.ReportService
	seed      service.SeedService
	extractor *intake.Extractor
}

func newApp(cfg config.Config, log *slog.Logger) (*app, error) {
	db, err := database.NewConnection(cfg, log)
	if err != nil {
		return nil, err
	}

	hub := websocket.NewHub(log)

	// Set up dependencies (Repository -> Service -> Handler)
	requestRepo := repository.NewRequestRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)
	txManager := repository.NewTransactionManager(db)

	a := &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		hub:       hub,
		requests:  service.NewRequestService(requestRepo, approvalRepo, poRepo, auditRepo, txManager, hub, log),
		orders:    service.NewPurchaseOrderService(requestRepo, poRepo, auditRepo, txManager, hub, log),
		invoices:  service.NewInvoiceService(poRepo, invoiceRepo, auditRepo, txManager, cfg.MatchTolerance, hub, log),
		stats:     service.NewStatisticsService(statsRepo),
		audit:     service.NewAuditService(auditRepo),
		reports:   service.NewReportService(requestRepo, approvalRepo, poRepo, invoiceRepo, txManager),
		extractor: intake.NewExtractor(cfg.KnownVendors),
	}
	a.seed = service.NewSeedService(a.requests, a.orders, a.invoices, log)
	return a, nil
}

func (a *app) router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(a.log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = a.cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(a.hub, c)
	})

	api := router.Group("")
	handler.NewRequestHandler(a.requests).RegisterRoutes(api)
	handler.NewPurchaseOrderHandler(a.orders).RegisterRoutes(api)
	handler.NewInvoiceHandler(a.invoices).RegisterRoutes(api)
	handler.NewStatisticsHandler(a.stats).RegisterRoutes(api)
	handler.NewApprovalHandler(a.stats).RegisterRoutes(api)
	handler.NewAuditHandler(a.audit).RegisterRoutes(api)
	handler.NewReportHandler(a.reports).RegisterRoutes(api)
	handler.NewIntakeHandler(a.extractor).RegisterRoutes(api)
	return router
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
