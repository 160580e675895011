package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	approvalRepository "medfleet-tracker/internal/approval/repository"
	approvalService "medfleet-tracker/internal/approval/service"
	"medfleet-tracker/internal/config"
	dashboardRepository "medfleet-tracker/internal/dashboard/repository"
	"medfleet-tracker/internal/database"
	"medfleet-tracker/internal/delivery/http/handler"
	equipmentRepository "medfleet-tracker/internal/equipment/repository"
	equipmentService "medfleet-tracker/internal/equipment/service"
	"medfleet-tracker/internal/logger"
	"medfleet-tracker/internal/middleware"
	shiftRepository "medfleet-tracker/internal/shift/repository"
	shiftService "medfleet-tracker/internal/shift/service"
	staffRepository "medfleet-tracker/internal/staff/repository"
	staffService "medfleet-tracker/internal/staff/service"
	auditRepository "medfleet-tracker/internal/stockaudit/repository"
	auditService "medfleet-tracker/internal/stockaudit/service"
	vehicleRepository "medfleet-tracker/internal/vehicle/repository"
	vehicleService "medfleet-tracker/internal/vehicle/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *database.Database) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	equipmentHandler := handler.NewEquipmentHandler(
		equipmentService.NewService(equipmentRepository.NewRepository(db)))
	vehicleHandler := handler.NewVehicleHandler(
		vehicleService.NewService(vehicleRepository.NewRepository(db)))
	approvalHandler := handler.NewApprovalHandler(
		approvalService.NewService(approvalRepository.NewRepository(db)))
	staffHandler := handler.NewStaffHandler(
		staffService.NewService(staffRepository.NewRepository(db)))
	shiftHandler := handler.NewShiftHandler(
		shiftService.NewService(shiftRepository.NewRepository(db)))
	auditHandler := handler.NewStockAuditHandler(
		auditService.NewService(auditRepository.NewRepository(db)))
	dashboardHandler := handler.NewDashboardHandler(dashboardRepository.NewRepository(db))

	api := router.Group("/api")
	{
		equipmentHandler.RegisterRoutes(api)
		vehicleHandler.RegisterRoutes(api)
		approvalHandler.RegisterRoutes(api)
		staffHandler.RegisterRoutes(api)
		shiftHandler.RegisterRoutes(api)
		auditHandler.RegisterRoutes(api)
		dashboardHandler.RegisterRoutes(api)
	}

	// Anything outside /api serves the SPA shell.
	router.NoRoute(spaFallback(cfg.Static.Dir))

	logger.Info("All routes initialized")
	return router
}

func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	}
}
