package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/onnuriprint/onnuriprint-backend/config"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/controller"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/repository"
	"github.com/onnuriprint/onnuriprint-backend/internal/app/service"
	"github.com/onnuriprint/onnuriprint-backend/internal/db"
	"github.com/onnuriprint/onnuriprint-backend/internal/document"
	"github.com/onnuriprint/onnuriprint-backend/internal/middleware"
	"github.com/onnuriprint/onnuriprint-backend/internal/pricing"
	"github.com/onnuriprint/onnuriprint-backend/internal/router"
	"github.com/onnuriprint/onnuriprint-backend/internal/scheduler"
	"github.com/onnuriprint/onnuriprint-backend/pkg/logger"
	"github.com/onnuriprint/onnuriprint-backend/pkg/mailer"
	"github.com/onnuriprint/onnuriprint-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting ONNURIPRINT Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis는 선택 사항: 없으면 메일 발송 제한만 꺼진다
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis 없이 기동합니다", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer redis.Close()

	// 견적 계산 엔진 (단가표 주입, 폴백은 경고 로그)
	engine := pricing.NewEngine(pricing.DefaultTable(), func(field, value string) {
		logger.Warn("알 수 없는 견적 옵션을 기본값으로 대체", map[string]interface{}{
			"field": field,
			"value": value,
		})
	})

	// 견적서 렌더러 (한글 폰트는 기동 시 한 번 로드)
	font := document.LoadKoreanFont(cfg.Font.CandidatePaths)
	pdfRenderer := document.NewPDFRenderer(font)

	mail := mailer.New(&cfg.Mail)

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db.GetDB())
	leadRepo := repository.NewLeadRepository(db.GetDB())

	// Initialize services
	leadService := service.NewLeadService(leadRepo)
	quoteService := service.NewQuoteService(engine, pdfRenderer, mail, leadService)
	orderService := service.NewOrderService(orderRepo, engine)

	// Initialize controllers
	quoteController := controller.NewQuoteController(quoteService)
	orderController := controller.NewOrderController(orderService)
	leadController := controller.NewLeadController(leadService)
	authController := controller.NewAuthController(&cfg.Admin, &cfg.JWT)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// 일일 리드 요약 스케줄러
	digestScheduler := scheduler.NewLeadDigestScheduler(leadService, mail, cfg.Admin.Email)
	if err := digestScheduler.Start(); err != nil {
		logger.Warn("리드 요약 스케줄러 기동 실패", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer digestScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		quoteController,
		orderController,
		leadController,
		authController,
		authMiddleware,
		cfg,
	)
	engineHTTP := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engineHTTP.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
