package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/bootstrap"
	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/handlers"
	applog "alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := applog.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipeline, err := bootstrap.NewPipeline(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize scoring pipeline", zap.Error(err))
	}
	defer pipeline.Close()

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}

	worker := services.NewWorker(pipeline.Scorer, cfg.Worker.Concurrency, zlog)
	worker.Start(ctx)

	analyzeHandler := handlers.NewAnalyzeHandler(
		pipeline.Catalog,
		storageService,
		worker,
		cfg.Storage.MaxFileSize,
		zlog,
	)
	rolesHandler := handlers.NewRolesHandler(pipeline.Catalog)
	zlog.Info("✅ Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "Resume ATS Scorer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler, rolesHandler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		}
		worker.Stop()
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
