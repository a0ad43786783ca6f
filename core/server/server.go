package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"internhub/core/cache"
	"internhub/core/config"
	"internhub/core/constants"
	"internhub/core/database"
	"internhub/core/logger"
	"internhub/core/middleware"
	"internhub/core/queue"
	"internhub/core/storage"
	"internhub/modules/auth"
	"internhub/modules/calendar"
	"internhub/modules/community"
	"internhub/modules/internship"
	"internhub/modules/job"
	"internhub/modules/notification"
	"internhub/modules/resource"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the whole application and blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	redis, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer redis.Close()

	taskQueue := queue.InitQueue(cfg.Redis)
	defer taskQueue.Close()

	s3 := storage.InitStorage(cfg.AWS)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestID())

	api := e.Group("/api/v1")
	public := api.Group("/public")
	private := api.Group("/private")

	mw := middleware.NewMiddleware(redis)

	// Calendar first: auth needs the engine manager to start and stop
	// per-user reminder sessions.
	engines := calendar.Init(private, db, mw, taskQueue)
	auth.Init(public, private, db, redis, mw, engines)
	internship.Init(public, private, db, mw)
	job.Init(public, private, db, mw)
	community.Init(public, private, db, mw)
	resource.Init(public, private, s3, mw)

	notificationWorker := notification.Init(private, db, mw)
	notificationWorker.Start()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Error:", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server:Shutdown:Error:", err)
	}

	engines.StopAll()
	notificationWorker.Stop()

	logger.Info("Server stopped")
	return nil
}
