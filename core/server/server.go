package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"go-calendar-api/core/cache"
	"go-calendar-api/core/config"
	"go-calendar-api/core/controller"
	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/core/metrics"
	"go-calendar-api/core/middleware"
	"go-calendar-api/modules/calendar"
	"go-calendar-api/modules/event"
	eventrepo "go-calendar-api/modules/event/repository"
	eventservice "go-calendar-api/modules/event/service"
	"go-calendar-api/modules/export"
	exportservice "go-calendar-api/modules/export/service"
	"go-calendar-api/worker"
)

// Run boots the API server and, when enabled, the background worker.
// It blocks until SIGINT/SIGTERM and shuts both down gracefully.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.Log.Level)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}

	var listCache *cache.Cache
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := c.Ping(pingCtx); err != nil {
			logger.Warn("Redis unavailable, list caching disabled", "error", err)
		} else {
			listCache = c
		}
		cancel()
	}

	var queue eventservice.TaskQueue
	var queueClient *worker.Client
	workerEnabled := cfg.Worker.Enabled && listCache != nil
	if workerEnabled {
		queueClient = worker.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		queue = queueClient
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	mw := middleware.New()
	e.Use(mw.RequestID())
	e.Use(mw.RequestLogger())
	e.Use(mw.Metrics())

	e.GET("/metrics", metrics.Handler())
	e.GET("/api/health", healthHandler(&db))

	event.Init(e, &db, listCache, queue, mw)
	calendar.Init(e, &db, mw)
	export.Init(e, &db, mw)

	var workerSrv *worker.Server
	if workerEnabled {
		repo := eventrepo.NewEventRepository(&db)
		deps := worker.Deps{
			Repo:   repo,
			Cache:  listCache,
			Export: exportservice.NewExportService(repo),
		}
		if cfg.Backup.Enabled {
			deps.Uploader = exportservice.NewS3Backup(cfg.Backup)
		}

		workerSrv, err = worker.NewServer(cfg, deps)
		if err != nil {
			return err
		}
		if err := workerSrv.Start(); err != nil {
			return err
		}
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()
	logger.Info("Server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	if workerSrv != nil {
		workerSrv.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if listCache != nil {
		_ = listCache.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}

// healthHandler reports liveness of the API and its database.
func healthHandler(db database.IDatabase) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, controller.Response{
				Success: false,
				Message: "Database connection failed",
				Error:   err.Error(),
			})
		}

		return c.JSON(http.StatusOK, controller.Response{
			Success: true,
			Message: "API and Database are healthy",
		})
	}
}
