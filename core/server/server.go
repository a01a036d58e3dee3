package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"equimeet/core/config"
	"equimeet/core/database"
	"equimeet/core/logger"
	"equimeet/core/middleware"
	"equimeet/modules/holiday"
	"equimeet/modules/meeting"
	"equimeet/modules/organizer"
	"equimeet/modules/participant"
	"equimeet/modules/policy"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

// Run boots the full service: config, database, redis, background
// workers and the HTTP API. Blocks until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Error("failed to close asynq client", err)
		}
	}()

	mw := middleware.NewMiddleware(cfg.Auth)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Modules. The holiday module registers both its routes and its
	// asynq task handlers; meeting consumes the shared services.
	taskMux := asynq.NewServeMux()

	organizer.Init(e, db, mw, cfg.Auth)
	holidayCache := holiday.Init(e, taskMux, asynqClient, db, rdb, cfg.Holiday, mw)
	policySvc := policy.Init(e, db, mw)
	participant.Init(e, db, mw)
	meeting.Init(e, db, mw, policySvc, holidayCache)

	asynqSrv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 4})
	go func() {
		if err := asynqSrv.Run(taskMux); err != nil {
			logger.Error("asynq server stopped", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpt, nil)
	sweep := asynq.NewTask(holiday.TypeHolidaySweep, nil)
	if _, err := scheduler.Register(cfg.Holiday.RefreshCron, sweep); err != nil {
		logger.Error("failed to register holiday refresh sweep", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("asynq scheduler stopped", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		logger.Info("Starting HTTP server", "addr", addr, "env", cfg.Server.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	scheduler.Shutdown()
	asynqSrv.Shutdown()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
