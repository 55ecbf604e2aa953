package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/campreg/campreg/internal/backend"
	"github.com/campreg/campreg/internal/config"
	"github.com/campreg/campreg/internal/handler"
	"github.com/campreg/campreg/internal/metrics"
	"github.com/campreg/campreg/internal/middleware"
	"github.com/campreg/campreg/internal/notification"
	"github.com/campreg/campreg/internal/repository"
	"github.com/campreg/campreg/internal/router"
	"github.com/campreg/campreg/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	redis      *redis.Client
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"campreg",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initRedis() error {
	client := repository.NewRedisClient(a.cfg.Redis)

	strategy := retry.Strategy{
		Attempts: 5,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
	if err := retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return repository.Ping(ctx, client)
	}, strategy); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Address),
		logger.Int("db", a.cfg.Redis.DB),
	)

	return nil
}

func (a *App) initServices() error {
	sessionRepo := repository.NewSessionRepo(a.redis, a.cfg.Session.FlowTTL)
	credentialRepo := repository.NewCredentialRepo(a.redis, a.cfg.Session.CredentialTTL)

	client := backend.New(a.cfg.Backend.BaseURL, a.cfg.Backend.Timeout)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.OperatorChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	flowService := service.NewFlowService(sessionRepo, client, n, m, a.log)
	adminService := service.NewAdminService(credentialRepo, client, m, a.log)

	h := handler.NewHandler(flowService, adminService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Session(),
		middleware.AdminAuth(credentialRepo),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(m),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
