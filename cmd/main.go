package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/eaglebank/contas/internal/audit"
	"github.com/eaglebank/contas/internal/command"
	"github.com/eaglebank/contas/internal/config"
	"github.com/eaglebank/contas/internal/handler"
	"github.com/eaglebank/contas/internal/repository"
	"github.com/eaglebank/contas/internal/service"
	"github.com/eaglebank/contas/shared/events"
	"github.com/eaglebank/contas/shared/middleware"
	redisClient "github.com/eaglebank/contas/shared/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create zap logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it events are dropped.
	var publisher command.EventPublisher = events.NopPublisher{}
	var redis *redisClient.Client
	if cfg.RedisEnabled() {
		redis, err = redisClient.NewClient(ctx, redisClient.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client, 10000)
		appLogger.Info("Publishing account events", zap.String("stream", events.AccountEventsStream))
	}

	store := repository.NewAccountStore()
	accounts := service.NewAccountService(store, publisher, appLogger)

	if cfg.SeedDemoAccounts {
		n, err := accounts.SeedDemoAccounts(ctx)
		if err != nil {
			appLogger.Fatal("Failed to seed demo accounts", zap.Error(err))
		}
		appLogger.Info("Seeded demo accounts", zap.Int("count", n))
	}

	var wg sync.WaitGroup
	if cfg.AuditConsumerEnabled {
		if redis == nil {
			appLogger.Warn("Audit consumer needs REDIS_ADDR; not starting it")
		} else {
			subscriber := events.NewSubscriber(redis.Client, appLogger, events.SubscriberConfig{
				Group:    "contas-audit",
				Consumer: hostname(),
				Stream:   events.AccountEventsStream,
				Handler:  audit.NewLogger(appLogger).Handle,
			})
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := subscriber.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					appLogger.Error("Audit consumer stopped", zap.Error(err))
				}
			}()
		}
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(appLogger), middleware.LoggingMiddleware(appLogger))
	router.NoRoute(middleware.NotFound)

	router.GET("/", handler.Welcome)
	router.GET("/health", handler.Health)
	handler.NewAccountHandler(accounts, accounts, appLogger).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Contas API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	wg.Wait()
	appLogger.Info("Server exited")
}

func hostname() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return "contas-1"
}
