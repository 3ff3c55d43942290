package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"funnel-checkout/internal/checkout"
	"funnel-checkout/internal/config"
	"funnel-checkout/internal/notify"
	"funnel-checkout/internal/ratelimit"
	"funnel-checkout/internal/server"
	"funnel-checkout/pkg/gateway"
	"funnel-checkout/pkg/logger"
	"funnel-checkout/pkg/redis"
)

// ENTRY POINT

func main() {
	_ = godotenv.Load()

	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	// A missing price table is not fatal: leads and webhooks keep working,
	// and the checkout endpoint answers server_misconfigured until fixed.
	var prices checkout.PriceTable
	if cfg.PricesFile != "" {
		prices, err = checkout.LoadPriceTable(cfg.PricesFile)
		if err != nil {
			zapLogger.Warn("Price table unavailable", zap.Error(err))
		}
	} else {
		zapLogger.Warn("No prices file configured")
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	redisClient := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	if err := pingRedis(ctx, redisClient, zapLogger); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	limiter := ratelimit.New(
		ratelimit.NewRedisStore(redisClient, cfg.RateLimitWindow),
		cfg.RateLimitWindow,
		zapLogger,
	)

	gw := gateway.NewClient(
		cfg.GatewayBaseURL,
		cfg.GatewayClientID,
		cfg.GatewayClientSecret,
		cfg.GatewayTimeout,
		zapLogger,
	)
	invoiceGW := gateway.NewClient(
		cfg.GatewayBaseURL,
		cfg.GatewayClientID,
		cfg.GatewayClientSecret,
		cfg.InvoiceGatewayTimeout,
		zapLogger,
	)

	var notifier notify.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to create notification bot", zap.Error(err))
		}
		notifier = tg
	} else {
		notifier = notify.NewDisabled(zapLogger)
	}

	srv := server.New(cfg, prices, gw, invoiceGW, limiter, notifier, zapLogger)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: srv.Router(),
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", cfg.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("Server shutdown gracefully")
}

func pingRedis(ctx context.Context, client *redis.Client, logger *zap.Logger) error {
	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to Redis...")

	return backoff.RetryNotify(
		func() error {
			return client.Ping(ctx)
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("Redis connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
}
