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

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tempofy/time-tracking/internal/api"
	"github.com/tempofy/time-tracking/internal/core/domain"
	"github.com/tempofy/time-tracking/internal/core/ports"
	"github.com/tempofy/time-tracking/internal/core/service"
	"github.com/tempofy/time-tracking/internal/infrastructure/db/memory"
	"github.com/tempofy/time-tracking/internal/pkg/config"
	"github.com/tempofy/time-tracking/pkg/logger"
	"github.com/tempofy/time-tracking/pkg/token"
)

const (
	serviceName     = "time-tracking"
	devJWTSecret    = "dev-only-insecure-secret"
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: serviceName,
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("application starting")

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		log.Warn().Msg("JWT_SECRET not set, using development secret")
		secret = devJWTSecret
	}

	issuer := token.NewJWTIssuer(secret, cfg.Auth.TokenTTL, clockwork.NewRealClock())
	repo := memory.NewAuthRepository(
		memory.WithTokenIssuer(issuer),
		memory.WithHashCost(cfg.Auth.BcryptCost),
		memory.WithLogger(logger.Component(log, "repository")),
	)
	limits := cfg.Limits.Domain()
	authService := service.NewAuthService(repo, limits, logger.Component(log, "auth"))

	if cfg.Bootstrap.Enabled() {
		if err := bootstrapAdmin(ctx, authService, cfg.Bootstrap); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
	}

	e := api.NewRouter(authService, issuer, api.Options{
		LoginRateLimit: cfg.Auth.LoginRateLimit,
		Logger:         logger.Component(log, "http"),
	})

	return serve(ctx, e, ":"+cfg.Port, log)
}

func bootstrapAdmin(ctx context.Context, authService ports.AuthService, b config.BootstrapConfig) error {
	_, err := authService.Register(ctx, ports.RegisterInput{
		Name:     b.AdminName,
		Email:    b.AdminEmail,
		Password: b.AdminPassword,
		Role:     domain.RoleAdmin.String(),
	})
	return err
}

// serve blocks until ctx is cancelled or the listener fails, then drains
// in-flight requests.
func serve(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received, draining")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
