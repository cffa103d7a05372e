package api

import (
	"math"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tempofy/time-tracking/internal/api/handler"
	"github.com/tempofy/time-tracking/internal/api/middleware"
	"github.com/tempofy/time-tracking/internal/core/domain"
	"github.com/tempofy/time-tracking/internal/core/ports"
)

const metricsSubsystem = "timetracking"

// Options configures the router. Zero Registerer and Gatherer fall back to
// the prometheus defaults.
type Options struct {
	// LoginRateLimit is the sustained login attempts per second per client IP.
	LoginRateLimit float64
	Registerer     prometheus.Registerer
	Gatherer       prometheus.Gatherer
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(authService ports.AuthService, tokens middleware.TokenParser, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: opts.Registerer,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(authService)
	requireAuth := middleware.Auth(tokens, authService)
	loginLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(opts.LoginRateLimit),
			Burst: loginBurst(opts.LoginRateLimit),
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, handler.ErrorResponse{Error: "too many login attempts"})
		},
	})

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, loginLimiter)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/auth/me", authHandler.Me, requireAuth)
	e.GET("/me/permissions", authHandler.Permissions, requireAuth)

	// --- Directory (managers and above) ---
	requireManager := middleware.RequireRole(authService, domain.RoleManager)
	e.POST("/users", authHandler.CreateUser, requireAuth, requireManager)
	e.GET("/users/:id", authHandler.GetUser, requireAuth, requireManager)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: opts.Gatherer,
	}))

	return e
}

// loginBurst lets a client spend one second's worth of attempts at once,
// and never less than one.
func loginBurst(perSecond float64) int {
	return int(math.Max(1, math.Ceil(perSecond)))
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
