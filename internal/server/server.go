package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	_ "formsd/docs"
	"formsd/internal/config"
	"formsd/internal/forms"
	"formsd/internal/handlers"
	"formsd/internal/logger"
	"formsd/internal/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
}

// New wires middleware and routes around svc.
func New(cfg config.AppConfig, svc *forms.Service, m *metrics.Metrics) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonLevel(cfg.Log.Level))
	e.HTTPErrorHandler = handlers.ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Error("request", v.Error, fields...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(corsConfig(cfg.Server.FrontendURL)))
	e.Use(m.Middleware())

	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	handlers.Register(e, svc, cfg.Server.PublicURL)

	return &Server{
		echo:            e,
		addr:            ":" + cfg.Server.Port,
		shutdownTimeout: cfg.Server.ShutdownTimeout,
	}
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests for at most
// the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting form API", zap.String("addr", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		logger.Info("shutting down form API")
		return s.echo.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// corsConfig allows origin, or any origin for "*", with credentials.
func corsConfig(origin string) middleware.CORSConfig {
	origin = strings.TrimRight(origin, "/")
	if origin == "" {
		origin = "*"
	}
	return middleware.CORSConfig{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           int((12 * time.Hour).Seconds()),

		// browsers refuse "*" together with credentials, so reflect the caller instead
		UnsafeWildcardOriginWithAllowCredentials: origin == "*",
	}
}

func gommonLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "info":
		return log.INFO
	case "warn", "warning":
		return log.WARN
	case "off":
		return log.OFF
	default:
		return log.ERROR
	}
}
