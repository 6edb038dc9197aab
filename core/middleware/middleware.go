package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/logger"
	"go-calendar-api/core/metrics"
	"go-calendar-api/core/utils"
)

// Middleware bundles the cross-cutting echo middlewares so routers get
// a single dependency to register against.
type Middleware struct{}

func New() *Middleware {
	return &Middleware{}
}

// RequestID assigns a short ID to every request, honoring one supplied
// by the client.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(constants.HeaderRequestID)
			if id == "" {
				id = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set(constants.HeaderRequestID, id)
			return next(c)
		}
	}
}

// RequestLogger logs method, path, status and latency per request.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			requestID, _ := c.Get(constants.ContextRequestID).(string)
			logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestID,
			)
			return err
		}
	}
}

// Metrics records request counts and latency.
func (m *Middleware) Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			metrics.RequestsTotal.WithLabelValues(
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
			).Inc()
			metrics.RequestDuration.WithLabelValues(
				c.Request().Method,
				path,
			).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
