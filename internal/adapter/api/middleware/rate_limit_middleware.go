package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"bazaartrack/internal/infrastructure/ratelimit"
	"bazaartrack/pkg/errors"
	"bazaartrack/pkg/logger"
	"bazaartrack/pkg/response"
)

// RateLimit keys the limiter by client IP. A limiter failure lets the request through.
func RateLimit(limiter ratelimit.Limiter, name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, retryAfter, err := limiter.Allow(c.Request().Context(), name+":"+ip)
			if err != nil {
				logger.Error("rate limiter %s unavailable: %v", name, err)
				return next(c)
			}

			if !allowed {
				logger.Warn("RATE LIMIT: %s blocked request from IP %s (retry in %v)", name, ip, retryAfter)
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded"))
			}

			return next(c)
		}
	}
}
