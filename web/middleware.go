package web

import (
	"strings"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Preview pages carry no scripts, so none are allowed
	csp := []string{
		"default-src 'self'",
		"script-src 'none'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))
	return c.Next()
}

// LoggingMiddleware logs each request with its duration
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"ip", c.Request().Header("X-Forwarded-For"),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start).String(),
	)
	if err != nil {
		logger.LogErr(err, "request failed: "+c.Request().Path())
	}

	return err
}
