package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

var (
	epoch = time.Unix(0, 0).UTC().Format(http.TimeFormat)

	noCacheHeaders = map[string]string{
		"Expires":         epoch,
		"Cache-Control":   "no-cache, no-store, no-transform, must-revalidate, private, max-age=0",
		"Pragma":          "no-cache",
		"X-Accel-Expires": "0",
	}

	etagHeaders = []string{
		"ETag",
		"If-Modified-Since",
		"If-Match",
		"If-None-Match",
		"If-Range",
		"If-Unmodified-Since",
	}
)

type NoCacheConfig struct {
	Skipper echoMiddleware.Skipper
}

var DefaultNoCacheConfig = NoCacheConfig{
	Skipper: echoMiddleware.DefaultSkipper,
}

// NoCache strips conditional request headers and marks the response as uncacheable.
func NoCache() echo.MiddlewareFunc {
	return NoCacheWithConfig(DefaultNoCacheConfig)
}

func NoCacheWithConfig(config NoCacheConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultNoCacheConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			for _, header := range etagHeaders {
				req.Header.Del(header)
			}

			res := c.Response()
			for header, value := range noCacheHeaders {
				res.Header().Set(header, value)
			}

			return next(c)
		}
	}
}
