package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github/chapool/mht-transfers/internal/util"
)

// RequestID assigns a uuid to every request that does not carry an X-Request-ID header yet
// and stores it in the request context.
func RequestID() echo.MiddlewareFunc {
	return echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := context.WithValue(c.Request().Context(), util.CTXKeyRequestID, id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}
