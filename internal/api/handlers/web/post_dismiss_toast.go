package web

import (
	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
)

func PostDismissToastRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/toasts/:id/dismiss", postDismissToastHandler(s))
}

func postDismissToastHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.Toasts.Dismiss(c.Param("id"))
		return redirectHome(c)
	}
}
