package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/transfer"
)

func GetIndexRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/", getIndexHandler(s))
}

func getIndexHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := localized(s, c)
		return render(s, c, http.StatusOK, l, &transfer.Form{Texts: l}, "")
	}
}
