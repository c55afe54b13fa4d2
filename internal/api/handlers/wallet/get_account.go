package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/util"
)

func GetAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("/account", getAccountHandler(s))
}

func getAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return util.ValidateAndReturn(c, http.StatusOK, accountResponse(s.Wallet.Account()))
	}
}
