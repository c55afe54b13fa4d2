package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/util"
)

func PostDisconnectRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/disconnect", postDisconnectHandler(s))
}

func postDisconnectHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.Wallet.Disconnect()

		return util.ValidateAndReturn(c, http.StatusOK, accountResponse(s.Wallet.Account()))
	}
}
