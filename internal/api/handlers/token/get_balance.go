package token

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/util"
)

func GetBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Token.GET("/balance", getBalanceHandler(s))
}

func getBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		balance, err := s.Transfer.Balance(ctx)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to get balance")
			return balanceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, balanceResponse(s, balance))
	}
}
