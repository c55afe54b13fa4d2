package token

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/util"
)

func PostRefetchBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Token.POST("/balance/refetch", postRefetchBalanceHandler(s))
}

func postRefetchBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		balance, err := s.Transfer.Refetch(ctx)
		if err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to refetch balance")
			return balanceError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, balanceResponse(s, balance))
	}
}
