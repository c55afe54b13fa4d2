package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/httperrors"
	"github/chapool/mht-transfers/internal/types"
	"github/chapool/mht-transfers/internal/util"
)

func PostConnectRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/connect", postConnectHandler(s))
}

func postConnectHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := util.LogFromEchoContext(c)

		if !s.Wallet.CanConnect() {
			return httperrors.ErrConflictNoKey
		}

		if err := s.Wallet.Connect(); err != nil {
			log.Error().Err(err).Msg("Failed to connect wallet")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to connect wallet")
		}

		// balance of a fresh connection is read right away
		if _, err := s.Transfer.Refetch(c.Request().Context()); err != nil {
			log.Warn().Err(err).Msg("Failed to read balance after connect")
		}

		return util.ValidateAndReturn(c, http.StatusOK, accountResponse(s.Wallet.Account()))
	}
}
