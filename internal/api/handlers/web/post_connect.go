package web

import (
	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/util"
)

func PostConnectRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/connect", postConnectHandler(s))
}

func postConnectHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := s.Wallet.Connect(); err != nil {
			util.LogFromEchoContext(c).Warn().Err(err).Msg("Failed to connect wallet")
		}

		return redirectHome(c)
	}
}

func PostDisconnectRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/disconnect", postDisconnectHandler(s))
}

func postDisconnectHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.Wallet.Disconnect()
		return redirectHome(c)
	}
}
