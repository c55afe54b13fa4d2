package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/handlers/common"
	"github/chapool/mht-transfers/internal/api/handlers/token"
	"github/chapool/mht-transfers/internal/api/handlers/wallet"
	"github/chapool/mht-transfers/internal/api/handlers/web"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		token.GetBalanceRoute(s),
		token.PostRefetchBalanceRoute(s),
		token.PostTransferRoute(s),
		wallet.GetAccountRoute(s),
		wallet.PostConnectRoute(s),
		wallet.PostDisconnectRoute(s),
		web.GetIndexRoute(s),
		web.PostConnectRoute(s),
		web.PostDisconnectRoute(s),
		web.PostDismissToastRoute(s),
		web.PostTransferRoute(s),
	}
}
