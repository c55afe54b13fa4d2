package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/transfer"
	"github/chapool/mht-transfers/internal/util"
)

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/transfer", postTransferHandler(s))
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := localized(s, c)

		form := &transfer.Form{
			Wallet: c.FormValue("wallet"),
			Amount: c.FormValue("amount"),
			Texts:  l,
		}

		if !s.Wallet.Account().IsConnected {
			return render(s, c, http.StatusOK, l, form, "")
		}

		if _, err := form.Submit(c.Request().Context(), s.Transfer.HandleTransfer, s.Transfer.Busy()); err != nil {
			if errors.Is(err, transfer.ErrInvalidAmount) {
				util.LogFromEchoContext(c).Debug().Str("amount", form.Amount).Msg("Rejected malformed amount")
				return render(s, c, http.StatusUnprocessableEntity, l, form, l.T("InvalidAmount"))
			}
			return err
		}

		return render(s, c, http.StatusOK, l, form, "")
	}
}
