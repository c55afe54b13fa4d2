package token

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/httperrors"
	"github/chapool/mht-transfers/internal/transfer"
	"github/chapool/mht-transfers/internal/types"
	"github/chapool/mht-transfers/internal/util"
)

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Token.POST("/transfer", postTransferHandler(s))
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostTransferPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if !s.Wallet.Account().IsConnected {
			return httperrors.ErrForbiddenNotConnected
		}
		if s.Transfer.Busy() {
			return httperrors.ErrConflictTransferInProgress
		}

		amount, err := transfer.ParseAmount(swag.StringValue(body.Amount))
		if err != nil {
			return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid amount", err.Error())
		}

		recipient := swag.StringValue(body.ToAddress)
		if !s.Transfer.HandleTransfer(ctx, recipient, amount) {
			return httperrors.ErrBadGatewayTransferFailed
		}

		lang := s.I18n.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language"))

		return util.ValidateAndReturn(c, http.StatusOK, &types.TransferResponse{
			Amount:    swag.String(amount.String()),
			Message:   swag.String(s.I18n.For(lang).TransferSucceeded(amount, recipient)),
			Success:   swag.Bool(true),
			ToAddress: swag.String(recipient),
		})
	}
}
