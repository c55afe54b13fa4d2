package token

import (
	"errors"
	"math/big"

	"github.com/go-openapi/swag"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/httperrors"
	"github/chapool/mht-transfers/internal/types"
	"github/chapool/mht-transfers/internal/wallet"
)

func balanceResponse(s *api.Server, balance *big.Int) *types.BalanceResponse {
	return &types.BalanceResponse{
		Address:  swag.String(s.Wallet.Account().Address.Hex()),
		Balance:  swag.String(balance.String()),
		ChainID:  swag.Int64(s.Token.ChainID()),
		Contract: swag.String(s.Token.Contract().Hex()),
		Symbol:   s.Config.Token.Symbol,
	}
}

func balanceError(err error) error {
	if errors.Is(err, wallet.ErrNotConnected) {
		return httperrors.ErrForbiddenNotConnected
	}
	return httperrors.ErrBadGatewayBalance
}
