package wallet

import (
	"github.com/go-openapi/swag"
	"github/chapool/mht-transfers/internal/types"
	"github/chapool/mht-transfers/internal/wallet"
)

func accountResponse(account wallet.Account) *types.AccountResponse {
	res := &types.AccountResponse{
		IsConnected: swag.Bool(account.IsConnected),
	}

	if account.IsConnected {
		res.Address = account.Address.Hex()
	}

	return res
}
