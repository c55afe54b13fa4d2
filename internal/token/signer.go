package token

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// KeySource hands out the key of the connected wallet.
type KeySource interface {
	PrivateKey() (*ecdsa.PrivateKey, error)
}

type dynamicFeeParams struct {
	chainID   *big.Int
	nonce     uint64
	gasTipCap *big.Int
	gasFeeCap *big.Int
	gas       uint64
	to        common.Address
	data      []byte
}

// signDynamicFeeTx builds and signs an EIP-1559 contract call carrying no ETH value.
func signDynamicFeeTx(params dynamicFeeParams, key *ecdsa.PrivateKey) (*types.Transaction, error) {
	//nolint:varnamelen // tx is a common abbreviation for transaction
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   params.chainID,
		Nonce:     params.nonce,
		GasTipCap: params.gasTipCap,
		GasFeeCap: params.gasFeeCap,
		Gas:       params.gas,
		To:        &params.to,
		Value:     big.NewInt(0),
		Data:      params.data,
	})

	signedTx, err := types.SignTx(tx, types.NewLondonSigner(params.chainID), key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign transaction")
	}

	return signedTx, nil
}
