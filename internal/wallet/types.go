package wallet

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

var (
	ErrNotConnected    = errors.New("wallet not connected")
	ErrNoKeyConfigured = errors.New("no wallet key configured")
)

// Account is what the app knows about the connected wallet.
type Account struct {
	Address     common.Address
	IsConnected bool
}
