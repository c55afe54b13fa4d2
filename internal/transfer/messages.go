package transfer

import (
	"fmt"
	"math/big"
)

// DefaultMessages are the English notification texts.
type DefaultMessages struct{}

func (DefaultMessages) TransferSucceeded(amount *big.Int, recipient string) string {
	return fmt.Sprintf("Transferred %s tokens to %s", amount, recipient)
}

func (DefaultMessages) TransferFailed() string {
	return "Failed to transfer tokens"
}
