package transfer

import (
	"context"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// maxAmountBits is the width of the uint256 transfer argument.
const maxAmountBits = 256

var ErrInvalidAmount = errors.New("amount must be a non-negative whole number")

// Form holds the user input of the transfer form. Field values are kept verbatim
// so they can be rendered back unchanged when a transfer fails.
type Form struct {
	Wallet  string
	Amount  string
	Message string

	// Texts renders Message, DefaultMessages if nil.
	Texts Messages
}

// ParseAmount parses a base-10, non-negative integer that fits in a uint256.
// The empty string is not an amount.
func ParseAmount(raw string) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "+") || strings.HasPrefix(raw, "-") {
		return nil, ErrInvalidAmount
	}

	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Sign() < 0 || amount.BitLen() > maxAmountBits {
		return nil, ErrInvalidAmount
	}

	return amount, nil
}

// Submit runs the transfer for the current input.
//
// An empty amount or a busy orchestrator is a no-op. A malformed amount returns
// ErrInvalidAmount without invoking transfer. If transfer reports success the fields are
// cleared and Message describes the transfer; otherwise the fields are left untouched.
func (f *Form) Submit(ctx context.Context, transfer Func, busy bool) (submitted bool, err error) {
	if strings.TrimSpace(f.Amount) == "" || busy {
		return false, nil
	}

	amount, err := ParseAmount(f.Amount)
	if err != nil {
		return false, err
	}

	recipient := f.Wallet
	if !transfer(ctx, recipient, amount) {
		return true, nil
	}

	f.Wallet = ""
	f.Amount = ""
	f.Message = f.texts().TransferSucceeded(amount, recipient)

	return true, nil
}

func (f *Form) texts() Messages {
	if f.Texts == nil {
		return DefaultMessages{}
	}
	return f.Texts
}
