package transfer

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github/chapool/mht-transfers/internal/wallet"
)

// Func submits a transfer and reports whether it succeeded.
type Func func(ctx context.Context, recipient string, amount *big.Int) bool

// Request is created when the form is submitted and consumed once by the orchestrator.
type Request struct {
	Recipient string
	Amount    *big.Int
}

type AccountProvider interface {
	Account() wallet.Account
}

type BalanceReader interface {
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
}

type Writer interface {
	Transfer(ctx context.Context, recipient string, amount *big.Int) (common.Hash, error)
}

// Notifier is a fire-and-forget notification sink.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Failure(ctx context.Context, msg string)
}

// Messages renders the texts of transfer notifications.
type Messages interface {
	TransferSucceeded(amount *big.Int, recipient string) string
	TransferFailed() string
}

// Recorder observes transfer outcomes and balance reads, e.g. for metrics.
type Recorder interface {
	ObserveTransfer(success bool, duration time.Duration)
	ObserveBalanceRead(err error)
}

// View is everything the page needs to render the current state.
type View struct {
	Account wallet.Account
	Balance BalanceView
	Busy    bool
}
