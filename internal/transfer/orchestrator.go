package transfer

import (
	"context"
	"math/big"
	"sync/atomic"
	"time"

	"github/chapool/mht-transfers/internal/util"
	"github/chapool/mht-transfers/internal/wallet"
)

type Option func(o *Orchestrator)

func WithMessages(m Messages) Option {
	return func(o *Orchestrator) { o.messages = m }
}

func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithReadTimeout bounds every balance read, including the refetch after a transfer.
func WithReadTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.readTimeout = d }
}

// Orchestrator owns the connection state, the balance query and the in-flight flag,
// and runs transfers submitted by the form.
type Orchestrator struct {
	account  AccountProvider
	reader   BalanceReader
	writer   Writer
	notifier Notifier
	messages Messages
	recorder Recorder

	balance     *BalanceQuery
	readTimeout time.Duration
	busy        atomic.Bool
}

func NewOrchestrator(account AccountProvider, reader BalanceReader, writer Writer, notifier Notifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		account:     account,
		reader:      reader,
		writer:      writer,
		notifier:    notifier,
		messages:    DefaultMessages{},
		recorder:    noopRecorder{},
		readTimeout: defaultReadTimeout,
	}

	for _, opt := range opts {
		opt(o)
	}

	o.balance = NewBalanceQuery(o.reader, o.recorder, o.readTimeout)

	return o
}

// HandleTransfer submits transfer(recipient, amount) and reports success.
//
// Every failure collapses into a false result and a single failure notification. On
// success the balance is re-fetched once before returning. While a transfer is in
// flight further calls return false without touching the chain.
func (o *Orchestrator) HandleTransfer(ctx context.Context, recipient string, amount *big.Int) bool {
	log := util.LogFromContext(ctx)

	if !o.busy.CompareAndSwap(false, true) {
		log.Warn().Str("recipient", recipient).Msg("Transfer already in progress, ignoring submit")
		return false
	}
	defer o.busy.Store(false)

	start := time.Now()

	txHash, err := o.writer.Transfer(ctx, recipient, amount)
	if err != nil {
		log.Error().Err(err).Str("recipient", recipient).Str("amount", amount.String()).Msg("Failed to transfer tokens")
		o.notifier.Failure(ctx, o.messages.TransferFailed())
		o.recorder.ObserveTransfer(false, time.Since(start))
		return false
	}

	log.Info().Str("tx_hash", txHash.Hex()).Msg("Transaction submitted")
	o.notifier.Success(ctx, o.messages.TransferSucceeded(amount, recipient))

	if _, err := o.Refetch(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to refetch balance after transfer")
	}

	o.recorder.ObserveTransfer(true, time.Since(start))

	return true
}

// Busy reports whether a transfer is in flight.
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// Refetch re-reads the balance of the connected account.
func (o *Orchestrator) Refetch(ctx context.Context) (*big.Int, error) {
	account := o.account.Account()
	if !account.IsConnected {
		return nil, wallet.ErrNotConnected
	}

	return o.balance.Refetch(ctx, account.Address)
}

// Balance returns the balance of the connected account, reading it if nothing is cached.
func (o *Orchestrator) Balance(ctx context.Context) (*big.Int, error) {
	account := o.account.Account()
	if !account.IsConnected {
		return nil, wallet.ErrNotConnected
	}

	return o.balance.Get(ctx, account.Address)
}

// State returns what the page renders without waiting on the chain. If no balance is
// known for the connected account yet, a read is started and the view is loading.
func (o *Orchestrator) State() View {
	view := View{
		Account: o.account.Account(),
		Busy:    o.Busy(),
	}

	if !view.Account.IsConnected {
		return view
	}

	view.Balance = o.balance.Peek(view.Account.Address)
	if view.Balance.IsLoading {
		o.balance.Prefetch(view.Account.Address)
	}

	return view
}

type noopRecorder struct{}

func (noopRecorder) ObserveTransfer(bool, time.Duration) {}
func (noopRecorder) ObserveBalanceRead(error)            {}
