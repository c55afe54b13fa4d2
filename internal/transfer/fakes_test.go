package transfer_test

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github/chapool/mht-transfers/internal/wallet"
)

type fakeAccount struct {
	account wallet.Account
}

func (f *fakeAccount) Account() wallet.Account {
	return f.account
}

func connectedAccount() *fakeAccount {
	return &fakeAccount{account: wallet.Account{
		Address:     common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		IsConnected: true,
	}}
}

type fakeReader struct {
	mu      sync.Mutex
	balance *big.Int
	err     error
	calls   int
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeReader) BalanceOf(ctx context.Context, _ common.Address) (*big.Int, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return new(big.Int).Set(f.balance), nil
}

func (f *fakeReader) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type transferCall struct {
	recipient string
	amount    *big.Int
}

type fakeWriter struct {
	mu      sync.Mutex
	err     error
	calls   []transferCall
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeWriter) Transfer(_ context.Context, recipient string, amount *big.Int) (common.Hash, error) {
	f.mu.Lock()
	f.calls = append(f.calls, transferCall{recipient: recipient, amount: amount})
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}

	if f.err != nil {
		return common.Hash{}, f.err
	}
	return common.HexToHash("0x01"), nil
}

func (f *fakeWriter) Calls() []transferCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]transferCall(nil), f.calls...)
}

type notification struct {
	success bool
	msg     string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (f *fakeNotifier) Success(_ context.Context, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, notification{success: true, msg: msg})
}

func (f *fakeNotifier) Failure(_ context.Context, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, notification{success: false, msg: msg})
}

func (f *fakeNotifier) Sent() []notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification(nil), f.sent...)
}

type fakeRecorder struct {
	mu        sync.Mutex
	transfers []bool
	reads     []error
}

func (f *fakeRecorder) ObserveTransfer(success bool, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transfers = append(f.transfers, success)
}

func (f *fakeRecorder) ObserveBalanceRead(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads = append(f.reads, err)
}

func (f *fakeRecorder) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reads)
}

// stagedReader blocks its first call until release is closed and answers it with
// first. Later calls return next immediately.
type stagedReader struct {
	mu      sync.Mutex
	calls   int
	first   *big.Int
	next    *big.Int
	entered chan struct{}
	release chan struct{}
}

func newStagedReader(first, next int64) *stagedReader {
	return &stagedReader{
		first:   big.NewInt(first),
		next:    big.NewInt(next),
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
}

func (f *stagedReader) BalanceOf(_ context.Context, _ common.Address) (*big.Int, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	if call > 1 {
		return new(big.Int).Set(f.next), nil
	}

	f.entered <- struct{}{}
	<-f.release
	return new(big.Int).Set(f.first), nil
}

func (f *stagedReader) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
