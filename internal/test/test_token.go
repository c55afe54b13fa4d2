package test

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const TestTokenContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

var ErrFakeTransferRejected = errors.New("user rejected the request")

type TokenTransfer struct {
	Recipient string
	Amount    *big.Int
}

// FakeToken is an in memory token contract. Successful transfers move balance from Sender.
type FakeToken struct {
	mu sync.Mutex

	Sender      common.Address
	Balances    map[common.Address]*big.Int
	Transfers   []TokenTransfer
	BalanceCall int

	TransferErr error
	BalanceErr  error
	ProbeErr    error

	chainID int64
	closed  bool
}

func NewFakeToken(chainID int64) *FakeToken {
	return &FakeToken{
		Balances: map[common.Address]*big.Int{},
		chainID:  chainID,
	}
}

func (f *FakeToken) SetBalance(owner common.Address, balance int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Balances[owner] = big.NewInt(balance)
}

func (f *FakeToken) BalanceOf(_ context.Context, owner common.Address) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.BalanceCall++
	if f.BalanceErr != nil {
		return nil, f.BalanceErr
	}

	return new(big.Int).Set(f.balanceLocked(owner)), nil
}

func (f *FakeToken) Transfer(_ context.Context, recipient string, amount *big.Int) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.TransferErr != nil {
		return common.Hash{}, f.TransferErr
	}
	if !common.IsHexAddress(recipient) {
		return common.Hash{}, errors.Errorf("invalid recipient %q", recipient)
	}

	from := f.balanceLocked(f.Sender)
	if from.Cmp(amount) < 0 {
		return common.Hash{}, errors.New("execution reverted: ERC20: transfer amount exceeds balance")
	}

	to := common.HexToAddress(recipient)
	f.Balances[f.Sender] = new(big.Int).Sub(from, amount)
	f.Balances[to] = new(big.Int).Add(f.balanceLocked(to), amount)
	f.Transfers = append(f.Transfers, TokenTransfer{Recipient: recipient, Amount: new(big.Int).Set(amount)})

	return crypto.Keccak256Hash([]byte(recipient), amount.Bytes(), big.NewInt(int64(len(f.Transfers))).Bytes()), nil
}

func (f *FakeToken) Probe(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.ProbeErr
}

func (f *FakeToken) Contract() common.Address {
	return common.HexToAddress(TestTokenContract)
}

func (f *FakeToken) ChainID() int64 {
	return f.chainID
}

func (f *FakeToken) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
}

func (f *FakeToken) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}

func (f *FakeToken) TransferCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.Transfers)
}

func (f *FakeToken) balanceLocked(owner common.Address) *big.Int {
	if balance, ok := f.Balances[owner]; ok {
		return balance
	}
	return new(big.Int)
}
