package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github/chapool/mht-transfers/internal/util"
)

const (
	eip1559FeeMultiplier = 2

	// transfer takes a uint256, larger values would be packed modulo 2^256
	maxAmountBits = 256
)

var (
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNoContractCode   = errors.New("no contract code at given address")
	ErrChainIDMismatch  = errors.New("RPC endpoint serves a different chain")
)

// Backend is the part of an Ethereum node the token service needs. *RPCClient implements it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Service reads balances from and submits transfers to a single ERC-20 contract.
type Service struct {
	backend  Backend
	keys     KeySource
	chainID  *big.Int
	contract common.Address
	abi      abi.ABI
}

func NewService(backend Backend, keys KeySource, chainID int64, contract string) (*Service, error) {
	if backend == nil || keys == nil {
		return nil, errors.New("invalid token service arguments: backend and keys are required")
	}

	if err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(contract, "contract"),
	).Check(); err != nil {
		return nil, errors.Wrap(err, "invalid token service arguments")
	}

	if !common.IsHexAddress(contract) {
		return nil, errors.Errorf("token contract %q is not a hex address", contract)
	}

	parsed, err := parseABI()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token ABI")
	}

	return &Service{
		backend:  backend,
		keys:     keys,
		chainID:  big.NewInt(chainID),
		contract: common.HexToAddress(contract),
		abi:      parsed,
	}, nil
}

func (s *Service) Contract() common.Address {
	return s.contract
}

func (s *Service) ChainID() int64 {
	return s.chainID.Int64()
}

// BalanceOf calls balanceOf(owner) at the latest block.
func (s *Service) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	data, err := s.abi.Pack(methodBalanceOf, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pack balanceOf")
	}

	out, err := s.backend.CallContract(ctx, ethereum.CallMsg{To: &s.contract, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call balanceOf")
	}

	if len(out) == 0 {
		return nil, ErrNoContractCode
	}

	values, err := s.abi.Unpack(methodBalanceOf, out)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unpack balanceOf")
	}

	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("unexpected balanceOf return type %T", values[0])
	}

	return balance, nil
}

// Transfer signs transfer(recipient, amount) with the connected key and broadcasts it.
// The returned hash identifies the submitted transaction; inclusion is not awaited.
func (s *Service) Transfer(ctx context.Context, recipient string, amount *big.Int) (common.Hash, error) {
	log := util.LogFromContext(ctx)

	if !common.IsHexAddress(recipient) {
		return common.Hash{}, errors.Wrapf(ErrInvalidRecipient, "%q", recipient)
	}

	if amount == nil || amount.Sign() < 0 || amount.BitLen() > maxAmountBits {
		return common.Hash{}, errors.Wrapf(ErrInvalidAmount, "%v", amount)
	}

	key, err := s.keys.PrivateKey()
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get wallet key")
	}
	from := crypto.PubkeyToAddress(key.PublicKey)
	to := common.HexToAddress(recipient)

	data, err := s.abi.Pack(methodTransfer, to, amount)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to pack transfer")
	}

	nonce, err := s.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get nonce")
	}

	tipCap, err := s.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	head, err := s.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to get latest block header")
	}
	if head.BaseFee == nil {
		return common.Hash{}, errors.New("chain does not support EIP-1559 (baseFee is nil)")
	}

	// MaxFee = BaseFee * 2 + TipCap
	feeCap := new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(eip1559FeeMultiplier)), tipCap)

	gas, err := s.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &s.contract,
		GasFeeCap: feeCap,
		GasTipCap: tipCap,
		Data:      data,
	})
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to estimate gas")
	}

	signedTx, err := signDynamicFeeTx(dynamicFeeParams{
		chainID:   s.chainID,
		nonce:     nonce,
		gasTipCap: tipCap,
		gasFeeCap: feeCap,
		gas:       gas,
		to:        s.contract,
		data:      data,
	}, key)
	if err != nil {
		return common.Hash{}, err
	}

	if err := s.backend.SendTransaction(ctx, signedTx); err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to broadcast transaction")
	}

	log.Info().
		Str("tx_hash", signedTx.Hash().Hex()).
		Str("from", from.Hex()).
		Str("to", to.Hex()).
		Str("amount", amount.String()).
		Uint64("nonce", nonce).
		Msg("Token transfer broadcasted")

	return signedTx.Hash(), nil
}

// Probe checks that the backend is reachable and serves the configured chain.
func (s *Service) Probe(ctx context.Context) error {
	chainID, err := s.backend.ChainID(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get chain ID")
	}

	if chainID.Cmp(s.chainID) != 0 {
		return errors.Wrapf(ErrChainIDMismatch, "expected %s, got %s", s.chainID, chainID)
	}

	return nil
}

func (s *Service) Close() {
	if closer, ok := s.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}
