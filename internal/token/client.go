package token

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RPCClient wraps ethclient with multiple endpoints and failover.
// A call moves on to the next endpoint only if the current one could not be reached;
// errors returned by a node (reverts, nonce too low, ...) are handed back as is.
type RPCClient struct {
	urls    []string
	clients []*ethclient.Client
	timeout time.Duration
	mu      sync.Mutex
	current int
}

func NewRPCClient(urls []string, timeout time.Duration) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, 0, len(urls))
	connected := 0
	for _, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			clients = append(clients, nil)
			continue
		}
		clients = append(clients, client)
		connected++
	}

	if connected == 0 {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    urls,
		clients: clients,
		timeout: timeout,
	}, nil
}

func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}

func (c *RPCClient) ChainID(ctx context.Context) (*big.Int, error) {
	var chainID *big.Int
	err := c.do(ctx, func(ctx context.Context, client *ethclient.Client) error {
		var err error
		chainID, err = client.ChainID(ctx)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return chainID, nil
}

func (c *RPCClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	var out []byte
	err := c.do(ctx, func(ctx context.Context, client *ethclient.Client) error {
		var err error
		out, err = client.CallContract(ctx, msg, blockNumber)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to call contract")
	}

	return out, nil
}

func (c *RPCClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	var nonce uint64
	err := c.do(ctx, func(ctx context.Context, client *ethclient.Client) error {
		var err error
		nonce, err = client.PendingNonceAt(ctx, account)
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

// SuggestGasTipCap suggests a priority fee (EIP-1559).
func (c *RPCClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	var tipCap *big.Int
	err := c.do(ctx, func(ctx context.Context, client *ethclient.Client) error {
		var err error
		tipCap, err = client.SuggestGasTipCap(ctx)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas tip cap")
	}

	return tipCap, nil
}

// HeaderByNumber returns the header of the given block, nil selects the latest block.
func (c *RPCClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	var header *types.Header
	err := c.do(ctx, func(ctx context.Context, client *ethclient.Client) error {
		var err error
		header, err = client.HeaderByNumber(ctx, number)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get block header")
	}

	return header, nil
}

func (c *RPCClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	var gas uint64
	err := c.do(ctx, func(ctx context.Context, client *ethclient.Client) error {
		var err error
		gas, err = client.EstimateGas(ctx, msg)
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to estimate gas")
	}

	return gas, nil
}

// SendTransaction broadcasts a signed transaction. Rebroadcasting the same signed
// transaction to another endpoint after a transport failure yields the same hash, so a
// node that already holds it counts as a successful broadcast.
func (c *RPCClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	err := c.do(ctx, func(ctx context.Context, client *ethclient.Client) error {
		err := client.SendTransaction(ctx, tx)
		if err != nil && alreadyBroadcast(ctx, client, tx, err) {
			log.Info().Str("tx_hash", tx.Hash().Hex()).Err(err).Msg("Transaction already known to node")
			return nil
		}
		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// alreadyBroadcast reports whether the node rejected tx only because it has seen it.
// A nonce conflict counts only if the node knows tx by its hash.
func alreadyBroadcast(ctx context.Context, client *ethclient.Client, tx *types.Transaction, err error) bool {
	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return false
	}

	msg := strings.ToLower(rpcErr.Error())
	switch {
	case strings.Contains(msg, "already known"):
		return true
	case strings.Contains(msg, "nonce too low"):
		var raw json.RawMessage
		if err := client.Client().CallContext(ctx, &raw, "eth_getTransactionByHash", tx.Hash()); err != nil {
			return false
		}
		return len(raw) > 0 && string(raw) != "null"
	default:
		return false
	}
}

func (c *RPCClient) do(ctx context.Context, fn func(ctx context.Context, client *ethclient.Client) error) error {
	c.mu.Lock()
	start := c.current
	c.mu.Unlock()

	var lastErr error
	for i := 0; i < len(c.urls); i++ {
		idx := (start + i) % len(c.urls)

		client, err := c.clientAt(idx)
		if err != nil {
			lastErr = err
			continue
		}

		err = c.withTimeout(ctx, func(callCtx context.Context) error {
			return fn(callCtx, client)
		})
		if err == nil {
			c.setCurrent(idx)
			return nil
		}

		if !isTransportError(ctx, err) {
			return err
		}

		log.Warn().
			Str("url", c.urls[idx]).
			Err(err).
			Msg("RPC endpoint unreachable, trying next")
		lastErr = err
	}

	return errors.Wrap(lastErr, "all RPC endpoints are unavailable")
}

func (c *RPCClient) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.timeout <= 0 {
		return fn(ctx)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return fn(callCtx)
}

// clientAt returns the client for idx, redialing endpoints that failed at startup.
func (c *RPCClient) clientAt(idx int) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clients[idx] != nil {
		return c.clients[idx], nil
	}

	client, err := ethclient.Dial(c.urls[idx])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", c.urls[idx])
	}
	c.clients[idx] = client

	return client, nil
}

func (c *RPCClient) setCurrent(idx int) {
	c.mu.Lock()
	c.current = idx
	c.mu.Unlock()
}

func isTransportError(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		// caller gave up, no point in asking the next node
		return false
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return false
	}

	return !errors.Is(err, ethereum.NotFound)
}
