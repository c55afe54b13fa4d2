package test

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/router"
	"github/chapool/mht-transfers/internal/config"
)

// TestWalletBalance is the initial token balance of the connected test wallet.
const TestWalletBalance int64 = 1000

// DefaultTestConfig returns the server config with a freshly generated wallet key and an
// RPC endpoint that is never dialed by tests using a FakeToken.
func DefaultTestConfig(t *testing.T) config.Server {
	t.Helper()

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate wallet key: %v", err)
	}

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Wallet.PrivateKey = hex.EncodeToString(crypto.FromECDSA(key))
	cfg.Wallet.KeystoreFile = ""
	cfg.Wallet.AutoConnect = true
	cfg.Token.ContractAddress = TestTokenContract
	cfg.Chain.RPCURLs = []string{"http://127.0.0.1:8545"}

	return cfg
}

// WithTestServer executes closure with a fully wired server backed by a FakeToken.
// The connected wallet holds TestWalletBalance tokens.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, DefaultTestConfig(t), closure)
}

func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	token := NewFakeToken(config.Chain.ID)
	WithTestServerWithToken(t, config, token, func(s *api.Server) {
		t.Helper()

		account := s.Wallet.Account()
		if account.IsConnected {
			token.Sender = account.Address
			token.SetBalance(account.Address, TestWalletBalance)
		}

		closure(s)
	})
}

func WithTestServerWithToken(t *testing.T, config config.Server, token api.TokenService, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, config, token)

	closure(s)

	// echo is shutdown directly after the test, no need to wait for connections
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if errs := s.Shutdown(ctx); len(errs) > 0 {
		t.Logf("Failed to shutdown test server: %v", errs)
	}
}

func NewTestServer(t *testing.T, config config.Server, token api.TokenService) *api.Server {
	t.Helper()

	s, err := api.InitNewServerWithToken(config, token, t)
	if err != nil {
		t.Fatalf("Failed to init test server: %v", err)
	}

	if err := router.Init(s); err != nil {
		t.Fatalf("Failed to init router: %v", err)
	}

	return s
}
