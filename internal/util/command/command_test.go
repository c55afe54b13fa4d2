package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/test"
	"github/chapool/mht-transfers/internal/util/command"
)

func TestWithServer(t *testing.T) {
	cfg := test.DefaultTestConfig(t)
	cfg.Logger.PrettyPrintConsole = false

	var testError = errors.New("test error")

	resultErr := command.WithServer(t.Context(), cfg, func(_ context.Context, s *api.Server) error {
		assert.True(t, s.Wallet.Account().IsConnected)
		assert.Equal(t, common.HexToAddress(test.TestTokenContract), s.Token.Contract())
		assert.Equal(t, int64(421614), s.Token.ChainID())

		return testError
	})

	assert.Equal(t, testError, resultErr)
}

func TestWithServerInvalidConfig(t *testing.T) {
	cfg := test.DefaultTestConfig(t)
	cfg.Token.ContractAddress = "not-an-address"

	called := false
	err := command.WithServer(t.Context(), cfg, func(context.Context, *api.Server) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
}

func TestNewSubcommandGroup(t *testing.T) {
	cmd := command.NewSubcommandGroup("group")
	cmd.SetOut(&discard{})
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
