package balance

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/test"
)

func TestPrintBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		var out bytes.Buffer
		require.NoError(t, printBalance(t.Context(), &out, s, nil))
		assert.Equal(t, "1000 MHT\n", out.String())

		token, ok := s.Token.(*test.FakeToken)
		require.True(t, ok)
		other := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
		token.SetBalance(other, 7)

		out.Reset()
		require.NoError(t, printBalance(t.Context(), &out, s, []string{other.Hex()}))
		assert.Equal(t, "7 MHT\n", out.String())
	})
}

func TestPrintBalanceErrors(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		var out bytes.Buffer
		require.Error(t, printBalance(t.Context(), &out, s, []string{"0xAbc"}))

		s.Wallet.Disconnect()
		require.Error(t, printBalance(t.Context(), &out, s, nil))

		assert.Empty(t, out.String())
	})
}
