package common_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/test"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		body := res.Body.String()
		assert.Contains(t, body, "Ready: OK.")
		assert.Contains(t, body, "Chain 421614: OK.")
		assert.Contains(t, body, "Wallet: Connected "+s.Wallet.Account().Address.Hex())
		assert.Contains(t, body, "Probes succeeded.")
	})
}

func TestGetHealthyProbeFailed(t *testing.T) {
	cfg := test.DefaultTestConfig(t)
	token := test.NewFakeToken(cfg.Chain.ID)
	token.ProbeErr = errors.New("connection refused")

	test.WithTestServerWithToken(t, cfg, token, func(s *api.Server) {
		s.Wallet.Disconnect()

		res := test.PerformRequest(t, s, "GET", "/-/healthy", nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)

		body := res.Body.String()
		assert.Contains(t, body, "Probe failed: connection refused.")
		assert.Contains(t, body, "Wallet: Not connected.")
		assert.Contains(t, body, "Probes failed: 1.")
	})
}
