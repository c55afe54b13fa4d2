package wallet_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/httperrors"
	"github/chapool/mht-transfers/internal/test"
	"github/chapool/mht-transfers/internal/types"
)

func TestGetAccountConnected(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/account", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.AccountResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.True(t, swag.BoolValue(response.IsConnected))
		assert.Equal(t, s.Wallet.Account().Address.Hex(), response.Address)
	})
}

func TestDisconnectAndConnect(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		address := s.Wallet.Account().Address.Hex()

		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/disconnect", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.AccountResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.False(t, swag.BoolValue(response.IsConnected))
		assert.Empty(t, response.Address)
		assert.False(t, s.Wallet.Account().IsConnected)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/connect", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		response = types.AccountResponse{}
		test.ParseResponseAndValidate(t, res, &response)
		assert.True(t, swag.BoolValue(response.IsConnected))
		assert.Equal(t, address, response.Address)
	})
}

func TestConnectWithoutKey(t *testing.T) {
	cfg := test.DefaultTestConfig(t)
	cfg.Wallet.PrivateKey = ""

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet/account", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.AccountResponse
		test.ParseResponseAndValidate(t, res, &response)
		assert.False(t, swag.BoolValue(response.IsConnected))

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/connect", nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrConflictNoKey)
	})
}
