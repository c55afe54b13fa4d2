package wallet_test

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/wallet"
)

func TestSessionConnectDisconnect(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	s := wallet.NewSession(wallet.HexKeyLoader("0x" + hex.EncodeToString(crypto.FromECDSA(key))))
	assert.False(t, s.Account().IsConnected)

	_, err = s.PrivateKey()
	require.ErrorIs(t, err, wallet.ErrNotConnected)

	require.NoError(t, s.Connect())
	account := s.Account()
	assert.True(t, account.IsConnected)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), account.Address)

	got, err := s.PrivateKey()
	require.NoError(t, err)
	assert.True(t, key.Equal(got))

	s.Disconnect()
	assert.Equal(t, wallet.Account{}, s.Account())
}

func TestSessionWithoutKey(t *testing.T) {
	s, err := wallet.NewSessionFromConfig(config.Wallet{AutoConnect: true})
	require.NoError(t, err)

	assert.False(t, s.CanConnect())
	require.ErrorIs(t, s.Connect(), wallet.ErrNoKeyConfigured)
	assert.False(t, s.Account().IsConnected)
}

func TestSessionFromConfigInvalidKey(t *testing.T) {
	_, err := wallet.NewSessionFromConfig(config.Wallet{PrivateKey: "zz", AutoConnect: true})
	require.Error(t, err)

	s, err := wallet.NewSessionFromConfig(config.Wallet{PrivateKey: "zz", AutoConnect: false})
	require.NoError(t, err)
	assert.False(t, s.Account().IsConnected)
}

func TestKeystoreLoader(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	id, err := uuid.NewRandom()
	require.NoError(t, err)

	keyJSON, err := keystore.EncryptKey(&keystore.Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}, "secret", keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, keyJSON, 0o600))

	s, err := wallet.NewSessionFromConfig(config.Wallet{KeystoreFile: path, KeystorePassphrase: "secret", AutoConnect: true})
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), s.Account().Address)

	_, err = wallet.KeystoreLoader(path, "wrong")()
	require.Error(t, err)
}
