package wallet

import (
	"crypto/ecdsa"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/chapool/mht-transfers/internal/config"
)

// KeyLoader produces the private key of the wallet to connect.
type KeyLoader func() (*ecdsa.PrivateKey, error)

// HexKeyLoader loads a raw hex encoded secp256k1 private key, with or without 0x prefix.
func HexKeyLoader(hexKey string) KeyLoader {
	return func() (*ecdsa.PrivateKey, error) {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse private key")
		}
		return key, nil
	}
}

// KeystoreLoader decrypts a go-ethereum (web3 secret storage) keystore file.
func KeystoreLoader(path string, passphrase string) KeyLoader {
	return func() (*ecdsa.PrivateKey, error) {
		keyJSON, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read keystore file")
		}

		key, err := keystore.DecryptKey(keyJSON, passphrase)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decrypt keystore file")
		}

		return key.PrivateKey, nil
	}
}

// LoaderFromConfig picks the key source configured for the wallet. A raw private key wins over a keystore.
// Returns nil if neither is configured.
func LoaderFromConfig(cfg config.Wallet) KeyLoader {
	switch {
	case cfg.PrivateKey != "":
		return HexKeyLoader(cfg.PrivateKey)
	case cfg.KeystoreFile != "":
		return KeystoreLoader(cfg.KeystoreFile, cfg.KeystorePassphrase)
	default:
		return nil
	}
}
