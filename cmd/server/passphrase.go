package server

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github/chapool/mht-transfers/internal/config"
	"golang.org/x/term"
)

// promptPassphrase asks for the keystore passphrase on the terminal if a keystore is
// configured without one.
func promptPassphrase(cfg *config.Wallet) error {
	if cfg.PrivateKey != "" || cfg.KeystoreFile == "" || cfg.KeystorePassphrase != "" {
		return nil
	}

	fd := int(os.Stdin.Fd()) //nolint:gosec
	if !term.IsTerminal(fd) {
		return errors.New("keystore passphrase required but stdin is not a terminal, set WALLET_KEYSTORE_PASSPHRASE")
	}

	fmt.Fprintf(os.Stderr, "Passphrase for %s: ", cfg.KeystoreFile)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return errors.Wrap(err, "failed to read passphrase")
	}

	cfg.KeystorePassphrase = string(passphrase)

	return nil
}
