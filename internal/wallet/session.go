package wallet

import (
	"crypto/ecdsa"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"github/chapool/mht-transfers/internal/config"
)

// Session holds the connection state of the single wallet the app operates with.
type Session struct {
	mu     sync.RWMutex
	loader KeyLoader
	key    *ecdsa.PrivateKey
}

func NewSession(loader KeyLoader) *Session {
	return &Session{loader: loader}
}

// NewSessionFromConfig creates a session and connects right away when AutoConnect is set
// and a key source is configured.
func NewSessionFromConfig(cfg config.Wallet) (*Session, error) {
	s := NewSession(LoaderFromConfig(cfg))

	if cfg.AutoConnect && s.loader != nil {
		if err := s.Connect(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Connect loads the configured key. Connecting an already connected session reloads the key.
func (s *Session) Connect() error {
	if s.loader == nil {
		return ErrNoKeyConfigured
	}

	key, err := s.loader()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.key = key
	s.mu.Unlock()

	log.Info().Str("address", crypto.PubkeyToAddress(key.PublicKey).Hex()).Msg("Wallet connected")

	return nil
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		log.Info().Str("address", crypto.PubkeyToAddress(s.key.PublicKey).Hex()).Msg("Wallet disconnected")
	}
	s.key = nil
}

func (s *Session) Account() Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return Account{}
	}

	return Account{
		Address:     crypto.PubkeyToAddress(s.key.PublicKey),
		IsConnected: true,
	}
}

// PrivateKey returns the key of the connected wallet or ErrNotConnected.
func (s *Session) PrivateKey() (*ecdsa.PrivateKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.key == nil {
		return nil, ErrNotConnected
	}

	return s.key, nil
}

// CanConnect reports whether a key source is configured.
func (s *Session) CanConnect() bool {
	return s.loader != nil
}
