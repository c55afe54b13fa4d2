package api

import (
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/mht-transfers/internal/chains"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/i18n"
	"github/chapool/mht-transfers/internal/metrics"
	"github/chapool/mht-transfers/internal/token"
	"github/chapool/mht-transfers/internal/transfer"
	"github/chapool/mht-transfers/internal/wallet"
)

// PROVIDERS - define here only providers that for various reasons (e.g. cyclic dependency) can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs to prevent the requirements for defining providers for sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

func NewClock(t ...*testing.T) time2.Clock {
	var clock time2.Clock

	useMock := len(t) > 0 && t[0] != nil

	if useMock {
		clock = time2.NewMockClock(time.Now())
	} else {
		clock = time2.DefaultClock
	}

	return clock
}

func NoTest() []*testing.T {
	return nil
}

func NewI18N(config config.Server) (*i18n.Service, error) {
	return i18n.New(config.I18n)
}

// NewChain resolves the configured chain from the presets. Configured RPC URLs replace the preset ones.
func NewChain(config config.Server) (chains.Chain, error) {
	var (
		registry *chains.Registry
		err      error
	)

	if config.Chain.PresetsFile != "" {
		registry, err = chains.LoadFile(config.Chain.PresetsFile)
	} else {
		registry, err = chains.Default()
	}
	if err != nil {
		return chains.Chain{}, err
	}

	chain, err := registry.ByID(config.Chain.ID)
	if err != nil {
		return chains.Chain{}, err
	}

	if len(config.Chain.RPCURLs) > 0 {
		chain.RPCURLs = config.Chain.RPCURLs
	}

	if len(chain.RPCURLs) == 0 {
		return chains.Chain{}, errors.Errorf("no RPC URLs configured for chain %d", chain.ID)
	}

	return chain, nil
}

func NewWalletSession(config config.Server) (*wallet.Session, error) {
	session, err := wallet.NewSessionFromConfig(config.Wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect wallet")
	}

	if !session.CanConnect() {
		log.Warn().Msg("No wallet key configured, transfers are unavailable")
	}

	return session, nil
}

func NewTokenClient(config config.Server, chain chains.Chain) (*token.RPCClient, error) {
	return token.NewRPCClient(chain.RPCURLs, config.Chain.RPCTimeout)
}

func NewTokenService(config config.Server, chain chains.Chain, client *token.RPCClient, session *wallet.Session) (*token.Service, error) {
	return token.NewService(client, session, chain.ID, config.Token.ContractAddress)
}

func NewToasts(config config.Server, clock time2.Clock) *transfer.ToastBox {
	return transfer.NewToastBox(clock, config.Transfer.ToastTTL)
}

func NewOrchestrator(
	session *wallet.Session,
	token TokenService,
	toasts *transfer.ToastBox,
	i18n *i18n.Service,
	metrics *metrics.Service,
) *transfer.Orchestrator {
	return transfer.NewOrchestrator(
		session,
		token,
		token,
		transfer.Notifiers{toasts, transfer.LogNotifier{}},
		transfer.WithMessages(i18n),
		transfer.WithRecorder(metrics),
	)
}
