package api

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/dropbox/godropbox/time2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/chapool/mht-transfers/internal/chains"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/i18n"
	"github/chapool/mht-transfers/internal/metrics"
	"github/chapool/mht-transfers/internal/transfer"
	"github/chapool/mht-transfers/internal/util"
	"github/chapool/mht-transfers/internal/wallet"
)

// TokenService reads from and writes to the MHT token contract.
type TokenService interface {
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Transfer(ctx context.Context, recipient string, amount *big.Int) (common.Hash, error)
	Probe(ctx context.Context) error
	Contract() common.Address
	ChainID() int64
	Close()
}

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Wallet *echo.Group
	APIV1Token  *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	Clock    time2.Clock
	I18n     *i18n.Service
	Metrics  *metrics.Service
	Chain    chains.Chain
	Wallet   *wallet.Session
	Token    TokenService
	Toasts   *transfer.ToastBox
	Transfer *transfer.Orchestrator
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	clock time2.Clock,
	i18n *i18n.Service,
	metrics *metrics.Service,
	chain chains.Chain,
	session *wallet.Session,
	token TokenService,
	toasts *transfer.ToastBox,
	orchestrator *transfer.Orchestrator,
) *Server {
	return &Server{
		Config:   cfg,
		Clock:    clock,
		I18n:     i18n,
		Metrics:  metrics,
		Chain:    chain,
		Wallet:   session,
		Token:    token,
		Toasts:   toasts,
		Transfer: orchestrator,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Token != nil {
		log.Debug().Msg("Closing RPC connections")
		s.Token.Close()
	}

	return errs
}
