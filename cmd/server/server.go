package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/router"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/util/command"
)

type Flags struct {
	Probe bool
}

func New() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Starts the server",
		Long: `Starts the MHT token transfer server

Requires configuration through ENV and a reachable
RPC endpoint of the configured chain.`,
		Run: func(_ *cobra.Command, _ []string /* args */) {
			runServer(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Probe, "probe", "p", false, "Probe the RPC endpoints before starting the server.")

	return cmd
}

func runServer(flags Flags) {
	cfg := config.DefaultServiceConfigFromEnv()
	command.ConfigureLogger(cfg.Logger)

	if err := promptPassphrase(&cfg.Wallet); err != nil {
		log.Fatal().Err(err).Msg("Failed to get keystore passphrase")
	}

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if flags.Probe {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Management.ReadinessTimeout)
		err := s.Token.Probe(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("RPC endpoints are not ready")
		}
	}

	if err := router.Init(s); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize router")
	}

	go func() {
		log.Info().
			Str("address", cfg.Echo.ListenAddress).
			Int64("chain_id", s.Chain.ID).
			Str("contract", s.Token.Contract().Hex()).
			Msg("Starting server")

		if err := s.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info().Msg("Server closed")
			} else {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if errs := s.Shutdown(ctx); len(errs) > 0 {
		log.Fatal().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}

	log.Info().Msg("Server shutdown")
}
