package probe

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/util"
	"github/chapool/mht-transfers/internal/util/command"
)

type ReadinessFlags struct {
	Verbose bool
}

func newReadiness() *cobra.Command {
	var flags ReadinessFlags

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `Runs readiness probes

This command triggers the same readiness probes as in
/-/ready (apart from the actual server.ready probe) and
prints the results to stdout. Fails with non zero exitcode
on encountered errors.

A typical usecase of this command is to ensure the RPC
endpoints serve the configured chain before starting the
app server.`,
		Run: func(_ *cobra.Command, _ []string /* args */) {
			readinessCmdFunc(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func readinessCmdFunc(flags ReadinessFlags) {
	err := command.WithServer(context.Background(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
		log := util.LogFromContext(ctx)

		if errs := RunReadiness(ctx, s, flags); len(errs) > 0 {
			log.Fatal().Errs("errs", errs).Msg("Not ready.")
		}

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run readiness probes")
	}
}

func RunReadiness(ctx context.Context, s *api.Server, flags ReadinessFlags) []error {
	log := util.LogFromContext(ctx)

	readinessCtx, cancel := context.WithTimeout(ctx, s.Config.Management.ReadinessTimeout)
	defer cancel()

	var errs []error
	str := "Ready."
	if err := s.Token.Probe(readinessCtx); err != nil {
		errs = append(errs, err)
		str = "Not ready."
	}

	if flags.Verbose {
		log.Info().Int64("chain_id", s.Token.ChainID()).Msg(str)
	}

	return errs
}
