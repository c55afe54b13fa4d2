package probe

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/handlers/common"
	"github/chapool/mht-transfers/internal/api/router"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/util"
	"github/chapool/mht-transfers/internal/util/command"
)

type LivenessFlags struct {
	Verbose bool
}

func newLiveness() *cobra.Command {
	var flags LivenessFlags

	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Runs liveness probes

This command triggers the same liveness probes as in
/-/healthy and prints the results to stdout. Fails with
non zero exitcode on encountered errors.`,
		Run: func(_ *cobra.Command, _ []string /* args */) {
			livenessCmdFunc(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Verbose, verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func livenessCmdFunc(flags LivenessFlags) {
	err := command.WithServer(context.Background(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
		log := util.LogFromContext(ctx)

		// the http server is part of the ready state, even though it is never started here
		if err := router.Init(s); err != nil {
			return err
		}

		livenessCtx, cancel := context.WithTimeout(ctx, s.Config.Management.LivenessTimeout)
		defer cancel()

		str, errs := common.ProbeLiveness(livenessCtx, s)
		if flags.Verbose {
			fmt.Println(str)
		}

		if len(errs) > 0 {
			log.Fatal().Errs("errs", errs).Msg("Unhealthy.")
		}

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to run liveness probes")
	}
}
