package balance

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [address]",
		Short: "Prints the token balance",
		Long: `Prints the token balance of address in base units

Defaults to the address of the configured wallet.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runBalance(cmd.OutOrStdout(), args); err != nil {
				log.Fatal().Err(err).Msg("Failed to read balance")
			}
		},
	}
}

func runBalance(out io.Writer, args []string) error {
	return command.WithServer(context.Background(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
		return printBalance(ctx, out, s, args)
	})
}

func printBalance(ctx context.Context, out io.Writer, s *api.Server, args []string) error {
	owner := s.Wallet.Account().Address
	if len(args) > 0 {
		if !common.IsHexAddress(args[0]) {
			return errors.Errorf("%q is not an address", args[0])
		}
		owner = common.HexToAddress(args[0])
	} else if !s.Wallet.Account().IsConnected {
		return errors.New("no address given and no wallet configured")
	}

	balance, err := s.Token.BalanceOf(ctx, owner)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", balance, s.Config.Token.Symbol)

	return nil
}
