package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/transfer"
	"github/chapool/mht-transfers/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <recipient> <amount>",
		Short: "Transfers tokens from the configured wallet",
		Long: `Transfers amount tokens (in base units) from the configured
wallet to recipient and prints the new balance.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runTransfer(cmd.OutOrStdout(), args[0], args[1]); err != nil {
				log.Fatal().Err(err).Msg("Failed to transfer tokens")
			}
		},
	}
}

func runTransfer(out io.Writer, recipient string, amount string) error {
	return command.WithServer(context.Background(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
		return submitTransfer(ctx, out, s, recipient, amount)
	})
}

func submitTransfer(ctx context.Context, out io.Writer, s *api.Server, recipient string, amount string) error {
	if !s.Wallet.Account().IsConnected {
		return errors.New("no wallet configured")
	}

	form := &transfer.Form{Wallet: recipient, Amount: amount, Texts: s.I18n}

	submitted, err := form.Submit(ctx, s.Transfer.HandleTransfer, s.Transfer.Busy())
	if err != nil {
		return err
	}
	if !submitted {
		return errors.New("amount required")
	}
	if form.Message == "" {
		return errors.New(s.I18n.TransferFailed())
	}

	fmt.Fprintln(out, form.Message)

	if balance, err := s.Transfer.Balance(ctx); err == nil {
		fmt.Fprintf(out, "%s %s\n", balance, s.Config.Token.Symbol)
	}

	return nil
}
