package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/mht-transfers/cmd/balance"
	"github/chapool/mht-transfers/cmd/env"
	"github/chapool/mht-transfers/cmd/probe"
	"github/chapool/mht-transfers/cmd/server"
	"github/chapool/mht-transfers/cmd/transfer"
	"github/chapool/mht-transfers/internal/config"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

Serves the MHT token transfer page and its JSON API.
Requires configuration through ENV, optionally seeded from --config.`, config.ModuleName),
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if configFile == "" {
			return nil
		}
		return config.SeedEnvFromFile(configFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml) whose values are used for unset ENV variables.")

	// attach the subcommands
	rootCmd.AddCommand(
		balance.New(),
		env.New(),
		probe.New(),
		server.New(),
		transfer.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
