// Package cli implements the infohub command line: the API server, schema
// migrations and user administration.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/infohub/infohub-api/internal/infrastructure/config"
	"github.com/infohub/infohub-api/pkg/logger"
)

// env is the state shared by every subcommand once the root has run.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd builds the infohub command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:           "infohub",
		Short:         "Contacts, articles and comments API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			dotenvErr := godotenv.Load()

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.Init(logger.Options{
				Level:  cfg.LogLevel,
				Pretty: !cfg.IsProduction(),
				Output: cmd.ErrOrStderr(),
				File:   cfg.LogFile,
			})
			if dotenvErr != nil {
				e.log.Debug().Err(dotenvErr).Msg("no .env file loaded")
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return logger.Close()
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(newServeCmd(e))
	cmd.AddCommand(newMigrateCmd(e))
	cmd.AddCommand(newUsersCmd(e))
	return cmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
