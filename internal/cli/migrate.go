package cli

import (
	"github.com/spf13/cobra"

	"github.com/infohub/infohub-api/internal/app"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations (postgres) or indexes (mongo)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Migrate(cmd.Context(), e.cfg, e.log); err != nil {
				return err
			}
			cmd.Printf("%s store is up to date\n", e.cfg.StoreDriver)
			return nil
		},
	}
}
