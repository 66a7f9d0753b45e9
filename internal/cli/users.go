package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/infohub/infohub-api/internal/app"
	"github.com/infohub/infohub-api/internal/core/ports"
)

func newUsersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage API users",
	}
	cmd.AddCommand(newUsersCreateCmd(e))
	return cmd
}

// newUsersCreateCmd bootstraps accounts directly in the store, e.g. the first admin:
//
//	infohub users create --username root --password S3cretPass --email root@example.com --role admin
func newUsersCreateCmd(e *env) *cobra.Command {
	var in ports.RegisterInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer a.Close(context.WithoutCancel(cmd.Context()))

			user, err := a.Auth.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			cmd.Printf("created %s user %s (%s)\n", user.Role, user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "login name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password")
	cmd.Flags().StringVar(&in.Email, "email", "", "email address")
	cmd.Flags().StringVar(&in.Role, "role", "user", "admin or user")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
