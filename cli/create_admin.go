package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/phoenixwrites/phoenix/auth"
	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

// CreateAdminRequest contains the inputs of "phoenix create-admin".
type CreateAdminRequest struct {
	Email    string
	Password string
	Name     string
}

// CreateAdmin registers an account that may sign in to the admin panel.
type CreateAdmin struct{}

func (c CreateAdmin) Command() *cobra.Command {
	request := &CreateAdminRequest{}
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Creates an admin account.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := boot()
			if err != nil {
				return err
			}
			db, err := config.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			if err := config.Migrate(db, primaryModels()...); err != nil {
				return err
			}
			svc := auth.NewService(store.NewGormUserStore(db), cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, nil, utils.Logger)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return c.Exec(ctx, svc, request)
		},
	}
	cmd.Flags().StringVar(&request.Email, "email", "", "Sign-in email (required)")
	cmd.Flags().StringVar(&request.Password, "password", "", "Sign-in password, at least 8 characters (required)")
	cmd.Flags().StringVar(&request.Name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c CreateAdmin) Exec(ctx context.Context, svc *auth.Service, request *CreateAdminRequest) error {
	if request.Email == "" || request.Password == "" {
		return errors.New("email and password are required")
	}
	u, err := svc.CreateAdmin(ctx, request.Email, request.Password, request.Name)
	if err != nil {
		return err
	}
	utils.Sugar.Infof("admin %s created (id=%d)", u.Email, u.ID)
	return nil
}
