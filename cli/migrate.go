package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

// Migrate creates missing tables in the primary database and the post store.
type Migrate struct{}

func (m Migrate) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Creates missing database tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.Exec(cmd.Context())
		},
	}
}

func (m Migrate) Exec(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
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
	utils.Sugar.Infof("primary database migrated (%s)", cfg.DBDriver)

	if cfg.PostStoreURL == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	pg, err := store.NewPgxPostStore(ctx, cfg.PostStoreURL)
	if err != nil {
		return err
	}
	defer pg.Close()
	if err := pg.EnsureSchema(ctx); err != nil {
		return err
	}
	utils.Sugar.Info("post store schema ensured")
	return nil
}
