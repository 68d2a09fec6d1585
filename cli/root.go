// Package cli holds the phoenix command line: the web server and its maintenance commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/models"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[phoenix] fatal error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand assembles every sub-command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "phoenix",
		Short:         "Marketing site and blog for a freelance writer.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		Serve{}.Command(),
		Migrate{}.Command(),
		Seed{}.Command(),
		CreateAdmin{}.Command(),
	)
	return root
}

// primaryModels are the tables kept in the primary database.
func primaryModels() []interface{} {
	return []interface{}{&models.Post{}, &models.AdminUser{}, &models.Inquiry{}}
}

// boot loads configuration and starts the application logger.
func boot() (config.AppConfig, error) {
	cfg := config.Load()
	if err := utils.InitLogger(cfg); err != nil {
		return cfg, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

// openPostStore picks the catalog backend: Postgres when PostStoreURL is set,
// the primary database otherwise. The returned func releases it.
func openPostStore(ctx context.Context, cfg config.AppConfig, db *gorm.DB) (store.PostStore, func(), error) {
	if cfg.PostStoreURL == "" {
		return store.NewGormPostStore(db), func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	pg, err := store.NewPgxPostStore(ctx, cfg.PostStoreURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect post store: %w", err)
	}
	return pg, pg.Close, nil
}
