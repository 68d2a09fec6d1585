package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/phoenixwrites/phoenix/auth"
	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/routes"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

// Serve runs the web server with graceful shutdown and restart.
type Serve struct{}

func (s Serve) Command() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Exec(cmd.Context(), port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (defaults to APP_PORT)")
	return cmd
}

func (s Serve) Exec(ctx context.Context, port string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := boot()
	if err != nil {
		return err
	}
	defer func() { _ = utils.Logger.Sync() }()
	if port == "" {
		port = cfg.AppPort
	}

	rc := utils.InitRedis(cfg)
	utils.InitCaptcha(rc)

	db := config.InitDatabase(primaryModels()...)

	posts, closePosts, err := openPostStore(ctx, cfg, db)
	if err != nil {
		return err
	}
	if rc != nil {
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		posts = store.NewCachedPostStore(posts, utils.NewRedisCache(rc, ttl), ttl)
	}

	authService := auth.NewService(
		store.NewGormUserStore(db),
		cfg.JWTSecret,
		time.Duration(cfg.TokenTTLHours)*time.Hour,
		utils.NewTokenBlacklist(rc),
		utils.Logger,
	)

	r := routes.SetupRouter(routes.Deps{
		Config:   cfg,
		DB:       db,
		Posts:    posts,
		Auth:     authService,
		Notifier: utils.NewMailer(cfg),
	})

	srv := utils.GraceServer(":"+port, r)
	srv.OnShutdown(closePosts)
	if rc != nil {
		srv.OnShutdown(func() { _ = rc.Close() })
	}

	utils.Sugar.Infof("Starting server on port %s (graceful)", port)
	return srv.ListenAndServe()
}
