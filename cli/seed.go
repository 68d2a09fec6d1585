package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/phoenixwrites/phoenix/admin"
	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

// Seed fills an empty post store with the sample posts.
type Seed struct{}

func (s Seed) Command() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inserts the sample posts into the post store.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := boot()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			db, err := config.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			if err := config.Migrate(db, primaryModels()...); err != nil {
				return err
			}
			posts, closePosts, err := openPostStore(ctx, cfg, db)
			if err != nil {
				return err
			}
			defer closePosts()

			n, err := s.Exec(ctx, posts, force)
			if err != nil {
				return err
			}
			utils.Sugar.Infof("seeded %d posts", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Insert even when the store already has posts.")
	return cmd
}

// Exec inserts the samples under fresh ids and reports how many were written.
func (s Seed) Exec(ctx context.Context, posts store.PostStore, force bool) (int, error) {
	existing, err := posts.ListPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("list posts: %w", err)
	}
	if len(existing) > 0 && !force {
		return 0, nil
	}
	n := 0
	for _, p := range admin.SamplePosts() {
		p.ID = uuid.NewString()
		if err := posts.CreatePost(ctx, &p); err != nil {
			return n, fmt.Errorf("create %q: %w", p.Title, err)
		}
		n++
	}
	return n, nil
}
