package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoenixwrites/phoenix/auth"
	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/store"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := NewRootCommand()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate", "seed", "create-admin"}, names)

	cmd, _, err := root.Find([]string{"create-admin"})
	require.NoError(t, err)
	assert.NotNil(t, cmd.Flags().Lookup("email"))
	assert.NotNil(t, cmd.Flags().Lookup("password"))
}

func TestSeed_FillsEmptyStoreOnce(t *testing.T) {
	db, err := config.OpenDatabase(config.AppConfig{DBDriver: "sqlite", SQLitePath: "file::memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db, primaryModels()...))
	posts := store.NewGormPostStore(db)
	ctx := context.Background()

	n, err := Seed{}.Exec(ctx, posts, false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Seed{}.Exec(ctx, posts, false)
	require.NoError(t, err)
	assert.Zero(t, n)

	list, err := posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].ID, 36)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))

	n, err = Seed{}.Exec(ctx, posts, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCreateAdmin_Exec(t *testing.T) {
	db, err := config.OpenDatabase(config.AppConfig{DBDriver: "sqlite", SQLitePath: "file::memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db, primaryModels()...))
	svc := auth.NewService(store.NewGormUserStore(db), "secret", time.Hour, nil, nil)
	ctx := context.Background()

	require.NoError(t, CreateAdmin{}.Exec(ctx, svc, &CreateAdminRequest{Email: "me@example.com", Password: "long-enough", Name: "Me"}))
	_, err = svc.SignIn(ctx, "me@example.com", "long-enough")
	assert.NoError(t, err)

	assert.Error(t, CreateAdmin{}.Exec(ctx, svc, &CreateAdminRequest{Email: "me@example.com"}))
	assert.Error(t, CreateAdmin{}.Exec(ctx, svc, &CreateAdminRequest{Email: "x@example.com", Password: "short"}))
}
