package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-idle/internal/config"
	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/repositories/gamestate"
	"github.com/KirkDiggler/rpg-idle/internal/testutils"
)

func saveAndLoad(t *testing.T, repo gamestate.Repository) {
	t.Helper()
	ctx := context.Background()

	state := testutils.NewGameState(testutils.DefaultRules(t), testutils.TestPlayerID)
	_, err := repo.Save(ctx, gamestate.SaveInput{State: state})
	require.NoError(t, err)

	got, err := repo.Get(ctx, gamestate.GetInput{PlayerID: testutils.TestPlayerID})
	require.NoError(t, err)
	assert.Equal(t, state.Ledger.Gold, got.State.Ledger.Gold)
	assert.Len(t, got.State.Quests.Entries, len(state.Quests.Entries))
}

func TestOpenStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.RedisAddr = mr.Addr()

	repo, closeFn, err := openStore(context.Background(), &cfg)
	require.NoError(t, err)
	defer closeFn()

	saveAndLoad(t, repo)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := config.Default()
	cfg.Store = config.StoreSQLite
	cfg.SQLDSN = filepath.Join(t.TempDir(), "game.db")

	repo, closeFn, err := openStore(context.Background(), &cfg)
	require.NoError(t, err)
	defer closeFn()

	saveAndLoad(t, repo)
}

func TestOpenStore_UnknownStore(t *testing.T) {
	cfg := config.Default()
	cfg.Store = "etcd"

	_, _, err := openStore(context.Background(), &cfg)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadRules_Default(t *testing.T) {
	rules, err := loadRules("")
	require.NoError(t, err)
	assert.NotNil(t, rules.Calculator)
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := config.Default()
	cfg.Store = config.StoreMemory

	repo, closeFn, err := openStore(context.Background(), &cfg)
	require.NoError(t, err)
	defer closeFn()

	saveAndLoad(t, repo)
}
