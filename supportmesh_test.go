package supportmesh

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/supportmesh/config"
	"github.com/hupe1980/supportmesh/core"
)

func TestNew_Defaults(t *testing.T) {
	mesh := New()

	state, err := mesh.Process(context.Background(), "t-1", "I can't log in to the system")
	require.NoError(t, err)
	assert.Equal(t, core.AgentTechnical, state.AgentUsed)
}

func TestNewFromConfig_MemoryBackend(t *testing.T) {
	mesh, err := NewFromConfig(context.Background(), config.Default())
	require.NoError(t, err)

	state, err := mesh.Process(context.Background(), "t-1", "What are your opening hours?")
	require.NoError(t, err)
	assert.Equal(t, core.AgentGeneral, state.AgentUsed)
}

func TestNewFromConfig_SQLiteBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Session.Backend = "sqlite"
	cfg.Session.SQLite.Path = filepath.Join(t.TempDir(), "threads.db")

	mesh, err := NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = mesh.Process(ctx, "t-1", "I want a refund")
	require.NoError(t, err)

	state, err := mesh.Process(ctx, "t-1", "What are your opening hours?")
	require.NoError(t, err)
	assert.Len(t, state.History, 4)
}

func TestNewFromConfig_RedisBackendWithCache(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Session.Backend = "redis"
	cfg.Session.Redis.Addr = mr.Addr()
	cfg.Classifier.Cache.Enabled = true
	cfg.Classifier.Cache.Addr = mr.Addr()

	mesh, err := NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)

	state, err := mesh.Process(context.Background(), "t-1", "I was charged twice on my card")
	require.NoError(t, err)
	assert.Equal(t, core.AgentBilling, state.AgentUsed)
}

func TestNewFromConfig_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Session.Backend = "etcd"

	_, err := NewFromConfig(context.Background(), cfg)
	require.Error(t, err)
}
