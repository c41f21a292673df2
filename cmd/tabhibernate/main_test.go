package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/alarm"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/browser"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/config"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/repository"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/scheduler"
	"github.com/sivaratrisrinivas/tabHibernate/server"
)

// adapters wired in run
var (
	_ scheduler.TabHost     = (*browser.Client)(nil)
	_ scheduler.Messenger   = (*browser.Client)(nil)
	_ scheduler.Storage     = (*repository.KVRepository)(nil)
	_ scheduler.Alarms      = (*alarm.Service)(nil)
	_ browser.EventHandler  = (*scheduler.Scheduler)(nil)
	_ server.Engine         = (*scheduler.Scheduler)(nil)
	_ server.ConfigProvider = (*config.Config)(nil)
	_ changeHandler         = (*scheduler.Scheduler)(nil)
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: tmpFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_BrowserUnreachable(t *testing.T) {
	t.Setenv("TEST_DB_DIR", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "testdata/config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to browser")
}

func TestRun_BadDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dsn := "file:" + filepath.Join(t.TempDir(), "missing", "dir", "test.db") + "?mode=ro"
	err := run(ctx, Opts{DSN: dsn})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(cfg, Opts{})
	assert.Equal(t, config.Default(), cfg)

	applyOverrides(cfg, Opts{Listen: ":9000", CDPURL: "ws://host:9222/devtools/browser/x", DSN: "file:x.db"})
	assert.Equal(t, ":9000", cfg.Server.Listen)
	assert.Equal(t, "ws://host:9222/devtools/browser/x", cfg.Browser.CDPURL)
	assert.Equal(t, "file:x.db", cfg.Database.DSN)
}

type changeRecorder struct {
	mu    sync.Mutex
	areas []string
	got   []map[string]scheduler.StorageChange
}

func (r *changeRecorder) HandleStorageChange(_ context.Context, changes map[string]scheduler.StorageChange, area string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.areas = append(r.areas, area)
	r.got = append(r.got, changes)
}

func TestStorageListener(t *testing.T) {
	rec := &changeRecorder{}
	listener := storageListener(context.Background(), rec)

	listener(map[string]repository.Change{
		"settings": {OldValue: json.RawMessage(`{"enabled":true}`), NewValue: json.RawMessage(`{"enabled":false}`)},
		"tab_1":    {OldValue: json.RawMessage(`{"id":"1"}`)},
	}, repository.AreaLocal)

	require.Len(t, rec.got, 1)
	assert.Equal(t, []string{"local"}, rec.areas)
	assert.JSONEq(t, `{"enabled":false}`, string(rec.got[0]["settings"].NewValue))
	assert.JSONEq(t, `{"enabled":true}`, string(rec.got[0]["settings"].OldValue))
	assert.Nil(t, rec.got[0]["tab_1"].NewValue)
}

func TestStorageListener_WithRepository(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: "file:" + filepath.Join(t.TempDir(), "kv.db") + "?mode=rwc&_txlock=immediate"})
	require.NoError(t, err)
	defer repos.Close()

	rec := &changeRecorder{}
	repos.KV.Watch(storageListener(ctx, rec))

	require.NoError(t, repos.KV.Set(ctx, map[string]any{"settings": map[string]bool{"enabled": true}}))
	require.NoError(t, repos.KV.Remove(ctx, "settings"))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.got, 2)
	assert.JSONEq(t, `{"enabled":true}`, string(rec.got[0]["settings"].NewValue))
	assert.Nil(t, rec.got[1]["settings"].NewValue)
}

func TestSetupLog(t *testing.T) {
	setupLog(true, true)
	setupLog(false, false, "secret")
}
