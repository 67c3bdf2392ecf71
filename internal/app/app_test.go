package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ganot/tasktrack/internal/config"
	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func testConfig(dsn string) config.Config {
	cfg := config.Default()
	cfg.DB.DSN = dsn
	return cfg
}

func TestNew_SQLiteFile(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "tasks.db")

	a, err := New(ctx, testConfig(dsn), Options{})
	require.NoError(t, err)

	created, err := a.Items.Create(ctx, item.CreateRequest{Description: "persisted"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.NoError(t, a.Close())

	// Reopening keeps both the items and the id sequence.
	a, err = New(ctx, testConfig(dsn), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	got, err := a.Items.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "persisted", got.Description)

	next, err := a.Items.Create(ctx, item.CreateRequest{Description: "second"})
	require.NoError(t, err)
	require.Equal(t, int64(2), next.ID)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(":memory:")
	cfg.DB.Driver = "mongo"

	_, err := New(context.Background(), cfg, Options{})
	require.ErrorContains(t, err, "unsupported db driver")
}

func TestNew_MetricsExposed(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(":memory:"), Options{Registry: prometheus.NewRegistry()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	server := httptest.NewServer(a.Handler)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/list")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), `tasktrack_repository_operations_total{operation="list",result="ok"} 1`), string(body))
	require.True(t, strings.Contains(string(body), `tasktrack_sequence_last_value{sequence="item_id"}`), string(body))
}

func TestEnsureDBDir(t *testing.T) {
	require.NoError(t, ensureDBDir(":memory:"))
	require.NoError(t, ensureDBDir("file:test?mode=memory"))
	require.NoError(t, ensureDBDir("local.db"))

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, ensureDBDir(filepath.Join(dir, "tasks.db")))
	require.DirExists(t, dir)
}
