package main

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ServerErrorReleasesResources(t *testing.T) {
	// Hold the port so ListenAndServe fails right away.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	port := ln.Addr().(*net.TCPAddr).Port

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "tasks.db")
	logPath := filepath.Join(dir, "logs", "server.log")

	t.Setenv("TASKTRACK_CONFIG_PATH", "")
	t.Setenv("TASKTRACK_TRANSPORT", "http")
	t.Setenv("TASKTRACK_DB_DRIVER", "sqlite")
	t.Setenv("TASKTRACK_DB_DSN", dbPath)
	t.Setenv("TASKTRACK_LOG_PATH", logPath)
	t.Setenv("TASKTRACK_SERVER_HOST", "127.0.0.1")
	t.Setenv("TASKTRACK_SERVER_PORT", strconv.Itoa(port))

	err = run()
	require.ErrorContains(t, err, "server:")

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logs), "server error")

	// Closing the last connection checkpoints and removes the WAL file.
	require.FileExists(t, dbPath)
	require.NoFileExists(t, dbPath+"-wal")
}

func TestRun_ConfigError(t *testing.T) {
	t.Setenv("TASKTRACK_CONFIG_PATH", "")
	t.Setenv("TASKTRACK_SERVER_PORT", "not-a-port")

	err := run()
	require.ErrorContains(t, err, "config error")
}
