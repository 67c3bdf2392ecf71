// Package app wires configuration, storage and the item service into the
// HTTP and MCP surfaces.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ganot/tasktrack/internal/config"
	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/ganot/tasktrack/internal/logging"
	"github.com/ganot/tasktrack/internal/mcp"
	"github.com/ganot/tasktrack/internal/metrics"
	"github.com/ganot/tasktrack/internal/postgres"
	"github.com/ganot/tasktrack/internal/repository"
	"github.com/ganot/tasktrack/internal/sqlite"
	"github.com/ganot/tasktrack/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App holds the wired application.
type App struct {
	Items *item.Service
	MCP   *sdkmcp.Server
	// Handler serves the REST API, /mcp, /metrics and /health.
	Handler http.Handler

	db io.Closer
}

// Options carries optional dependencies.
type Options struct {
	Logger *slog.Logger
	// Registry receives the application collectors. A fresh registry with Go
	// and process collectors is used when nil.
	Registry *prometheus.Registry
}

// New opens the configured store, applies migrations and builds every surface.
func New(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	logger := logging.OrDiscard(opts.Logger)

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	repo, seq, db, err := openStore(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	instrumented, err := metrics.NewInstrumentedRepository(repo, reg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := metrics.NewSequenceCollector(seq, []string{cfg.DB.Sequences.ItemID}, reg, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	items := item.NewService(instrumented, logger)

	mcpServer := mcp.NewServer(mcp.Config{
		Items:         items,
		TransportMode: cfg.Transport.Mode,
		Logger:        logger,
	})

	handler := transport.NewServer(items, transport.Options{
		Logger:  logger,
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		MCP:     mcp.NewHTTPHandler(mcpServer),
	})

	return &App{
		Items:   items,
		MCP:     mcpServer,
		Handler: handler,
		db:      db,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func openStore(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (item.Repository, repository.SequenceAllocator, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		if err := ensureDBDir(cfg.DSN); err != nil {
			return nil, nil, nil, fmt.Errorf("prepare database path: %w", err)
		}
		db, err := sqlite.New(cfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.RunMigrations(ctx); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		seq := sqlite.NewSequenceAllocator(db, logger)
		return sqlite.NewItemRepository(db, seq, cfg.Sequences.ItemID, logger), seq, db, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.RunMigrations(ctx); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}
		seq := postgres.NewSequenceAllocator(db, logger)
		return postgres.NewItemRepository(db, seq, cfg.Sequences.ItemID, logger), seq, db, nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

func ensureDBDir(dsn string) error {
	if dsn == ":memory:" || dsn == "" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
