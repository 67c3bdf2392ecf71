package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/ganot/tasktrack/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ItemService is the item API consumed by the HTTP handlers.
type ItemService interface {
	Create(ctx context.Context, req item.CreateRequest) (*item.Item, error)
	List(ctx context.Context) ([]item.Item, error)
	Get(ctx context.Context, id int64) (*item.Item, error)
	Update(ctx context.Context, req item.UpdateRequest) (*item.Item, error)
	Delete(ctx context.Context, id int64) error
}

// Options configures optional parts of the router.
type Options struct {
	Logger *slog.Logger
	// Metrics is served at /metrics when set.
	Metrics http.Handler
	// MCP is mounted at /mcp when set.
	MCP http.Handler
}

// Server wires HTTP handlers.
type Server struct {
	items  ItemService
	logger *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(items ItemService, opts Options) *chi.Mux {
	logger := logging.OrDiscard(opts.Logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	srv := &Server{items: items, logger: logger}

	r.Get("/health", srv.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/list", srv.handleList)
		r.Put("/add", srv.handleAdd)
		r.Post("/update", srv.handleUpdate)
		r.Delete("/remove/{id}", srv.handleRemove)
		r.Get("/items/{id}", srv.handleGet)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
