package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/ganot/tasktrack/internal/logging"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "tasktrack"
	serverVersion = "0.1.0"
)

// ItemService defines item operations needed by MCP.
type ItemService interface {
	Create(ctx context.Context, req item.CreateRequest) (*item.Item, error)
	List(ctx context.Context) ([]item.Item, error)
	Get(ctx context.Context, id int64) (*item.Item, error)
	Update(ctx context.Context, req item.UpdateRequest) (*item.Item, error)
	Delete(ctx context.Context, id int64) error
}

// Config contains server configuration.
type Config struct {
	Items         ItemService
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := logging.OrDiscard(cfg.Logger)

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(requestIDMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, cfg.Items, logger.With("transport", cfg.TransportMode))

	return server
}

// NewHTTPHandler serves server over the streamable HTTP transport.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: 30 * time.Minute,
		},
	)
}
