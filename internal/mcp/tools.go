package mcp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ganot/tasktrack/internal/domain/item"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var errInternal = errors.New("INTERNAL: the item store failed; try again later")

func registerTools(server *sdkmcp.Server, items ItemService, logger *slog.Logger) {
	h := &toolHandlers{items: items, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_items",
		Description: "List every stored to-do item",
	}, h.listItems)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_item",
		Description: "Store a new to-do item and return its assigned id",
	}, h.addItem)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_item",
		Description: "Fetch a single item by id",
	}, h.getItem)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_item",
		Description: "Replace the description, tags and deadline of an existing item",
	}, h.updateItem)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_item",
		Description: "Delete an item by id",
	}, h.removeItem)
}

type toolHandlers struct {
	items  ItemService
	logger *slog.Logger
}

func (h *toolHandlers) listItems(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListItemsParams) (*sdkmcp.CallToolResult, ListItemsResult, error) {
	items, err := h.items.List(ctx)
	if err != nil {
		return nil, ListItemsResult{}, h.toolError(ctx, "list_items", err)
	}
	if items == nil {
		items = []item.Item{}
	}
	return nil, ListItemsResult{Items: items}, nil
}

func (h *toolHandlers) addItem(ctx context.Context, _ *sdkmcp.CallToolRequest, in AddItemParams) (*sdkmcp.CallToolResult, AddItemResult, error) {
	created, err := h.items.Create(ctx, item.CreateRequest{
		Description: in.Description,
		Tags:        in.Tags,
		Deadline:    in.Deadline,
	})
	if err != nil {
		return nil, AddItemResult{}, h.toolError(ctx, "add_item", err)
	}
	return nil, AddItemResult{ID: created.ID}, nil
}

func (h *toolHandlers) getItem(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetItemParams) (*sdkmcp.CallToolResult, GetItemResult, error) {
	it, err := h.items.Get(ctx, in.ID)
	if err != nil {
		return nil, GetItemResult{}, h.toolError(ctx, "get_item", err)
	}
	return nil, GetItemResult{Item: *it}, nil
}

func (h *toolHandlers) updateItem(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateItemParams) (*sdkmcp.CallToolResult, UpdateItemResult, error) {
	_, err := h.items.Update(ctx, item.UpdateRequest{
		ID:          in.ID,
		Description: in.Description,
		Tags:        in.Tags,
		Deadline:    in.Deadline,
	})
	if err != nil {
		return nil, UpdateItemResult{}, h.toolError(ctx, "update_item", err)
	}
	return nil, UpdateItemResult{Updated: true}, nil
}

func (h *toolHandlers) removeItem(ctx context.Context, _ *sdkmcp.CallToolRequest, in RemoveItemParams) (*sdkmcp.CallToolResult, RemoveItemResult, error) {
	if err := h.items.Delete(ctx, in.ID); err != nil {
		return nil, RemoveItemResult{}, h.toolError(ctx, "remove_item", err)
	}
	return nil, RemoveItemResult{Removed: true}, nil
}

// toolError converts a service error into the error reported to the client.
// Store failures are logged and replaced with a generic message.
func (h *toolHandlers) toolError(ctx context.Context, tool string, err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	h.logger.ErrorContext(ctx, "tool failed", "tool", tool, "request_id", getRequestID(ctx), "error", err)
	return errInternal
}
