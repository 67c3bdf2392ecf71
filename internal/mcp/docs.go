package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `tasktrack keeps a flat list of to-do items.

Each item has a numeric id assigned on creation, a description, a set of tags
and an optional free-text deadline. Ids are never reused.

Tools:
- list_items: every stored item, in no particular order.
- add_item: create an item; returns its id.
- get_item: fetch one item by id.
- update_item: replace description, tags and deadline of an existing item.
- remove_item: delete an item by id.

See tasktrack://docs/usage for error codes.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "tasktrack://docs/usage",
		Name:        "usage",
		Title:       "tasktrack usage",
		Description: "Item fields, tool semantics and error codes.",
		Content: `# tasktrack usage

## Item fields

| Field | Notes |
|---|---|
| id | assigned by the server, starts at 1, strictly increasing |
| description | required, free text |
| tags | list of non-empty strings; order is not significant |
| deadline | optional free text, stored as given |

## Updates replace the whole item

update_item overwrites description, tags and deadline. Omitted tags or
deadline are cleared, so send the full item.

## Error codes

- ITEM_NOT_FOUND: no item has that id. Call list_items for valid ids.
- INVALID_INPUT: description missing or a tag is empty.
- INTERNAL: the store failed. Retry later.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
