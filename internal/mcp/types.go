package mcp

import "github.com/ganot/tasktrack/internal/domain/item"

type ListItemsParams struct{}

type ListItemsResult struct {
	Items []item.Item `json:"items"`
}

type AddItemParams struct {
	Description string   `json:"description" jsonschema:"what needs doing"`
	Tags        []string `json:"tags,omitempty" jsonschema:"free-form labels"`
	Deadline    string   `json:"deadline,omitempty" jsonschema:"deadline as free text, for example an HTTP date"`
}

type AddItemResult struct {
	ID int64 `json:"id"`
}

type GetItemParams struct {
	ID int64 `json:"id" jsonschema:"item id"`
}

type GetItemResult struct {
	Item item.Item `json:"item"`
}

type UpdateItemParams struct {
	ID          int64    `json:"id" jsonschema:"id of the item to replace"`
	Description string   `json:"description" jsonschema:"new description"`
	Tags        []string `json:"tags,omitempty" jsonschema:"new tags; omitted means none"`
	Deadline    string   `json:"deadline,omitempty" jsonschema:"new deadline; omitted means none"`
}

type UpdateItemResult struct {
	Updated bool `json:"updated"`
}

type RemoveItemParams struct {
	ID int64 `json:"id" jsonschema:"id of the item to remove"`
}

type RemoveItemResult struct {
	Removed bool `json:"removed"`
}
