// Package record maps items to and from their stored representation.
package record

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/google/uuid"
)

// ItemRecord is the stored form of an item. ObjectID is the store's
// surrogate key; it is assigned on insert and never leaves the storage layer.
type ItemRecord struct {
	ObjectID    uuid.UUID
	ID          int64
	Description string
	Tags        []string
	Deadline    string
}

// ToRecord copies the domain fields of it. ObjectID is left unset.
func ToRecord(it item.Item) ItemRecord {
	return ItemRecord{
		ID:          it.ID,
		Description: it.Description,
		Tags:        copyTags(it.Tags),
		Deadline:    it.Deadline,
	}
}

// FromRecord copies the domain fields of rec and drops ObjectID.
func FromRecord(rec ItemRecord) item.Item {
	return item.Item{
		ID:          rec.ID,
		Description: rec.Description,
		Tags:        copyTags(rec.Tags),
		Deadline:    rec.Deadline,
	}
}

// EncodeTags serialises tags as a JSON array.
func EncodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeTags parses a JSON array of tags. Empty or malformed input yields an
// empty slice.
func DecodeTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

func copyTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
