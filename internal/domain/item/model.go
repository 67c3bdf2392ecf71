package item

import "slices"

// Item is a single to-do entry.
//
// ID is assigned by the repository on insert; zero or negative values mean
// the item has not been stored yet and never match a stored record.
type Item struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Deadline    string   `json:"deadline"`
}

// Equal reports whether it and other describe the same item.
func (it Item) Equal(other Item) bool {
	return Equal(it, other)
}

// Equal compares ID, description and deadline by value and tags as a set.
// Neither tag slice is reordered.
func Equal(a, b Item) bool {
	return a.ID == b.ID &&
		a.Description == b.Description &&
		a.Deadline == b.Deadline &&
		sameTags(a.Tags, b.Tags)
}

func sameTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
