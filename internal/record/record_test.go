package record

import (
	"testing"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestToRecord_LeavesObjectIDUnset(t *testing.T) {
	it := item.Item{ID: 3, Description: "desc", Tags: []string{"b", "a"}, Deadline: "Mon, 01 Jan 2001 00:00:00 GMT"}

	rec := ToRecord(it)
	require.Equal(t, uuid.Nil, rec.ObjectID)
	require.Equal(t, int64(3), rec.ID)
	require.Equal(t, "desc", rec.Description)
	require.Equal(t, []string{"b", "a"}, rec.Tags)
	require.Equal(t, it.Deadline, rec.Deadline)
}

func TestToRecord_DoesNotAliasTags(t *testing.T) {
	it := item.Item{Tags: []string{"a"}}

	rec := ToRecord(it)
	rec.Tags[0] = "changed"
	require.Equal(t, []string{"a"}, it.Tags)
}

func TestFromRecord_DropsObjectID(t *testing.T) {
	rec := ItemRecord{
		ObjectID:    uuid.New(),
		ID:          9,
		Description: "stored",
		Tags:        nil,
		Deadline:    "",
	}

	it := FromRecord(rec)
	require.True(t, it.Equal(item.Item{ID: 9, Description: "stored"}))
	require.NotNil(t, it.Tags)
	require.Empty(t, it.Tags)
}

func TestRoundTrip(t *testing.T) {
	it := item.Item{ID: 1, Description: "round", Tags: []string{"x", "y"}, Deadline: "later"}
	require.True(t, it.Equal(FromRecord(ToRecord(it))))
}

func TestTagsCodec(t *testing.T) {
	require.Equal(t, "[]", EncodeTags(nil))
	require.Equal(t, "[]", EncodeTags([]string{}))
	require.Equal(t, `["tag4","tag5"]`, EncodeTags([]string{"tag4", "tag5"}))

	require.Equal(t, []string{"tag4", "tag5"}, DecodeTags(`["tag4","tag5"]`))
	require.Equal(t, []string{}, DecodeTags(""))
	require.Equal(t, []string{}, DecodeTags("null"))
	require.Equal(t, []string{}, DecodeTags("{not json"))
}
