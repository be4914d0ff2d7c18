package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/taskdigest/pkg/model"
)

func TestParseItemsArray(t *testing.T) {
	input := `[
		{"User": [{"email": "a@x.com", "name": "Ann"}], "Customer Name": ["Acme"], "id": "rec1", "Task Name": "Call", "Due Date": "2024-03-01", "Status": "Todo"},
		{"json": {"User": [{"email": "b@x.com", "name": "Bob"}], "id": "rec2", "Task Name": "Write", "Status": "Done", "Priority": "Low"}}
	]`

	items, err := NewReader().ParseItems(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "a@x.com", items[0].Users[0].Email)
	assert.Equal(t, "Acme", items[0].Company())
	assert.Equal(t, model.StringID("rec1"), items[0].ID)

	assert.Equal(t, "Bob", items[1].Users[0].Name, "envelope should be unwrapped")
	assert.Equal(t, model.Priority("Low"), items[1].Priority)
}

func TestParseItemsStream(t *testing.T) {
	input := `{"User": [{"email": "a@x.com"}], "id": 1, "Task Name": "One"}
{"json": {"User": [{"email": "a@x.com"}], "id": 2, "Task Name": "Two"}}
`
	items, err := NewReader().ParseItems(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.Text("One"), items[0].TaskName)
	assert.Equal(t, model.Text("Two"), items[1].TaskName)
}

func TestParseItemsEmpty(t *testing.T) {
	for _, in := range []string{"", "  \n", "[]"} {
		items, err := NewReader().ParseItems(strings.NewReader(in))
		require.NoError(t, err, "%q", in)
		assert.Empty(t, items, "%q", in)
	}
}

func TestParseItemsDecodeError(t *testing.T) {
	input := `[{"User": []}, {"User": "not-a-list"}]`

	_, err := NewReader().ParseItems(strings.NewReader(input))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 1, decodeErr.Index)
}

func TestParseItemsRejectsScalars(t *testing.T) {
	_, err := NewReader().ParseItems(strings.NewReader(`[1]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotObject)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"User": [{"email": "a@x.com"}], "id": 1}]`), 0600))

	items, err := NewReader().ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = NewReader().ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
