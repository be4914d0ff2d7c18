package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	cases := map[string]time.Time{
		"2024-03-01":                time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"2024-03-01T09:30:00Z":      time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		"2024-03-01T09:30:00.000Z":  time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		"2024-03-01T09:30:00+02:00": time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC),
		"2024-03-01T09:30:00":       time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		"2024-03-01 09:30:00":       time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		"  2024-03-01  ":            time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDueDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q: want %v, got %v", in, want, got)
	}

	_, err := ParseDueDate("next tuesday")
	assert.Error(t, err)
}

func TestInputItemUnmarshal(t *testing.T) {
	input := `{
		"User": [{"email": "a@x.com", "name": "Ann"}, {"name": "Nobody"}],
		"Customer Name": ["Acme", "Other"],
		"id": 7,
		"Task Name": "Ship it",
		"Due Date": "2024-03-01",
		"Status": "Todo",
		"Priority": 1
	}`

	var item InputItem
	require.NoError(t, json.Unmarshal([]byte(input), &item))

	require.Len(t, item.Users, 2)
	assert.Equal(t, "a@x.com", item.Users[0].Email)
	assert.Equal(t, "", item.Users[1].Email)
	assert.Equal(t, "Acme", item.Company())
	assert.Equal(t, NumberID(7), item.ID)
	assert.Equal(t, Text("Ship it"), item.TaskName)
	assert.True(t, item.DueDate.Valid())
	assert.Equal(t, "2024-03-01", item.DueDate.Raw)
	assert.Equal(t, Priority("1"), item.Priority)

	task := item.Task()
	assert.Equal(t, "Ship it", task.Name)
	assert.Equal(t, "Todo", task.Status)
}

func TestInputItemUnmarshalMissingFields(t *testing.T) {
	var item InputItem
	require.NoError(t, json.Unmarshal([]byte(`{"User": [], "Due Date": null, "Priority": null}`), &item))

	assert.Equal(t, "", item.Company())
	assert.Equal(t, IDMissing, item.ID.Kind)
	assert.False(t, item.DueDate.IsSet())
	assert.False(t, item.DueDate.Valid())
	assert.Equal(t, Priority(""), item.Priority)
}

func TestDueDateUnparseableKeepsRaw(t *testing.T) {
	var d DueDate
	require.NoError(t, json.Unmarshal([]byte(`"soon-ish"`), &d))
	assert.True(t, d.IsSet())
	assert.False(t, d.Valid())
	assert.Equal(t, "soon-ish", d.Raw)
}

func TestDueDateEpochMillis(t *testing.T) {
	var d DueDate
	require.NoError(t, json.Unmarshal([]byte(`1709251200000`), &d))
	assert.True(t, d.Valid())
	assert.True(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Equal(d.Time))
}

func TestIDKinds(t *testing.T) {
	var s, n, f, null ID
	require.NoError(t, json.Unmarshal([]byte(`"1"`), &s))
	require.NoError(t, json.Unmarshal([]byte(`1`), &n))
	require.NoError(t, json.Unmarshal([]byte(`1.0`), &f))
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))

	assert.NotEqual(t, s, n, "string and number ids must differ")
	assert.Equal(t, n, f, "1 and 1.0 are the same number")
	assert.Equal(t, IDNull, null.Kind)
	assert.Equal(t, "1", n.String())
}

func TestCompanyNamesAcceptsSingleString(t *testing.T) {
	var c CompanyNames
	require.NoError(t, json.Unmarshal([]byte(`"Acme"`), &c))
	assert.Equal(t, CompanyNames{"Acme"}, c)

	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.Nil(t, c)
}

func TestPriorityText(t *testing.T) {
	cases := map[string]Priority{
		`"High"`:          "High",
		`2`:               "2",
		`true`:            "true",
		`["High", "Low"]`: "High,Low",
	}
	for in, want := range cases {
		var p Priority
		require.NoError(t, json.Unmarshal([]byte(in), &p), in)
		assert.Equal(t, want, p, in)
	}
}
