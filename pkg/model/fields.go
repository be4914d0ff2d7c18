package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dueDateLayouts are tried in order. Values without a zone are read as UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDueDate parses s using the accepted due date layouts.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised due date %q", s)
}

// DueDate keeps the due date text as received alongside its parsed instant.
// Time is zero when Raw is empty or could not be parsed.
type DueDate struct {
	Raw  string
	Time time.Time
}

// NewDueDate builds a DueDate from raw text, parsing it if possible.
func NewDueDate(raw string) DueDate {
	d := DueDate{Raw: raw}
	if strings.TrimSpace(raw) != "" {
		if t, err := ParseDueDate(raw); err == nil {
			d.Time = t
		}
	}
	return d
}

// IsSet reports whether any due date text was supplied.
func (d DueDate) IsSet() bool { return d.Raw != "" }

// Valid reports whether the due date parsed into an instant.
func (d DueDate) Valid() bool { return !d.Time.IsZero() }

// UnmarshalJSON accepts a date string, epoch milliseconds or null.
func (d *DueDate) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return fmt.Errorf("due date: %w", err)
	}
	switch x := v.(type) {
	case nil:
		*d = DueDate{}
	case string:
		*d = NewDueDate(x)
	case json.Number:
		ms, err := x.Int64()
		if err != nil {
			*d = DueDate{Raw: x.String()}
			return nil
		}
		*d = DueDate{Raw: x.String(), Time: time.UnixMilli(ms).UTC()}
	default:
		*d = DueDate{Raw: scalarText(v)}
	}
	return nil
}

// Text is a loosely typed scalar field rendered as text. null becomes "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return err
	}
	*t = Text(scalarText(v))
	return nil
}

// Priority is the raw priority value as text. "" means no priority.
type Priority string

func (p *Priority) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return fmt.Errorf("priority: %w", err)
	}
	*p = Priority(scalarText(v))
	return nil
}

// CompanyNames accepts either a list of names or a single name.
type CompanyNames []string

func (c *CompanyNames) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return fmt.Errorf("customer name: %w", err)
	}
	switch x := v.(type) {
	case nil:
		*c = nil
	case []interface{}:
		names := make(CompanyNames, 0, len(x))
		for _, e := range x {
			names = append(names, scalarText(e))
		}
		*c = names
	default:
		*c = CompanyNames{scalarText(x)}
	}
	return nil
}

type IDKind int

const (
	IDMissing IDKind = iota
	IDNull
	IDString
	IDNumber
	IDOther
)

// ID identifies a task. Ids of different JSON kinds never match, so the
// string "1" and the number 1 are distinct.
type ID struct {
	Kind  IDKind
	Value string
}

func StringID(s string) ID { return ID{Kind: IDString, Value: s} }

func NumberID(n float64) ID {
	return ID{Kind: IDNumber, Value: strconv.FormatFloat(n, 'g', -1, 64)}
}

func (id ID) String() string {
	switch id.Kind {
	case IDMissing:
		return "<missing>"
	case IDNull:
		return "null"
	}
	return id.Value
}

func (id *ID) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	switch x := v.(type) {
	case nil:
		*id = ID{Kind: IDNull}
	case string:
		*id = StringID(x)
	case json.Number:
		*id = ID{Kind: IDNumber, Value: normaliseNumber(x)}
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID{Kind: IDOther, Value: buf.String()}
	}
	return nil
}

func decodeScalar(b []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// scalarText renders a decoded JSON value as text. Arrays are joined with
// commas and objects are written back as compact JSON.
func scalarText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return normaliseNumber(x)
	case bool:
		return strconv.FormatBool(x)
	case []interface{}:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = scalarText(e)
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

func normaliseNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
