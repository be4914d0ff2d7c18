package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrisonrobin/taskdigest/pkg/model"
)

// DecodeError reports which item in the input could not be decoded.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode item %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ParseFile parses items from a file. An empty path or "-" reads stdin.
func (r *Reader) ParseFile(path string) ([]model.InputItem, error) {
	if path == "" || path == "-" {
		return r.ParseItems(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return r.ParseItems(f)
}

// ParseItems parses workflow items from src. The input is either a JSON array
// or a stream of JSON objects (e.g. one per line). Each item may be bare or
// wrapped in a {"json": ...} envelope.
func (r *Reader) ParseItems(src io.Reader) ([]model.InputItem, error) {
	br := bufio.NewReader(src)
	first, err := peekNonSpace(br)
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	decoder := json.NewDecoder(br)
	if first == '[' {
		return parseArray(decoder)
	}
	return parseStream(decoder)
}

func parseArray(decoder *json.Decoder) ([]model.InputItem, error) {
	if _, err := decoder.Token(); err != nil {
		return nil, &DecodeError{Index: 0, Err: err}
	}
	var items []model.InputItem
	for decoder.More() {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return nil, &DecodeError{Index: len(items), Err: err}
		}
		item, err := decodeItem(raw)
		if err != nil {
			return nil, &DecodeError{Index: len(items), Err: err}
		}
		items = append(items, item)
	}
	if _, err := decoder.Token(); err != nil {
		return nil, &DecodeError{Index: len(items), Err: err}
	}
	return items, nil
}

func parseStream(decoder *json.Decoder) ([]model.InputItem, error) {
	var items []model.InputItem
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if err == io.EOF {
				break
			}
			return nil, &DecodeError{Index: len(items), Err: err}
		}
		item, err := decodeItem(raw)
		if err != nil {
			return nil, &DecodeError{Index: len(items), Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

var errNotObject = errors.New("item is not a JSON object")

func decodeItem(raw json.RawMessage) (model.InputItem, error) {
	var item model.InputItem
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return item, errNotObject
	}

	var envelope struct {
		JSON json.RawMessage `json:"json"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return item, err
	}
	body := bytes.TrimSpace(envelope.JSON)
	if len(body) > 0 && body[0] == '{' {
		trimmed = body
	}

	if err := json.Unmarshal(trimmed, &item); err != nil {
		return item, err
	}
	return item, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
