package transport

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/bazarly/bazarly-go/models"
)

// listKeys is the documented precedence for locating the record list inside a
// response payload: a top-level array wins, then the first of these keys
// holding an array, and finally the payload is wrapped as a single record.
var listKeys = []string{"data", "items", "products"}

// totalKeys is the precedence for the server-reported overall record count.
var totalKeys = []string{"total", "totalCount", "meta.total"}

// DecodeList decodes the record list from a loosely-shaped payload. Backends
// behind the marketplace API disagree on envelope shape (bare arrays,
// {"data": [...]}, {"items": [...]}, {"data": {"items": [...]}}, or a single
// object); this is the one place that disagreement is resolved, so domain
// services never re-implement shape sniffing.
func DecodeList[T any](raw []byte) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	v := gjson.ParseBytes(raw)
	if v.Type == gjson.Null {
		return nil, nil
	}

	list, single := locateList(v)
	if single {
		var one T
		if err := json.Unmarshal([]byte(list.Raw), &one); err != nil {
			return nil, fmt.Errorf("decode single record: %w", err)
		}
		return []T{one}, nil
	}

	out := make([]T, 0, len(list.Array()))
	for _, el := range list.Array() {
		var item T
		if err := json.Unmarshal([]byte(el.Raw), &item); err != nil {
			return nil, fmt.Errorf("decode list record: %w", err)
		}
		out = append(out, item)
	}

	return out, nil
}

// DecodePage decodes one page of records plus the server-reported total
// count (zero when the envelope carries none).
func DecodePage[T any](raw []byte) (models.Page[T], error) {
	items, err := DecodeList[T](raw)
	if err != nil {
		return models.Page[T]{}, err
	}

	return models.Page[T]{Items: items, TotalCount: ExtractTotal(raw)}, nil
}

// ExtractTotal returns the overall record count reported by a list envelope,
// trying "total", "totalCount", then "meta.total". Returns 0 when absent.
func ExtractTotal(raw []byte) int {
	v := gjson.ParseBytes(raw)
	for _, key := range totalKeys {
		if f := v.Get(key); f.Exists() && f.Type == gjson.Number {
			return int(f.Int())
		}
	}
	return 0
}

// locateList applies the precedence order and returns either the array node
// or, when single is true, the object node to wrap as a one-record list.
func locateList(v gjson.Result) (node gjson.Result, single bool) {
	if v.IsArray() {
		return v, false
	}

	for _, key := range listKeys {
		if f := v.Get(key); f.IsArray() {
			return f, false
		}
	}

	// A "data" envelope may itself hold the list one level down.
	if d := v.Get("data"); d.IsObject() {
		for _, key := range listKeys[1:] {
			if f := d.Get(key); f.IsArray() {
				return f, false
			}
		}
		return d, true
	}

	return v, true
}
