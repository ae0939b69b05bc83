// Package document is the order-preserving JSON layer the migrations operate
// on. Level files are hand-diffed, so migrations must keep the key order of
// everything they do not touch; orderedmap gives us that where encoding/json
// maps would not.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Parse decodes a level file into an order-preserving document.
func Parse(data []byte) (*orderedmap.OrderedMap, error) {
	root := orderedmap.New()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to parse level JSON: %w", err)
	}
	return root, nil
}

// Encode renders a document in the on-disk contract: 2-space indentation and
// a trailing newline.
func Encode(root *orderedmap.OrderedMap) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode level JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Object returns the object value at key. Mutations to the returned map's
// existing entries are visible in the parent; callers adding or deleting keys
// must Set the value back.
func Object(m *orderedmap.OrderedMap, key string) (orderedmap.OrderedMap, bool) {
	v, ok := m.Get(key)
	if !ok {
		return orderedmap.OrderedMap{}, false
	}
	return AsObject(v)
}

// Array returns the array value at key.
func Array(m *orderedmap.OrderedMap, key string) ([]interface{}, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]interface{})
	return arr, ok
}

// String returns the string value at key.
func String(m *orderedmap.OrderedMap, key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Number returns the numeric value at key. JSON numbers decode as float64;
// a null or missing key reports false.
func Number(m *orderedmap.OrderedMap, key string) (float64, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

// Has reports whether key is present, even with a null value.
func Has(m *orderedmap.OrderedMap, key string) bool {
	_, ok := m.Get(key)
	return ok
}

// AsObject converts an array element to an object.
func AsObject(v interface{}) (orderedmap.OrderedMap, bool) {
	switch obj := v.(type) {
	case orderedmap.OrderedMap:
		return obj, true
	case *orderedmap.OrderedMap:
		return *obj, true
	}
	return orderedmap.OrderedMap{}, false
}

// Strings returns the value at key as a string slice, ignoring non-string
// elements.
func Strings(m *orderedmap.OrderedMap, key string) []string {
	arr, ok := Array(m, key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
