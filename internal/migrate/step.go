// Package migrate implements the level schema migrations as an ordered list
// of named, idempotent, precondition-gated pure transforms over one level
// document. Steps detect their own precondition and no-op when a document
// does not need them, so a mixed corpus can be migrated incrementally and
// re-runs never double-apply.
package migrate

import (
	"github.com/iancoleman/orderedmap"

	"github.com/zachsnow/laserfingers/internal/document"
)

// Step is one schema migration over a level document. Apply reports whether
// it changed the document; an error is fatal to the file and the caller must
// not persist any partial transform.
type Step struct {
	Name  string
	Apply func(root *orderedmap.OrderedMap) (changed bool, err error)
}

// markersKey is the root-level provenance field consulted by the one step
// (cycle-time correction) whose precondition is not detectable from document
// shape.
const markersKey = "appliedMigrations"

func hasMarker(root *orderedmap.OrderedMap, name string) bool {
	for _, m := range document.Strings(root, markersKey) {
		if m == name {
			return true
		}
	}
	return false
}

func addMarker(root *orderedmap.OrderedMap, name string) {
	if hasMarker(root, name) {
		return
	}
	markers, _ := document.Array(root, markersKey)
	root.Set(markersKey, append(markers, name))
}

// pathFields are the singular endpoint-path field names of the flat
// intermediate schema.
var pathFields = []string{"endpoint", "startEndpoint", "endEndpoint"}

// mapArray applies fn to every object element of the array at key, replacing
// elements fn reports as changed. A missing or non-array key is a no-op.
func mapArray(root *orderedmap.OrderedMap, key string, fn func(obj orderedmap.OrderedMap) (interface{}, bool, error)) (bool, error) {
	arr, ok := document.Array(root, key)
	if !ok {
		return false, nil
	}
	changed := false
	for i, v := range arr {
		obj, ok := document.AsObject(v)
		if !ok {
			continue
		}
		replacement, ch, err := fn(obj)
		if err != nil {
			return changed, err
		}
		if ch {
			arr[i] = replacement
			changed = true
		}
	}
	if changed {
		root.Set(key, arr)
	}
	return changed, nil
}

// eachPath applies fn to every endpoint-path object reachable from the
// given laser or button object: the singular flat fields and every element
// of an endpoints array. fn reports whether it changed the path.
func eachPath(obj *orderedmap.OrderedMap, fn func(path orderedmap.OrderedMap) (orderedmap.OrderedMap, bool)) bool {
	changed := false
	for _, field := range pathFields {
		path, ok := document.Object(obj, field)
		if !ok {
			continue
		}
		if updated, ch := fn(path); ch {
			obj.Set(field, updated)
			changed = true
		}
	}
	if endpoints, ok := document.Array(obj, "endpoints"); ok {
		arrChanged := false
		for i, v := range endpoints {
			path, ok := document.AsObject(v)
			if !ok {
				continue
			}
			if updated, ch := fn(path); ch {
				endpoints[i] = updated
				arrChanged = true
			}
		}
		if arrChanged {
			obj.Set("endpoints", endpoints)
			changed = true
		}
	}
	return changed
}
