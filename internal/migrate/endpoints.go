package migrate

import (
	"github.com/iancoleman/orderedmap"

	"github.com/zachsnow/laserfingers/internal/document"
)

// StepEndpointsArray is the name of the endpoints-array generalization step.
const StepEndpointsArray = "endpoints-array"

// EndpointsArray rewrites singular endpoint fields into the endpoints array
// convention: lasers and buttons with a bare endpoint get a one-element
// array, segment lasers' startEndpoint/endEndpoint pair becomes a
// two-element array (start first). Flat records from the era that kept the
// legacy type names sweeper/rotor are treated as rays. Records already in
// array form are untouched.
func EndpointsArray() Step {
	return Step{
		Name: StepEndpointsArray,
		Apply: func(root *orderedmap.OrderedMap) (bool, error) {
			lasersChanged, err := mapArray(root, "lasers", func(laser orderedmap.OrderedMap) (interface{}, bool, error) {
				return laser, generalizeLaser(&laser), nil
			})
			if err != nil {
				return false, err
			}
			buttonsChanged, err := mapArray(root, "buttons", func(button orderedmap.OrderedMap) (interface{}, bool, error) {
				return button, wrapSingleEndpoint(&button), nil
			})
			if err != nil {
				return false, err
			}
			return lasersChanged || buttonsChanged, nil
		},
	}
}

func generalizeLaser(laser *orderedmap.OrderedMap) bool {
	typ, _ := document.String(laser, "type")
	switch typ {
	case "ray", "sweeper", "rotor":
		return wrapSingleEndpoint(laser)
	case "segment":
		return combineSegmentEndpoints(laser)
	}
	return false
}

func wrapSingleEndpoint(obj *orderedmap.OrderedMap) bool {
	if document.Has(obj, "endpoints") {
		return false
	}
	endpoint, ok := obj.Get("endpoint")
	if !ok {
		return false
	}
	obj.Set("endpoints", []interface{}{endpoint})
	obj.Delete("endpoint")
	return true
}

func combineSegmentEndpoints(laser *orderedmap.OrderedMap) bool {
	if document.Has(laser, "endpoints") {
		return false
	}
	start, okStart := laser.Get("startEndpoint")
	end, okEnd := laser.Get("endEndpoint")
	if !okStart || !okEnd {
		return false
	}
	laser.Set("endpoints", []interface{}{start, end})
	laser.Delete("startEndpoint")
	laser.Delete("endEndpoint")
	return true
}
