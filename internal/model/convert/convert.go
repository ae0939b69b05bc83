// Package convert renders canonical core records into order-preserving
// document nodes, in the flat on-disk shape kind unification produces.
package convert

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"

	"github.com/zachsnow/laserfingers/internal/model/core"
)

// positionToNode converts a core.Position2D to a document node.
func positionToNode(p core.Position2D) *orderedmap.OrderedMap {
	node := orderedmap.New()
	node.Set("x", p.X)
	node.Set("y", p.Y)
	return node
}

// PathToNode converts an endpoint path to the flat-schema node: points, then
// cycleSeconds (explicit null when stationary), then the historical initialT
// field with the phase value. Later migrations rename initialT to the sparse
// t field.
func PathToNode(p core.EndpointPath) *orderedmap.OrderedMap {
	points := make([]interface{}, len(p.Points))
	for i, pt := range p.Points {
		points[i] = *positionToNode(pt)
	}

	node := orderedmap.New()
	node.Set("points", points)
	if p.CycleSeconds != nil {
		node.Set("cycleSeconds", *p.CycleSeconds)
	} else {
		node.Set("cycleSeconds", nil)
	}
	node.Set("initialT", p.Phase)
	return node
}

// LaserToNode converts a canonical laser to the flat-schema node: common
// fields, then the variant fields. Rays carry a singular endpoint plus
// initialAngle and rotationSpeed; segments carry startEndpoint/endEndpoint
// and neither angle field. Cadence passes through unchanged when present.
func LaserToNode(l core.Laser) *orderedmap.OrderedMap {
	node := orderedmap.New()
	node.Set("id", l.ID)
	node.Set("color", l.Color)
	node.Set("thickness", l.Thickness)
	node.Set("enabled", l.IsEnabled())
	node.Set("type", string(l.Type))

	switch l.Type {
	case core.LaserTypeSegment:
		node.Set("startEndpoint", *PathToNode(l.Endpoints[0]))
		node.Set("endEndpoint", *PathToNode(l.Endpoints[1]))
	default:
		node.Set("endpoint", *PathToNode(l.Endpoints[0]))
		node.Set("initialAngle", l.InitialAngle)
		node.Set("rotationSpeed", l.RotationSpeed)
	}

	if len(l.Cadence) > 0 {
		node.Set("cadence", rawToValue(l.Cadence))
	}
	return node
}

// rawToValue decodes an opaque passthrough value, preserving key order for
// objects.
func rawToValue(raw json.RawMessage) interface{} {
	obj := orderedmap.New()
	if err := json.Unmarshal(raw, obj); err == nil {
		return *obj
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
