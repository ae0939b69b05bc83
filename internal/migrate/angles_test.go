package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zachsnow/laserfingers/internal/document"
)

func TestRemoveAngles_DeletesRayAngle(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "r", "type": "ray", "endpoints": [{"points": [{"x": 0, "y": 0}]}], "initialAngle": 1.5707963, "rotationSpeed": 0}
		]
	}`)
	applyExpectChange(t, RemoveAngles(), root)

	lasers, _ := document.Array(root, "lasers")
	laser, _ := document.AsObject(lasers[0])
	assert.False(t, document.Has(&laser, "initialAngle"))
	assert.True(t, document.Has(&laser, "rotationSpeed"), "rotation speed survives angle removal")
}

func TestRemoveAngles_Idempotent(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "r", "type": "ray", "endpoint": {"points": [{"x": 0, "y": 0}]}, "initialAngle": 3.14}
		]
	}`)
	applyExpectChange(t, RemoveAngles(), root)
	requireIdempotent(t, RemoveAngles(), root)
}

func TestRemoveAngles_SegmentUntouched(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "s", "type": "segment", "endpoints": [{"points": [{"x": 0, "y": 0}]}, {"points": [{"x": 1, "y": 1}]}]}
		]
	}`)
	before := encodeDoc(t, root)

	changed, err := RemoveAngles().Apply(root)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, encodeDoc(t, root))
}

func TestRemoveAngles_LegacyNestedShapeIsNoOp(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "a", "kind": {"type": "rotor", "rotor": {"center": {"x": 0, "y": 0}, "speedDegreesPerSecond": 10, "initialAngleDegrees": 45}}}
		]
	}`)
	changed, err := RemoveAngles().Apply(root)
	require.NoError(t, err)
	assert.False(t, changed)
}
