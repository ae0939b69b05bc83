package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zachsnow/laserfingers/internal/document"
)

func TestEndpointsArray_SegmentPairCombines(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "s", "type": "segment",
				"startEndpoint": {"points": [{"x": 1, "y": 1}]},
				"endEndpoint": {"points": [{"x": 2, "y": 2}]}}
		]
	}`)
	applyExpectChange(t, EndpointsArray(), root)

	lasers, _ := document.Array(root, "lasers")
	laser, ok := document.AsObject(lasers[0])
	require.True(t, ok)

	assert.False(t, document.Has(&laser, "startEndpoint"))
	assert.False(t, document.Has(&laser, "endEndpoint"))

	endpoints, ok := document.Array(&laser, "endpoints")
	require.True(t, ok)
	require.Len(t, endpoints, 2)

	first, ok := document.AsObject(endpoints[0])
	require.True(t, ok)
	points, ok := document.Array(&first, "points")
	require.True(t, ok)
	pt, ok := document.AsObject(points[0])
	require.True(t, ok)
	x, _ := document.Number(&pt, "x")
	assert.Equal(t, 1.0, x, "start path comes first")
}

func TestEndpointsArray_RayEndpointWraps(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "r", "type": "ray", "endpoint": {"points": [{"x": 0, "y": 0}]}, "rotationSpeed": 0}
		]
	}`)
	applyExpectChange(t, EndpointsArray(), root)

	lasers, _ := document.Array(root, "lasers")
	laser, _ := document.AsObject(lasers[0])
	assert.False(t, document.Has(&laser, "endpoint"))
	endpoints, ok := document.Array(&laser, "endpoints")
	require.True(t, ok)
	assert.Len(t, endpoints, 1)
}

func TestEndpointsArray_LegacyFlatTypeNames(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "a", "type": "sweeper", "endpoint": {"points": [{"x": 0, "y": 0}]}},
			{"id": "b", "type": "rotor", "endpoint": {"points": [{"x": 1, "y": 1}]}}
		]
	}`)
	applyExpectChange(t, EndpointsArray(), root)

	lasers, _ := document.Array(root, "lasers")
	for _, v := range lasers {
		laser, ok := document.AsObject(v)
		require.True(t, ok)
		assert.False(t, document.Has(&laser, "endpoint"))
		assert.True(t, document.Has(&laser, "endpoints"))
	}
}

func TestEndpointsArray_ButtonWraps(t *testing.T) {
	root := parseDoc(t, `{
		"buttons": [
			{"id": "btn-1", "target": "door-1", "endpoint": {"points": [{"x": 2, "y": 3}]}}
		]
	}`)
	applyExpectChange(t, EndpointsArray(), root)

	buttons, _ := document.Array(root, "buttons")
	button, ok := document.AsObject(buttons[0])
	require.True(t, ok)
	assert.False(t, document.Has(&button, "endpoint"))
	assert.True(t, document.Has(&button, "endpoints"))

	// Unrelated button fields pass through.
	target, ok := document.String(&button, "target")
	require.True(t, ok)
	assert.Equal(t, "door-1", target)
}

func TestEndpointsArray_AlreadyMigratedIsByteIdentical(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "r", "type": "ray", "endpoints": [{"points": [{"x": 0, "y": 0}]}]}
		],
		"buttons": [
			{"id": "b", "endpoints": [{"points": [{"x": 1, "y": 1}]}]}
		]
	}`)
	before := encodeDoc(t, root)

	changed, err := EndpointsArray().Apply(root)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, encodeDoc(t, root))
}

func TestEndpointsArray_Idempotent(t *testing.T) {
	root := parseDoc(t, `{
		"lasers": [
			{"id": "s", "type": "segment",
				"startEndpoint": {"points": [{"x": 1, "y": 1}]},
				"endEndpoint": {"points": [{"x": 2, "y": 2}]}}
		]
	}`)
	applyExpectChange(t, EndpointsArray(), root)
	requireIdempotent(t, EndpointsArray(), root)
}
