// Package core defines the canonical level data model the migrations
// converge on.
package core

import "encoding/json"

// LaserType discriminates the two canonical laser variants.
type LaserType string

const (
	LaserTypeRay     LaserType = "ray"
	LaserTypeSegment LaserType = "segment"
)

// Position2D represents a 2D level coordinate.
type Position2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EndpointPath describes where a point is at time t: a single point is
// stationary, two or more points define a polyline walked back and forth.
// CycleSeconds is the duration of one full round trip; nil means stationary
// regardless of point count. Phase is the offset into the cycle at level
// load; zero is never persisted, so re-encoding canonical data is a no-op.
type EndpointPath struct {
	Points       []Position2D `json:"points" jsonschema:"minItems=1,description=Polyline the point travels along; a single point is stationary"`
	CycleSeconds *float64     `json:"cycleSeconds,omitempty" jsonschema:"description=Seconds for one full round trip; absent means stationary"`
	Phase        float64      `json:"t,omitempty" jsonschema:"description=Phase offset into the cycle at level load; absent means zero"`
}

// Stationary reports whether the path never moves.
func (p EndpointPath) Stationary() bool {
	return p.CycleSeconds == nil
}

// Laser is the canonical laser record. Ray lasers have one endpoint path, a
// rotation speed, and (in legacy data only) a stored initial angle; segment
// lasers have two endpoint paths and neither angle field.
type Laser struct {
	ID        string    `json:"id" jsonschema:"description=Opaque identifier, unique within a level"`
	Color     string    `json:"color"`
	Thickness float64   `json:"thickness"`
	Enabled   *bool     `json:"enabled,omitempty" jsonschema:"description=Defaults to true when absent"`
	Type      LaserType `json:"type" jsonschema:"enum=ray,enum=segment"`

	// One path for rays, two (start then end) for segments.
	Endpoints []EndpointPath `json:"endpoints" jsonschema:"minItems=1,maxItems=2"`

	RotationSpeed float64 `json:"rotationSpeed,omitempty" jsonschema:"description=Signed radians per second; rays only"`

	// InitialAngle is produced by the legacy decoders and persisted only in
	// the intermediate flat schema; the angle-removal migration deletes it
	// and consumers derive it from endpoint-path geometry.
	InitialAngle float64 `json:"-"`

	// Cadence is an opaque on/off timing descriptor passed through unchanged.
	Cadence json.RawMessage `json:"cadence,omitempty"`
}

// IsEnabled resolves the enabled flag, defaulting to true when absent.
func (l Laser) IsEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

// Button is an interactive element carrying a single endpoint path under the
// same endpoints array convention as lasers. All other button fields are
// outside this module's concern and pass through untouched.
type Button struct {
	ID        string         `json:"id"`
	Endpoints []EndpointPath `json:"endpoints" jsonschema:"minItems=1,maxItems=1"`
}

// Level is the canonical document shape, to the extent this module defines
// it. Real level files carry additional fields that migrations preserve.
type Level struct {
	Lasers  []Laser  `json:"lasers,omitempty"`
	Buttons []Button `json:"buttons,omitempty"`

	// AppliedMigrations records provenance markers for migrations whose
	// precondition cannot be detected from document shape alone.
	AppliedMigrations []string `json:"appliedMigrations,omitempty"`
}
