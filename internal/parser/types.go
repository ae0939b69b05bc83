package parser

import (
	"encoding/json"

	"github.com/zachsnow/laserfingers/internal/model/core"
)

// LegacyLaser is the pre-unification on-disk laser shape: common fields plus
// a nested kind object discriminated by kind.type.
type LegacyLaser struct {
	ID        string          `json:"id"`
	Color     string          `json:"color"`
	Thickness float64         `json:"thickness"`
	Enabled   *bool           `json:"enabled"`
	Cadence   json.RawMessage `json:"cadence"`
	Kind      LegacyKind      `json:"kind"`
}

// LegacyKind holds the nested tagged variant. Exactly one of the kind
// payloads is set, matching Type.
type LegacyKind struct {
	Type    string       `json:"type"`
	Sweeper *SweeperKind `json:"sweeper"`
	Rotor   *RotorKind   `json:"rotor"`
	Segment *SegmentKind `json:"segment"`
}

// SweeperKind is a ray whose origin moves start→end in SweepSeconds and
// implicitly returns, pointing perpendicular to its travel direction.
type SweeperKind struct {
	Start        core.Position2D `json:"start"`
	End          core.Position2D `json:"end"`
	SweepSeconds float64         `json:"sweepSeconds"`
}

// RotorKind is a ray pivoting around a fixed center.
type RotorKind struct {
	Center                core.Position2D `json:"center"`
	SpeedDegreesPerSecond float64         `json:"speedDegreesPerSecond"`
	InitialAngleDegrees   float64         `json:"initialAngleDegrees"`
}

// SegmentKind is a fixed beam between two points.
type SegmentKind struct {
	Start core.Position2D `json:"start"`
	End   core.Position2D `json:"end"`
}
