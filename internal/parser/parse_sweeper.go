package parser

import (
	"github.com/zachsnow/laserfingers/internal/geo"
	"github.com/zachsnow/laserfingers/internal/model/core"
)

// parseSweeper converts a legacy sweeper kind into a ray laser whose origin
// walks the start→end polyline. The legacy sweepSeconds is the one-way time,
// so one full round trip is twice that. The ray points perpendicular to its
// own travel direction.
func (p *Parser) parseSweeper(kind SweeperKind, laser *core.Laser) {
	cycle := kind.SweepSeconds * 2
	laser.Type = core.LaserTypeRay
	laser.Endpoints = []core.EndpointPath{
		{
			Points:       []core.Position2D{kind.Start, kind.End},
			CycleSeconds: &cycle,
		},
	}
	laser.InitialAngle = geo.SweepHeading(kind.Start, kind.End)
	laser.RotationSpeed = 0
}
