package parser

import (
	"github.com/zachsnow/laserfingers/internal/model/core"
)

// parseSegment converts a legacy segment kind into a segment laser with two
// stationary single-point endpoint paths, one per physical end of the beam.
// Segments carry no angle or rotation fields.
func (p *Parser) parseSegment(kind SegmentKind, laser *core.Laser) {
	laser.Type = core.LaserTypeSegment
	laser.Endpoints = []core.EndpointPath{
		stationaryPath(kind.Start),
		stationaryPath(kind.End),
	}
}
