package parser

import (
	"github.com/zachsnow/laserfingers/internal/geo"
	"github.com/zachsnow/laserfingers/internal/model/core"
)

// parseRotor converts a legacy rotor kind into a ray laser with a stationary
// pivot. Rotation is not endpoint motion; it carries over as rotationSpeed,
// with the legacy degree values converted to radians.
func (p *Parser) parseRotor(kind RotorKind, laser *core.Laser) {
	laser.Type = core.LaserTypeRay
	laser.Endpoints = []core.EndpointPath{stationaryPath(kind.Center)}
	laser.InitialAngle = geo.Radians(kind.InitialAngleDegrees)
	laser.RotationSpeed = geo.Radians(kind.SpeedDegreesPerSecond)
}
