// Package parser decodes the three legacy laser kinds (sweeper, rotor,
// segment) into canonical core records, one decoder per kind.
package parser

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/zachsnow/laserfingers/internal/model/core"
)

// ErrUnknownKind is returned when a legacy laser carries an unrecognized
// kind tag. The wrapping error names the tag.
var ErrUnknownKind = fmt.Errorf("unknown laser kind")

// Parser provides pure legacy JSON -> core model conversion.
// It has zero external dependencies beyond a logger.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new parser with only a logger dependency.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseLaser decodes one legacy laser document into a canonical Laser.
func (p *Parser) ParseLaser(data []byte) (core.Laser, error) {
	var legacy LegacyLaser
	if err := json.Unmarshal(data, &legacy); err != nil {
		return core.Laser{}, fmt.Errorf("error decoding legacy laser: %w", err)
	}
	return p.ParseLegacyLaser(legacy)
}

// ParseLegacyLaser converts an already-decoded legacy laser. The common
// fields carry over as-is; the nested kind decodes per its tag.
func (p *Parser) ParseLegacyLaser(legacy LegacyLaser) (core.Laser, error) {
	laser := core.Laser{
		ID:        legacy.ID,
		Color:     legacy.Color,
		Thickness: legacy.Thickness,
		Enabled:   legacy.Enabled,
		Cadence:   legacy.Cadence,
	}

	switch legacy.Kind.Type {
	case "sweeper":
		if legacy.Kind.Sweeper == nil {
			return core.Laser{}, fmt.Errorf("laser %q: sweeper kind missing payload", legacy.ID)
		}
		p.parseSweeper(*legacy.Kind.Sweeper, &laser)
	case "rotor":
		if legacy.Kind.Rotor == nil {
			return core.Laser{}, fmt.Errorf("laser %q: rotor kind missing payload", legacy.ID)
		}
		p.parseRotor(*legacy.Kind.Rotor, &laser)
	case "segment":
		if legacy.Kind.Segment == nil {
			return core.Laser{}, fmt.Errorf("laser %q: segment kind missing payload", legacy.ID)
		}
		p.parseSegment(*legacy.Kind.Segment, &laser)
	default:
		return core.Laser{}, fmt.Errorf("laser %q: %w %q", legacy.ID, ErrUnknownKind, legacy.Kind.Type)
	}

	for i, path := range laser.Endpoints {
		laser.Endpoints[i] = CollapseStationaryPoints(path)
	}

	p.logger.Debug("Decoded legacy laser", "id", legacy.ID, "kind", legacy.Kind.Type, "type", string(laser.Type))
	return laser, nil
}

// stationaryPath builds a canonical single-point stationary path.
func stationaryPath(pt core.Position2D) core.EndpointPath {
	return core.EndpointPath{Points: []core.Position2D{pt}}
}

// CollapseStationaryPoints drops redundant duplicate points from a stationary
// path; canonical stationary paths have exactly one point, but legacy files
// sometimes repeat it.
func CollapseStationaryPoints(path core.EndpointPath) core.EndpointPath {
	if !path.Stationary() || len(path.Points) < 2 {
		return path
	}
	for _, pt := range path.Points[1:] {
		if pt != path.Points[0] {
			return path
		}
	}
	path.Points = path.Points[:1]
	return path
}
