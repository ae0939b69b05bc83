// Package geo implements the endpoint-path motion model: polyline
// construction and position-at-time sampling with round-trip cycles.
package geo

import (
	"errors"
	"math"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/zachsnow/laserfingers/internal/model/core"
)

// ErrEmptyPath is returned when an endpoint path has no points.
var ErrEmptyPath = errors.New("endpoint path has no points")

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// SweepHeading returns the angle a sweeping ray points at: perpendicular to
// its travel direction, atan2(dy, dx) + π/2.
func SweepHeading(start, end core.Position2D) float64 {
	dx := end.X - start.X
	dy := end.Y - start.Y
	return math.Atan2(dy, dx) + math.Pi/2
}

// PathLineString builds a geom.LineString from a polyline of 2 or more points.
func PathLineString(points []core.Position2D) (geom.LineString, error) {
	if len(points) < 2 {
		return geom.LineString{}, errors.New("polyline must have at least 2 points")
	}
	flatCoords := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flatCoords = append(flatCoords, p.X, p.Y)
	}
	seq := geom.NewSequence(flatCoords, geom.DimXY)
	return geom.NewLineString(seq)
}

// PathLength returns the one-way length of a polyline. A single point has
// length zero.
func PathLength(points []core.Position2D) float64 {
	if len(points) < 2 {
		return 0
	}
	ls, err := PathLineString(points)
	if err != nil {
		return 0
	}
	return ls.Length()
}

// PositionAt samples an endpoint path at `at` seconds after level load,
// honoring the path's phase offset. A moving path walks its polyline from
// the first point to the last during the first half of the cycle and back
// during the second half.
func PositionAt(path core.EndpointPath, at float64) (core.Position2D, error) {
	if len(path.Points) == 0 {
		return core.Position2D{}, ErrEmptyPath
	}
	if path.Stationary() || len(path.Points) < 2 {
		return path.Points[0], nil
	}

	cycle := *path.CycleSeconds
	if cycle <= 0 {
		return core.Position2D{}, errors.New("cycleSeconds must be positive")
	}

	elapsed := math.Mod(path.Phase+at, cycle)
	if elapsed < 0 {
		elapsed += cycle
	}

	length := PathLength(path.Points)
	if length == 0 {
		return path.Points[0], nil
	}

	// Distance along the one-way polyline: out on the first half-cycle,
	// back on the second.
	half := cycle / 2
	var dist float64
	if elapsed <= half {
		dist = elapsed / half * length
	} else {
		dist = (cycle - elapsed) / half * length
	}

	return walkPolyline(path.Points, dist), nil
}

// walkPolyline returns the point `dist` units along the polyline, clamped to
// its far end.
func walkPolyline(points []core.Position2D, dist float64) core.Position2D {
	remaining := dist
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		if seg == 0 {
			continue
		}
		if remaining <= seg {
			f := remaining / seg
			return core.Position2D{
				X: a.X + (b.X-a.X)*f,
				Y: a.Y + (b.Y-a.Y)*f,
			}
		}
		remaining -= seg
	}
	return points[len(points)-1]
}
