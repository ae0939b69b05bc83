package migrate

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/iancoleman/orderedmap"

	"github.com/zachsnow/laserfingers/internal/document"
	"github.com/zachsnow/laserfingers/internal/geo"
	"github.com/zachsnow/laserfingers/internal/model/convert"
	"github.com/zachsnow/laserfingers/internal/model/core"
	"github.com/zachsnow/laserfingers/internal/parser"
)

// StepUnifyKinds is the name of the legacy-kind unification step.
const StepUnifyKinds = "unify-kinds"

// motionTolerance bounds the position drift allowed between a legacy sweep
// and its converted endpoint path when motion verification is on.
const motionTolerance = 1e-9

// UnifyKinds replaces nested legacy laser kinds (sweeper, rotor, segment)
// with flat ray/segment records. Converted cycle times are already full
// round trips, so the step also records the cycle-correction marker. An
// unrecognized kind tag fails the whole file.
//
// When verifyMotion is set, each converted sweeper is cross-checked by
// sampling its endpoint path over one cycle against the legacy sweep motion.
func UnifyKinds(p *parser.Parser, verifyMotion bool) Step {
	return Step{
		Name: StepUnifyKinds,
		Apply: func(root *orderedmap.OrderedMap) (bool, error) {
			changed, err := mapArray(root, "lasers", func(laser orderedmap.OrderedMap) (interface{}, bool, error) {
				if !document.Has(&laser, "kind") {
					return nil, false, nil
				}

				raw, err := json.Marshal(laser)
				if err != nil {
					return nil, false, fmt.Errorf("error re-encoding laser: %w", err)
				}
				var legacy parser.LegacyLaser
				if err := json.Unmarshal(raw, &legacy); err != nil {
					return nil, false, fmt.Errorf("error decoding legacy laser: %w", err)
				}

				converted, err := p.ParseLegacyLaser(legacy)
				if err != nil {
					return nil, false, err
				}

				if verifyMotion && legacy.Kind.Type == "sweeper" {
					if err := verifySweepMotion(*legacy.Kind.Sweeper, converted); err != nil {
						return nil, false, fmt.Errorf("laser %q: %w", legacy.ID, err)
					}
				}

				return *convert.LaserToNode(converted), true, nil
			})
			if err != nil {
				return false, err
			}
			if changed {
				addMarker(root, StepUnifyKinds)
				addMarker(root, StepFixCycleTimes)
			}
			return changed, nil
		},
	}
}

// verifySweepMotion samples the converted endpoint path over one full cycle
// and compares each position against the legacy sweep: out during the first
// sweepSeconds, back during the second.
func verifySweepMotion(sweep parser.SweeperKind, converted core.Laser) error {
	path := converted.Endpoints[0]
	const samples = 8
	cycle := sweep.SweepSeconds * 2
	for i := 0; i <= samples; i++ {
		at := cycle * float64(i) / samples
		got, err := geo.PositionAt(path, at)
		if err != nil {
			return fmt.Errorf("sampling converted path: %w", err)
		}
		want := legacySweepPosition(sweep, at)
		if math.Abs(got.X-want.X) > motionTolerance || math.Abs(got.Y-want.Y) > motionTolerance {
			return fmt.Errorf("converted motion diverges at t=%g: got (%g,%g), want (%g,%g)",
				at, got.X, got.Y, want.X, want.Y)
		}
	}
	return nil
}

// legacySweepPosition is the original sweeper motion: linear start→end over
// sweepSeconds, then the mirror leg back.
func legacySweepPosition(sweep parser.SweeperKind, at float64) core.Position2D {
	cycle := sweep.SweepSeconds * 2
	elapsed := math.Mod(at, cycle)
	if elapsed < 0 {
		elapsed += cycle
	}
	f := elapsed / sweep.SweepSeconds
	if f > 1 {
		f = 2 - f
	}
	return core.Position2D{
		X: sweep.Start.X + (sweep.End.X-sweep.Start.X)*f,
		Y: sweep.Start.Y + (sweep.End.Y-sweep.Start.Y)*f,
	}
}
