package migrate

import (
	"github.com/iancoleman/orderedmap"

	"github.com/zachsnow/laserfingers/internal/document"
)

// StepFixCycleTimes is the name of the cycle-time correction step.
const StepFixCycleTimes = "fix-cycle-times"

// FixCycleTimes doubles every non-null laser cycleSeconds written as a
// one-way sweep time instead of a full round trip. One-way and round-trip
// values are indistinguishable by shape, so the step is gated on the
// document's provenance marker: kind unification emits round trips and
// records the marker up front, and this step records it after correcting,
// making a second run a no-op.
func FixCycleTimes() Step {
	return Step{
		Name: StepFixCycleTimes,
		Apply: func(root *orderedmap.OrderedMap) (bool, error) {
			if hasMarker(root, StepFixCycleTimes) {
				return false, nil
			}
			changed, err := mapArray(root, "lasers", func(laser orderedmap.OrderedMap) (interface{}, bool, error) {
				ch := eachPath(&laser, func(path orderedmap.OrderedMap) (orderedmap.OrderedMap, bool) {
					cycle, ok := document.Number(&path, "cycleSeconds")
					if !ok {
						return path, false
					}
					path.Set("cycleSeconds", cycle*2)
					return path, true
				})
				return laser, ch, nil
			})
			if err != nil {
				return false, err
			}
			if changed {
				addMarker(root, StepFixCycleTimes)
			}
			return changed, nil
		},
	}
}
