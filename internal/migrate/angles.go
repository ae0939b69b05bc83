package migrate

import (
	"github.com/iancoleman/orderedmap"

	"github.com/zachsnow/laserfingers/internal/document"
)

// StepRemoveAngles is the name of the angle-removal step.
const StepRemoveAngles = "remove-angles"

// RemoveAngles deletes the stored initialAngle from ray lasers; consumers
// derive the angle from endpoint-path geometry instead. Flat records still
// typed sweeper/rotor are rays too.
func RemoveAngles() Step {
	return Step{
		Name: StepRemoveAngles,
		Apply: func(root *orderedmap.OrderedMap) (bool, error) {
			return mapArray(root, "lasers", func(laser orderedmap.OrderedMap) (interface{}, bool, error) {
				typ, _ := document.String(&laser, "type")
				switch typ {
				case "ray", "sweeper", "rotor":
				default:
					return nil, false, nil
				}
				if !document.Has(&laser, "initialAngle") {
					return nil, false, nil
				}
				laser.Delete("initialAngle")
				return laser, true, nil
			})
		},
	}
}
