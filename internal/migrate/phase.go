package migrate

import (
	"github.com/iancoleman/orderedmap"

	"github.com/zachsnow/laserfingers/internal/document"
)

// StepRenameInitialT is the name of the phase-field rename step.
const StepRenameInitialT = "rename-initial-t"

// RenameInitialT renames the endpoint-path initialT field to t, dropping it
// entirely when the phase is zero so a zero phase is never materialized on
// disk. The step keys off the field name alone and so reaches every endpoint
// path on lasers and buttons, in singular or array form.
func RenameInitialT() Step {
	return Step{
		Name: StepRenameInitialT,
		Apply: func(root *orderedmap.OrderedMap) (bool, error) {
			renameIn := func(obj orderedmap.OrderedMap) (interface{}, bool, error) {
				ch := eachPath(&obj, func(path orderedmap.OrderedMap) (orderedmap.OrderedMap, bool) {
					if !document.Has(&path, "initialT") {
						return path, false
					}
					phase, isNumber := document.Number(&path, "initialT")
					path.Delete("initialT")
					if isNumber && phase != 0 {
						path.Set("t", phase)
					}
					return path, true
				})
				return obj, ch, nil
			}

			lasersChanged, err := mapArray(root, "lasers", renameIn)
			if err != nil {
				return false, err
			}
			buttonsChanged, err := mapArray(root, "buttons", renameIn)
			if err != nil {
				return false, err
			}
			return lasersChanged || buttonsChanged, nil
		},
	}
}
