package migrate

import (
	"fmt"

	"github.com/zachsnow/laserfingers/internal/parser"
)

// Chain returns the five migrations in their canonical order. Kind
// unification must precede cycle-time correction and endpoints-array
// generalization, which operate on the unified flat shape; the remaining
// steps key off field names and tolerate any ordering, no-op-ing when their
// precondition field is absent.
func Chain(p *parser.Parser, verifyMotion bool) []Step {
	return []Step{
		UnifyKinds(p, verifyMotion),
		FixCycleTimes(),
		EndpointsArray(),
		RemoveAngles(),
		RenameInitialT(),
	}
}

// ByName resolves a single named step from the chain.
func ByName(name string, p *parser.Parser, verifyMotion bool) (Step, error) {
	for _, step := range Chain(p, verifyMotion) {
		if step.Name == name {
			return step, nil
		}
	}
	return Step{}, fmt.Errorf("unknown migration step %q", name)
}
