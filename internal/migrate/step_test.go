package migrate

import (
	"log/slog"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/require"

	"github.com/zachsnow/laserfingers/internal/document"
	"github.com/zachsnow/laserfingers/internal/parser"
)

func parseDoc(t *testing.T, src string) *orderedmap.OrderedMap {
	t.Helper()
	root, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return root
}

func encodeDoc(t *testing.T, root *orderedmap.OrderedMap) string {
	t.Helper()
	out, err := document.Encode(root)
	require.NoError(t, err)
	return string(out)
}

// applyExpectChange runs a step and requires it to report a change.
func applyExpectChange(t *testing.T, step Step, root *orderedmap.OrderedMap) {
	t.Helper()
	changed, err := step.Apply(root)
	require.NoError(t, err)
	require.True(t, changed, "step %s should have changed the document", step.Name)
}

// requireIdempotent re-applies the step and requires a byte-identical no-op.
func requireIdempotent(t *testing.T, step Step, root *orderedmap.OrderedMap) {
	t.Helper()
	before := encodeDoc(t, root)
	changed, err := step.Apply(root)
	require.NoError(t, err)
	require.False(t, changed, "step %s must no-op on its own output", step.Name)
	require.Equal(t, before, encodeDoc(t, root))
}

func testChain(t *testing.T) []Step {
	t.Helper()
	return Chain(parser.NewParser(slog.Default()), true)
}
