// Package schema produces a machine-readable JSON Schema for the canonical
// level format, for validation and editor tooling.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/zachsnow/laserfingers/internal/model/core"
)

// Generate reflects the canonical Level shape into a JSON Schema. Level
// files carry fields beyond this module's concern, so additional properties
// stay open.
func Generate() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	levelSchema := reflector.ReflectFromType(reflect.TypeOf(core.Level{}))
	if levelSchema == nil {
		return nil, fmt.Errorf("failed to reflect level schema")
	}
	levelSchema.Version = ""
	levelSchema.Title = "Laserfingers Level"
	levelSchema.Description = "Canonical level document: flat ray/segment lasers and buttons with endpoints arrays."
	levelSchema.AdditionalProperties = &jsonschema.Schema{}

	return levelSchema, nil
}

// Write generates the schema and writes it to outPath with the same
// formatting contract as level files.
func Write(outPath string) error {
	levelSchema, err := Generate()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(levelSchema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}
