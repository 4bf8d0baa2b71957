package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/region"
)

// RegionSchema describes the region file format.
func RegionSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(region.Document))
	schema.Title = "Tilewalk Region"
	schema.Description = "A named region: its tiles and non-player entities."
	return schema
}

// WorldSchema describes the world save format.
func WorldSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(new(world.Document))
	schema.Title = "Tilewalk World Save"
	schema.Description = "Player, clock, camera and active region of a saved world."
	return schema
}

// WriteSchema writes schema as indented JSON, replacing outPath atomically.
func WriteSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	if err := writeAtomic(outPath, append(data, '\n')); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}
