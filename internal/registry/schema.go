package registry

import (
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

// registrySchema pins the wire format of registry-v2.json. Validation runs
// before decoding so a structurally wrong document fails with a schema error
// instead of silently indexing nothing.
const registrySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["organs"],
  "properties": {
    "organs": {
      "type": "object",
      "patternProperties": {
        "^(ORGAN-(I|II|III|IV|V|VI|VII)|META)$": {
          "type": "object",
          "properties": {
            "repositories": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["name", "org"],
                "properties": {
                  "name": {"type": "string", "minLength": 1},
                  "org": {"type": "string", "minLength": 1},
                  "status": {"type": "string"},
                  "description": {"type": "string"}
                }
              }
            }
          }
        }
      },
      "additionalProperties": false
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func validateDocument(data []byte) error {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiledSchema, schemaErr = compiler.Compile([]byte(registrySchema))
	})
	if schemaErr != nil {
		return fmt.Errorf("compile registry schema: %w", schemaErr)
	}

	result := compiledSchema.ValidateJSON(data)
	if !result.IsValid() {
		return fmt.Errorf("registry schema validation failed: %v", result.Errors)
	}
	return nil
}
