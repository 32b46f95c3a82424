package syllabus

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// planSchema constrains imported study plans before any field is trusted.
const planSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["exam", "subjects"],
  "properties": {
    "exam": {
      "type": "object",
      "required": ["name", "date"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
        "cutoff_score": {"type": "integer", "minimum": 0, "maximum": 100},
        "total_questions": {"type": "integer", "minimum": 1}
      }
    },
    "subjects": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "weight"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "weight": {"type": "integer", "minimum": 1},
          "topics": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    },
    "scheduler": {
      "type": "object",
      "properties": {
        "daily_available_hours": {"type": "number", "exclusiveMinimum": 0},
        "rest_days": {
          "type": "array",
          "items": {"type": "integer", "minimum": 0, "maximum": 6}
        },
        "preferred_start_time": {"type": "string", "pattern": "^\\d{2}:\\d{2}$"},
        "block_duration_minutes": {"type": "integer", "minimum": 1},
        "break_duration_minutes": {"type": "integer", "minimum": 0}
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled plan schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(planSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse plan schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://plan.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://plan.json")
	})
	return compiledSchema, compileErr
}
