package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/gctb/internal/logging"
	"github.com/abhisek/gctb/internal/registry"
)

const schemaURL = "schema://gctb-config.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// schemaDefinition describes the config file. Test keys are the registry's
// short identifiers.
func schemaDefinition() map[string]any {
	// Level names match case-insensitively, like the env override.
	levelPattern := "(?i)^(" + strings.Join(logging.Levels, "|") + ")$"

	testProps := map[string]any{}
	for _, id := range registry.IDs() {
		testProps[id.String()] = map[string]any{"$ref": "#/$defs/test"}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"log": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"level": map[string]any{"type": "string", "pattern": levelPattern},
					"file":  map[string]any{"type": "string"},
				},
			},
			"tests": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           testProps,
			},
		},
		"$defs": map[string]any{
			"test": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"practice_count": map[string]any{"type": "integer", "minimum": 1, "maximum": 250},
					"exam_count":     map[string]any{"type": "integer", "minimum": 1, "maximum": 250},
					"time_limit_sec": map[string]any{"type": "integer", "minimum": 1, "maximum": 7200},
					"phase_ms": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "integer", "minimum": 500, "maximum": 60000},
					},
				},
			},
		},
	}
}

// getCompiledSchema compiles the config schema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler wants a plain decoded JSON value.
		var def any
		def, schemaErr = normalize(schemaDefinition())
		if schemaErr != nil {
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validateRaw checks a decoded config document against the schema.
func validateRaw(raw map[string]any) error {
	sch, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	doc, err := normalize(raw)
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// normalize round-trips v through JSON so numbers, maps and slices have
// the types the validator expects.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	out, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return out, nil
}
