package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// apiSchemaJSON describes the subset of raylib_api.json the generator reads.
// Extra keys are tolerated so newer parser output still loads.
var apiSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/Solar-Falcon/raylib-ffigen/schemas/raylib-api/v1",
  "title": "raylib API description",
  "description": "Output of raylib's parser tool in JSON format.",
  "type": "object",
  "required": ["defines", "structs", "aliases", "enums", "callbacks", "functions"],
  "properties": {
    "defines": {
      "type": "array",
      "items": { "$ref": "#/$defs/define" }
    },
    "structs": {
      "type": "array",
      "items": { "$ref": "#/$defs/struct" }
    },
    "aliases": {
      "type": "array",
      "items": { "$ref": "#/$defs/typed_ident" }
    },
    "enums": {
      "type": "array",
      "items": { "$ref": "#/$defs/enum" }
    },
    "callbacks": {
      "type": "array",
      "items": { "$ref": "#/$defs/function" }
    },
    "functions": {
      "type": "array",
      "items": { "$ref": "#/$defs/function" }
    }
  },
  "$defs": {
    "identifier": { "type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_]*$" },
    "define": {
      "type": "object",
      "required": ["name", "type", "value", "description"],
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "type": { "type": "string" },
        "value": true,
        "description": { "type": "string" }
      }
    },
    "typed_ident": {
      "type": "object",
      "required": ["name", "type"],
      "properties": {
        "name": { "type": "string" },
        "type": { "type": "string", "minLength": 1 },
        "description": { "type": "string" }
      }
    },
    "struct": {
      "type": "object",
      "required": ["name", "description", "fields"],
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "description": { "type": "string" },
        "fields": {
          "type": "array",
          "items": { "$ref": "#/$defs/typed_ident" }
        }
      }
    },
    "enum": {
      "type": "object",
      "required": ["name", "description", "values"],
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "description": { "type": "string" },
        "values": {
          "type": "array",
          "items": { "$ref": "#/$defs/enum_value" }
        }
      }
    },
    "enum_value": {
      "type": "object",
      "required": ["name", "value", "description"],
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "value": { "type": "integer", "minimum": 0, "maximum": 4294967295 },
        "description": { "type": "string" }
      }
    },
    "function": {
      "type": "object",
      "required": ["name", "description", "returnType"],
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "description": { "type": "string" },
        "returnType": { "type": "string", "minLength": 1 },
        "params": {
          "type": "array",
          "items": { "$ref": "#/$defs/typed_ident" }
        }
      }
    }
  }
}`

// optionsSchemaJSON validates generator options files.
var optionsSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/Solar-Falcon/raylib-ffigen/schemas/options/v1",
  "title": "raylib-ffigen options",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "bitflag_enums": { "$ref": "#/$defs/name_list" },
    "double_prefix_enums": { "$ref": "#/$defs/name_list" },
    "digit_preserving_enums": { "$ref": "#/$defs/name_list" },
    "reserved_params": {
      "type": "object",
      "additionalProperties": { "type": "string", "minLength": 1 }
    },
    "colors": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "r", "g", "b", "a"],
        "additionalProperties": false,
        "properties": {
          "name": { "type": "string", "pattern": "^[A-Z][A-Z0-9_]*$" },
          "r": { "$ref": "#/$defs/channel" },
          "g": { "$ref": "#/$defs/channel" },
          "b": { "$ref": "#/$defs/channel" },
          "a": { "$ref": "#/$defs/channel" }
        }
      }
    },
    "targets": {
      "type": "array",
      "items": { "type": "string", "enum": ["rust", "go", "make"] },
      "minItems": 1,
      "uniqueItems": true
    },
    "rust_file": { "type": "string", "pattern": "\\.rs$" },
    "go_file": { "type": "string", "pattern": "\\.go$" },
    "go_package": { "type": "string", "pattern": "^[a-z][a-z0-9]*$" }
  },
  "$defs": {
    "name_list": {
      "type": "array",
      "items": { "type": "string", "pattern": "^[A-Z][A-Za-z0-9]*$" },
      "uniqueItems": true
    },
    "channel": { "type": "integer", "minimum": 0, "maximum": 255 }
  }
}`

var (
	compiledAPISchema     *jsonschema.Schema
	compiledOptionsSchema *jsonschema.Schema
)

func init() {
	compiledAPISchema = mustCompile("raylib_api.schema.json", apiSchemaJSON)
	compiledOptionsSchema = mustCompile("options.schema.json", optionsSchemaJSON)
}

func mustCompile(name, schema string) *jsonschema.Schema {
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(schema), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to decode schema %s: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource %s: %v", name, err))
	}
	compiled, err := c.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema %s: %v", name, err))
	}
	return compiled
}

// APISchemaJSON returns the JSON Schema used to check raylib_api.json documents.
func APISchemaJSON() string {
	return apiSchemaJSON
}

// OptionsSchemaJSON returns the JSON Schema used to check options files.
func OptionsSchemaJSON() string {
	return optionsSchemaJSON
}

// ValidateAPIJSON validates a raw raylib_api.json document against the schema.
func ValidateAPIJSON(jsonData []byte) error {
	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	if err := compiledAPISchema.Validate(raw); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ValidateOptionsYAML validates raw options YAML against the options schema.
func ValidateOptionsYAML(yamlData []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(yamlData, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		// An empty file selects every default.
		return nil
	}

	err := compiledOptionsSchema.Validate(convertYAMLToJSON(raw))
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// convertYAMLToJSON converts YAML-parsed values to the types the schema
// validator expects. Integers become float64 like encoding/json would produce.
func convertYAMLToJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			result[k] = convertYAMLToJSON(val)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = convertYAMLToJSON(val)
		}
		return result
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return v
	}
}
