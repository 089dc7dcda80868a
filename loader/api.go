package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Solar-Falcon/raylib-ffigen/model"
)

// LoadAPI reads and parses a raylib_api.json file.
// It validates the document against the JSON Schema before decoding.
func LoadAPI(path string) (*model.API, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading API description: %w", err)
	}
	return ParseAPI(data)
}

// ParseAPI schema-validates and decodes an in-memory raylib_api.json document.
func ParseAPI(data []byte) (*model.API, error) {
	if err := ValidateAPIJSON(data); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var api model.API
	if err := json.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("parsing API description: %w", err)
	}
	return &api, nil
}
