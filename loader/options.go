package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Solar-Falcon/raylib-ffigen/model"
	"gopkg.in/yaml.v3"
)

// LoadOptions reads a YAML options file and merges it over the defaults.
// An empty path returns the defaults.
func LoadOptions(path string) (*model.Options, error) {
	if path == "" {
		return model.DefaultOptions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions schema-validates and decodes options YAML.
func ParseOptions(data []byte) (*model.Options, error) {
	if err := ValidateOptionsYAML(data); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var opts model.Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing options: %w", err)
	}
	opts.Merge(model.DefaultOptions())
	return &opts, nil
}

// MarshalOptions renders options as YAML, the format LoadOptions reads.
func MarshalOptions(opts *model.Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}
	return buf.Bytes(), nil
}
