package gen

import (
	"fmt"
	"sort"
	"sync"
)

// OutputFile represents a single generated file.
type OutputFile struct {
	Path    string // Relative path within output directory
	Content []byte
}

// Generator is the interface all code generators implement.
// Each generator produces output files for one target language.
// Adding a new target requires only implementing this interface and calling Register() in init().
type Generator interface {
	// Name returns the generator name (e.g., "rust_ffi", "go_consts").
	Name() string

	// Generate produces output files for the loaded API description.
	Generate(ctx *Context) ([]*OutputFile, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Generator{}
)

// Register adds a generator factory to the registry.
// Typically called from init() in each generator's file.
func Register(name string, factory func() Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("generator %q already registered", name))
	}
	registry[name] = factory
}

// Get returns a new instance of the named generator.
func Get(name string) (Generator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// All returns the names of all registered generators, sorted.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GeneratorsForTarget returns the generator names needed for a given output target.
func GeneratorsForTarget(target string) []string {
	switch target {
	case "rust":
		return []string{"rust_ffi"}
	case "go":
		return []string{"go_consts"}
	case "make":
		return []string{"makefile"}
	default:
		return nil
	}
}

// Run executes every generator needed for targets and collects their output.
// Nothing is written to disk; a failing generator aborts the whole run.
func Run(ctx *Context, targets []string) ([]*OutputFile, error) {
	var names []string
	seen := map[string]bool{}
	for _, target := range targets {
		for _, name := range GeneratorsForTarget(target) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	var files []*OutputFile
	for _, name := range names {
		g, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("generator %s is not registered", name)
		}
		Logger().Debug("running generator", "name", g.Name())

		out, err := g.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("generator %s failed: %w", name, err)
		}
		files = append(files, out...)
	}
	return files, nil
}
