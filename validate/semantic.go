package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Solar-Falcon/raylib-ffigen/gen"
	"github.com/Solar-Falcon/raylib-ffigen/model"
	"github.com/Solar-Falcon/raylib-ffigen/resolver"
)

// ValidationError represents a single semantic validation error.
type ValidationError struct {
	Path    string // e.g., "functions[3].params[1].type"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult holds all validation errors, plus warnings that do not
// stop generation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) addError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) addWarning(path, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// Validate performs semantic validation on a loaded raylib API description.
// opts may be nil, in which case the default naming tables are used.
func Validate(api *model.API, opts *model.Options) *ValidationResult {
	if opts == nil {
		opts = model.DefaultOptions()
	}
	result := &ValidationResult{}
	known := api.TypeNames()

	for i, d := range api.Defines {
		path := fmt.Sprintf("defines[%d]", i)
		switch d.Kind {
		case model.DefineInt:
			if _, err := d.IntValue(); err != nil {
				result.addError(path+".value", fmt.Sprintf("INT define %q must hold a non-negative integer", d.Name))
			}
		case model.DefineString:
			if _, err := d.StringValue(); err != nil {
				result.addError(path+".value", fmt.Sprintf("STRING define %q must hold a string", d.Name))
			}
		}
	}

	// Type names share one namespace in the generated module.
	typeSeen := make(map[string]bool)
	checkTypeName := func(path, name string) {
		if typeSeen[name] {
			result.addError(path, fmt.Sprintf("duplicate type name %q", name))
		}
		typeSeen[name] = true
	}

	for i, s := range api.Structs {
		structPath := fmt.Sprintf("structs[%d]", i)
		checkTypeName(structPath+".name", s.Name)

		fieldSeen := make(map[string]bool)
		for j, f := range s.Fields {
			fieldPath := fmt.Sprintf("%s.fields[%d]", structPath, j)
			if fieldSeen[f.Name] {
				result.addError(fieldPath+".name", fmt.Sprintf("duplicate field name %q in struct %q", f.Name, s.Name))
			}
			fieldSeen[f.Name] = true
			validateType(result, fieldPath+".type", f.Type, known)
		}
	}

	for i, a := range api.Aliases {
		aliasPath := fmt.Sprintf("aliases[%d]", i)
		checkTypeName(aliasPath+".name", a.Name)
		validateType(result, aliasPath+".type", a.Type, known)
	}

	for i := range api.Enums {
		e := &api.Enums[i]
		enumPath := fmt.Sprintf("enums[%d]", i)
		checkTypeName(enumPath+".name", e.Name)
		validateEnum(result, enumPath, e, opts)
	}

	for i := range api.Callbacks {
		cb := &api.Callbacks[i]
		cbPath := fmt.Sprintf("callbacks[%d]", i)
		checkTypeName(cbPath+".name", cb.Name)
		validateFunction(result, cbPath, cb, known)
	}

	fnSeen := make(map[string]bool)
	for i := range api.Functions {
		fn := &api.Functions[i]
		fnPath := fmt.Sprintf("functions[%d]", i)
		if fnSeen[fn.Name] {
			result.addError(fnPath+".name", fmt.Sprintf("duplicate function name %q", fn.Name))
		}
		fnSeen[fn.Name] = true
		validateFunction(result, fnPath, fn, known)
	}

	return result
}

func validateEnum(result *ValidationResult, path string, e *model.Enum, opts *model.Options) {
	skip := opts.PrefixCount(e.Name)
	for j, v := range e.Values {
		valuePath := fmt.Sprintf("%s.values[%d].name", path, j)
		if !model.IsScreamingSnake(v.Name) {
			result.addError(valuePath, fmt.Sprintf("enum value %q must be SCREAMING_SNAKE_CASE", v.Name))
			continue
		}
		if words := strings.Count(v.Name, "_") + 1; words <= skip {
			result.addError(valuePath, fmt.Sprintf("enum value %q has %d word(s) but %q strips %d prefix word(s)", v.Name, words, e.Name, skip))
		}
	}
}

func validateFunction(result *ValidationResult, path string, fn *model.Function, known map[string]bool) {
	for k, p := range fn.Params {
		paramPath := fmt.Sprintf("%s.params[%d]", path, k)
		if p.IsVariadic() {
			if k != len(fn.Params)-1 {
				result.addError(paramPath+".type", fmt.Sprintf("variadic parameter must be last in %q", fn.Name))
			}
			continue
		}
		validateType(result, paramPath+".type", p.Type, known)
	}
	validateType(result, path+".returnType", fn.ReturnType, known)
}

// validateType checks that t parses and warns when its base type is neither a
// C fundamental nor declared anywhere in the API. Such names pass through to
// the output unchanged and will fail to compile there.
func validateType(result *ValidationResult, path, t string, known map[string]bool) {
	ct, err := resolver.ParseCType(t)
	if err != nil {
		result.addError(path, err.Error())
		return
	}
	switch {
	case gen.IsCFundamental(ct.Base), ct.Base == "bool", known[ct.Base]:
		return
	case slices.Contains(gen.OpaqueTypes, ct.Base):
		return
	}
	result.addWarning(path, fmt.Sprintf("type %q is not declared in the API", ct.Base))
}
