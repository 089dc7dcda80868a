package model

import (
	"encoding/json"
	"regexp"
)

// API is the top-level structure of a raylib_api.json document.
type API struct {
	Defines   []Definition `json:"defines"`
	Structs   []Struct     `json:"structs"`
	Aliases   []TypedIdent `json:"aliases"`
	Enums     []Enum       `json:"enums"`
	Callbacks []Function   `json:"callbacks"`
	Functions []Function   `json:"functions"`
}

// Definition kinds the generator knows how to emit. Any other kind is skipped.
const (
	DefineInt    = "INT"
	DefineString = "STRING"
)

// Definition is a named compile-time constant (a #define in raylib.h).
type Definition struct {
	Name        string          `json:"name"`
	Kind        string          `json:"type"`
	Value       json.RawMessage `json:"value"`
	Description string          `json:"description"`
}

// TypedIdent is a name paired with a C type string. Used for struct fields,
// function parameters and type aliases.
type TypedIdent struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// IsVariadic reports whether the ident stands for C varargs.
func (t TypedIdent) IsVariadic() bool {
	return t.Type == VariadicType
}

// VariadicType is the parameter type string raylib uses for "...".
const VariadicType = "..."

// Struct is a C struct with ordered fields.
type Struct struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Fields      []TypedIdent `json:"fields"`
}

// Enum is a C enum with its values in declaration order.
type Enum struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Values      []EnumValue `json:"values"`
}

// EnumValue is one enumerator.
type EnumValue struct {
	Name        string `json:"name"`
	Value       uint32 `json:"value"`
	Description string `json:"description"`
}

// Distinct returns the values with duplicate numeric codes removed, keeping
// the first occurrence. The dropped values are returned separately so callers
// can report them.
func (e *Enum) Distinct() (kept, dropped []EnumValue) {
	seen := make(map[uint32]bool, len(e.Values))
	for _, v := range e.Values {
		if seen[v.Value] {
			dropped = append(dropped, v)
			continue
		}
		seen[v.Value] = true
		kept = append(kept, v)
	}
	return kept, dropped
}

// Function describes an exported function or a callback signature.
type Function struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ReturnType  string       `json:"returnType"`
	Params      []TypedIdent `json:"params,omitempty"`
}

// ReturnsVoid reports whether the function has no return value.
func (f *Function) ReturnsVoid() bool {
	return f.ReturnType == "void"
}

// IntValue decodes an INT definition's value. Only non-negative integers are accepted.
func (d *Definition) IntValue() (uint64, error) {
	var v uint64
	if err := json.Unmarshal(d.Value, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// StringValue decodes a STRING definition's value.
func (d *Definition) StringValue() (string, error) {
	var v string
	if err := json.Unmarshal(d.Value, &v); err != nil {
		return "", err
	}
	return v, nil
}

var screamingSnakePattern = regexp.MustCompile(`^[A-Z0-9]+(_[A-Z0-9]+)*$`)

// IsScreamingSnake reports whether name looks like a C enumerator (FOO_BAR_2D).
func IsScreamingSnake(name string) bool {
	return screamingSnakePattern.MatchString(name)
}

// TypeNames returns every declared type name (structs, aliases, enums, callbacks).
func (a *API) TypeNames() map[string]bool {
	names := make(map[string]bool)
	for _, s := range a.Structs {
		names[s.Name] = true
	}
	for _, al := range a.Aliases {
		names[al.Name] = true
	}
	for _, e := range a.Enums {
		names[e.Name] = true
	}
	for _, cb := range a.Callbacks {
		names[cb.Name] = true
	}
	return names
}
