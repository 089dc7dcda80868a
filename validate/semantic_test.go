package validate

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Solar-Falcon/raylib-ffigen/loader"
	"github.com/Solar-Falcon/raylib-ffigen/model"
)

func minimalAPI() *model.API {
	return &model.API{
		Defines: []model.Definition{
			{Name: "RAYLIB_VERSION_MAJOR", Kind: model.DefineInt, Value: json.RawMessage(`5`)},
			{Name: "RAYLIB_VERSION", Kind: model.DefineString, Value: json.RawMessage(`"5.0"`)},
		},
		Structs: []model.Struct{
			{
				Name: "Vector2",
				Fields: []model.TypedIdent{
					{Name: "x", Type: "float"},
					{Name: "y", Type: "float"},
				},
			},
		},
		Enums: []model.Enum{
			{
				Name: "CameraMode",
				Values: []model.EnumValue{
					{Name: "CAMERA_CUSTOM", Value: 0},
					{Name: "CAMERA_FREE", Value: 1},
				},
			},
		},
		Functions: []model.Function{
			{
				Name:       "GetMousePosition",
				ReturnType: "Vector2",
			},
			{
				Name:       "TraceLog",
				ReturnType: "void",
				Params: []model.TypedIdent{
					{Name: "logLevel", Type: "int"},
					{Name: "text", Type: "const char *"},
					{Name: "args", Type: "..."},
				},
			},
		},
	}
}

func hasError(result *ValidationResult, path, substr string) bool {
	for _, e := range result.Errors {
		if e.Path == path && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidate_ValidMinimal(t *testing.T) {
	result := Validate(minimalAPI(), nil)
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestValidate_Fixture(t *testing.T) {
	api, err := loader.LoadAPI(filepath.Join("..", "testdata", "raylib_api.json"))
	if err != nil {
		t.Fatal(err)
	}
	result := Validate(api, nil)
	if !result.IsValid() {
		t.Fatalf("expected valid, got errors:\n%s", result.Error())
	}

	// LoadFontData returns GlyphInfo, which the fixture does not declare.
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	w := result.Warnings[0]
	if w.Path != "functions[5].returnType" || !strings.Contains(w.Message, "GlyphInfo") {
		t.Errorf("unexpected warning %s", w.Error())
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(api *model.API)
		path    string
		message string
	}{
		{
			name: "duplicate struct and enum name",
			mutate: func(api *model.API) {
				api.Enums[0].Name = "Vector2"
			},
			path:    "enums[0].name",
			message: `duplicate type name "Vector2"`,
		},
		{
			name: "alias shadows struct",
			mutate: func(api *model.API) {
				api.Aliases = append(api.Aliases, model.TypedIdent{Name: "Vector2", Type: "Vector2"})
			},
			path:    "aliases[0].name",
			message: "duplicate type name",
		},
		{
			name: "duplicate callback name",
			mutate: func(api *model.API) {
				api.Callbacks = append(api.Callbacks, model.Function{Name: "CameraMode", ReturnType: "void"})
			},
			path:    "callbacks[0].name",
			message: "duplicate type name",
		},
		{
			name: "duplicate function",
			mutate: func(api *model.API) {
				api.Functions = append(api.Functions, model.Function{Name: "TraceLog", ReturnType: "void"})
			},
			path:    "functions[2].name",
			message: `duplicate function name "TraceLog"`,
		},
		{
			name: "duplicate field",
			mutate: func(api *model.API) {
				api.Structs[0].Fields[1].Name = "x"
			},
			path:    "structs[0].fields[1].name",
			message: `duplicate field name "x"`,
		},
		{
			name: "malformed field array",
			mutate: func(api *model.API) {
				api.Structs[0].Fields[0].Type = "float[4"
			},
			path:    "structs[0].fields[0].type",
			message: "missing ']'",
		},
		{
			name: "malformed return type",
			mutate: func(api *model.API) {
				api.Functions[0].ReturnType = "Vector2[two]"
			},
			path:    "functions[0].returnType",
			message: "invalid size",
		},
		{
			name: "variadic not last",
			mutate: func(api *model.API) {
				p := api.Functions[1].Params
				p[1], p[2] = p[2], p[1]
			},
			path:    "functions[1].params[1].type",
			message: "variadic parameter must be last",
		},
		{
			name: "negative INT define",
			mutate: func(api *model.API) {
				api.Defines[0].Value = json.RawMessage(`-3`)
			},
			path:    "defines[0].value",
			message: "non-negative integer",
		},
		{
			name: "STRING define holding a number",
			mutate: func(api *model.API) {
				api.Defines[1].Value = json.RawMessage(`5`)
			},
			path:    "defines[1].value",
			message: "must hold a string",
		},
		{
			name: "lower-case enum value",
			mutate: func(api *model.API) {
				api.Enums[0].Values[1].Name = "camera_free"
			},
			path:    "enums[0].values[1].name",
			message: "SCREAMING_SNAKE_CASE",
		},
		{
			name: "enum value consumed by prefix",
			mutate: func(api *model.API) {
				api.Enums[0].Values[0].Name = "CAMERA"
			},
			path:    "enums[0].values[0].name",
			message: "strips 1 prefix word",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := minimalAPI()
			tt.mutate(api)
			result := Validate(api, nil)
			if result.IsValid() {
				t.Fatal("expected validation error")
			}
			if !hasError(result, tt.path, tt.message) {
				t.Errorf("expected error at %s containing %q, got:\n%s", tt.path, tt.message, result.Error())
			}
		})
	}
}

func TestValidate_PrefixCountFromOptions(t *testing.T) {
	api := minimalAPI()
	opts := model.DefaultOptions()
	opts.DoublePrefixEnums = []string{"CameraMode"}

	result := Validate(api, opts)
	if !hasError(result, "enums[0].values[0].name", "strips 2 prefix word") {
		t.Errorf("two-word values should fail with a double prefix, got:\n%s", result.Error())
	}
}

func TestValidate_OtherDefineKindsIgnored(t *testing.T) {
	api := minimalAPI()
	api.Defines = append(api.Defines,
		model.Definition{Name: "PI", Kind: "FLOAT", Value: json.RawMessage(`3.14`)},
		model.Definition{Name: "RAYLIB_H", Kind: "GUARD", Value: json.RawMessage(`""`)},
	)
	if result := Validate(api, nil); !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
}

func TestValidate_Warnings(t *testing.T) {
	api := minimalAPI()
	api.Structs = append(api.Structs, model.Struct{
		Name: "AudioStream",
		Fields: []model.TypedIdent{
			{Name: "buffer", Type: "rAudioBuffer *"},
			{Name: "ok", Type: "bool"},
			{Name: "mode", Type: "CameraMode"},
			{Name: "img", Type: "Image *"},
		},
	})

	result := Validate(api, nil)
	if !result.IsValid() {
		t.Fatalf("warnings must not invalidate: %s", result.Error())
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
	if result.Warnings[0].Path != "structs[1].fields[3].type" {
		t.Errorf("warning path = %s", result.Warnings[0].Path)
	}
}

func TestValidationResult_Error(t *testing.T) {
	r := &ValidationResult{}
	if r.Error() != "" {
		t.Error("valid result should render empty")
	}
	r.addError("a", "first")
	r.addError("b", "second")
	if got := r.Error(); got != "a: first\nb: second" {
		t.Errorf("Error() = %q", got)
	}
}
