package model

import "slices"

// Options holds the generator's naming tables and output settings.
// Zero-valued fields in a loaded options file fall back to DefaultOptions.
type Options struct {
	BitflagEnums         []string          `yaml:"bitflag_enums,omitempty"`
	DoublePrefixEnums    []string          `yaml:"double_prefix_enums,omitempty"`
	DigitPreservingEnums []string          `yaml:"digit_preserving_enums,omitempty"`
	ReservedParams       map[string]string `yaml:"reserved_params,omitempty"`
	Colors               []NamedColor      `yaml:"colors,omitempty"`
	Targets              []string          `yaml:"targets,omitempty"`
	RustFile             string            `yaml:"rust_file,omitempty"`
	GoFile               string            `yaml:"go_file,omitempty"`
	GoPackage            string            `yaml:"go_package,omitempty"`
}

// NamedColor is an RGBA color constant emitted alongside the bindings.
// raylib.h defines these as macros, so they never appear in raylib_api.json.
type NamedColor struct {
	Name string `yaml:"name"`
	R    uint8  `yaml:"r"`
	G    uint8  `yaml:"g"`
	B    uint8  `yaml:"b"`
	A    uint8  `yaml:"a"`
}

// AllTargets is the complete list of valid output targets.
var AllTargets = []string{"rust", "go", "make"}

// DefaultColors is raylib's built-in palette.
var DefaultColors = []NamedColor{
	{"LIGHTGRAY", 200, 200, 200, 255},
	{"GRAY", 130, 130, 130, 255},
	{"DARKGRAY", 80, 80, 80, 255},
	{"YELLOW", 253, 249, 0, 255},
	{"GOLD", 255, 203, 0, 255},
	{"ORANGE", 255, 161, 0, 255},
	{"PINK", 255, 109, 194, 255},
	{"RED", 230, 41, 55, 255},
	{"MAROON", 190, 33, 55, 255},
	{"GREEN", 0, 228, 48, 255},
	{"LIME", 0, 158, 47, 255},
	{"DARKGREEN", 0, 117, 44, 255},
	{"SKYBLUE", 102, 191, 255, 255},
	{"BLUE", 0, 121, 241, 255},
	{"DARKBLUE", 0, 82, 172, 255},
	{"PURPLE", 200, 122, 255, 255},
	{"VIOLET", 135, 60, 190, 255},
	{"DARKPURPLE", 112, 31, 126, 255},
	{"BEIGE", 211, 176, 131, 255},
	{"BROWN", 127, 106, 79, 255},
	{"DARKBROWN", 76, 63, 47, 255},
	{"WHITE", 255, 255, 255, 255},
	{"BLACK", 0, 0, 0, 255},
	{"BLANK", 0, 0, 0, 0},
	{"MAGENTA", 255, 0, 255, 255},
	{"RAYWHITE", 245, 245, 245, 255},
}

// DefaultOptions returns the tables matching raylib's naming conventions.
func DefaultOptions() *Options {
	return &Options{
		BitflagEnums: []string{"ConfigFlags", "Gesture"},
		DoublePrefixEnums: []string{
			"CubemapLayout",
			"GamepadAxis",
			"GamepadButton",
			"MaterialMapIndex",
			"MouseButton",
			"MouseCursor",
			"PixelFormat",
			"ShaderAttributeDataType",
			"ShaderLocationIndex",
			"ShaderUniformDataType",
			"TextureFilter",
			"TextureWrap",
		},
		DigitPreservingEnums: []string{"PixelFormat"},
		ReservedParams: map[string]string{
			"type": "r#type",
			"box":  "r#box",
		},
		Colors:    slices.Clone(DefaultColors),
		Targets:   []string{"rust"},
		RustFile:  "raylib_ffi.rs",
		GoFile:    "raylib_consts.go",
		GoPackage: "raylib",
	}
}

// Merge fills every unset field of o from defaults.
func (o *Options) Merge(defaults *Options) {
	if o.BitflagEnums == nil {
		o.BitflagEnums = defaults.BitflagEnums
	}
	if o.DoublePrefixEnums == nil {
		o.DoublePrefixEnums = defaults.DoublePrefixEnums
	}
	if o.DigitPreservingEnums == nil {
		o.DigitPreservingEnums = defaults.DigitPreservingEnums
	}
	if o.ReservedParams == nil {
		o.ReservedParams = defaults.ReservedParams
	}
	if o.Colors == nil {
		o.Colors = defaults.Colors
	}
	if len(o.Targets) == 0 {
		o.Targets = defaults.Targets
	}
	if o.RustFile == "" {
		o.RustFile = defaults.RustFile
	}
	if o.GoFile == "" {
		o.GoFile = defaults.GoFile
	}
	if o.GoPackage == "" {
		o.GoPackage = defaults.GoPackage
	}
}

// IsBitflag reports whether enum is emitted as a set of bit constants.
func (o *Options) IsBitflag(enum string) bool {
	return slices.Contains(o.BitflagEnums, enum)
}

// PrefixCount returns how many leading underscore-separated words are
// stripped from enum's value names.
func (o *Options) PrefixCount(enum string) int {
	if slices.Contains(o.DoublePrefixEnums, enum) {
		return 2
	}
	return 1
}

// PreservesDigits reports whether segments containing digits keep their case.
func (o *Options) PreservesDigits(enum string) bool {
	return slices.Contains(o.DigitPreservingEnums, enum)
}

// ParamName returns the escaped form of a parameter name that collides with
// a Rust keyword, or name unchanged.
func (o *Options) ParamName(name string) string {
	if escaped, ok := o.ReservedParams[name]; ok {
		return escaped
	}
	return name
}

// HasTarget reports whether target is enabled.
func (o *Options) HasTarget(target string) bool {
	return slices.Contains(o.Targets, target)
}
