package gen

import (
	"fmt"
	"strings"

	"github.com/Solar-Falcon/raylib-ffigen/model"
)

func init() {
	Register("rust_ffi", func() Generator { return &RustFFIGenerator{} })
}

// Constants and opaque types raylib.h does not describe in raylib_api.json.
const rustPrelude = "pub const MAX_SHADER_LOCATIONS: usize = 32;\n" +
	"pub const MAX_MATERIAL_MAPS: usize = 12;\n\n" +
	"#[repr(C)]\npub struct rAudioBuffer { _empty: core::marker::PhantomData<()> }\n" +
	"#[repr(C)]\npub struct rAudioProcessor { _empty: core::marker::PhantomData<()> }\n\n"

// OpaqueTypes lists the placeholder types the prelude declares.
var OpaqueTypes = []string{"rAudioBuffer", "rAudioProcessor"}

// RustFFIGenerator produces the raw Rust declarations for raylib:
// constants, repr(C) structs, type aliases, enums or bitflags, callback
// pointer types and one extern "C" block.
type RustFFIGenerator struct{}

func (g *RustFFIGenerator) Name() string { return "rust_ffi" }

func (g *RustFFIGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	code, err := RustFFI(ctx.API, ctx.Options)
	if err != nil {
		return nil, err
	}
	return []*OutputFile{
		{Path: ctx.Options.RustFile, Content: []byte(code)},
	}, nil
}

// RustFFI renders the complete bindings source for api.
func RustFFI(api *model.API, opts *model.Options) (string, error) {
	var b strings.Builder

	b.WriteString(rustPrelude)
	writeRustColors(&b, opts.Colors)

	for i := range api.Defines {
		if err := writeRustDefine(&b, &api.Defines[i]); err != nil {
			return "", fmt.Errorf("defines[%d] %s: %w", i, api.Defines[i].Name, err)
		}
	}

	for i := range api.Structs {
		if err := writeRustStruct(&b, &api.Structs[i]); err != nil {
			return "", fmt.Errorf("structs[%d] %s: %w", i, api.Structs[i].Name, err)
		}
	}

	for i, alias := range api.Aliases {
		rt, err := RustType(alias.Type)
		if err != nil {
			return "", fmt.Errorf("aliases[%d] %s: %w", i, alias.Name, err)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "/// %s\n", alias.Description)
		fmt.Fprintf(&b, "pub type %s = %s;\n", alias.Name, rt)
	}

	for i := range api.Enums {
		writeRustEnum(&b, &api.Enums[i], opts)
	}

	for i := range api.Callbacks {
		cb := &api.Callbacks[i]
		sig, err := rustSignature(cb, opts)
		if err != nil {
			return "", fmt.Errorf("callbacks[%d] %s: %w", i, cb.Name, err)
		}
		fmt.Fprintf(&b, "/// %s\n", cb.Description)
		fmt.Fprintf(&b, "pub type %s = Option<unsafe extern \"C\" fn%s>;\n", cb.Name, sig)
	}

	b.WriteString("\nextern \"C\" {\n")
	for i := range api.Functions {
		fn := &api.Functions[i]
		sig, err := rustSignature(fn, opts)
		if err != nil {
			return "", fmt.Errorf("functions[%d] %s: %w", i, fn.Name, err)
		}
		fmt.Fprintf(&b, "\t/// %s\n", fn.Description)
		fmt.Fprintf(&b, "\tpub fn %s%s;\n", fn.Name, sig)
	}
	b.WriteString("}\n")

	return b.String(), nil
}

// writeRustColors emits the palette as Color constants in a nested module.
func writeRustColors(b *strings.Builder, colors []model.NamedColor) {
	b.WriteString("pub mod colors {\n")
	for _, c := range colors {
		fmt.Fprintf(b, "\tpub const %s: super::Color = super::Color { r: %d, g: %d, b: %d, a: %d };\n",
			c.Name, c.R, c.G, c.B, c.A)
	}
	b.WriteString("}\n\n")
}

// writeRustDefine emits INT and STRING defines. Other kinds are skipped.
func writeRustDefine(b *strings.Builder, d *model.Definition) error {
	switch d.Kind {
	case model.DefineInt:
		v, err := d.IntValue()
		if err != nil {
			return fmt.Errorf("INT value: %w", err)
		}
		fmt.Fprintf(b, "pub const %s: u32 = %d;\n", d.Name, v)
	case model.DefineString:
		v, err := d.StringValue()
		if err != nil {
			return fmt.Errorf("STRING value: %w", err)
		}
		fmt.Fprintf(b, "pub const %s: &str = \"%s\";\n", d.Name, v)
	default:
		Logger().Debug("skipping define", "name", d.Name, "kind", d.Kind)
	}
	return nil
}

// writeRustStruct emits a repr(C) struct. Field order is the C layout and is preserved.
func writeRustStruct(b *strings.Builder, s *model.Struct) error {
	b.WriteString("\n")
	fmt.Fprintf(b, "/// %s\n", s.Description)
	b.WriteString("#[repr(C)]\n")
	b.WriteString("#[derive(Clone, Debug)]\n")
	fmt.Fprintf(b, "pub struct %s {\n", s.Name)

	for _, field := range s.Fields {
		rt, err := RustType(field.Type)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		fmt.Fprintf(b, "\t/// %s\n", field.Description)
		fmt.Fprintf(b, "\tpub %s: %s,\n", field.Name, rt)
	}

	b.WriteString("}\n")
	return nil
}

func writeRustEnum(b *strings.Builder, e *model.Enum, opts *model.Options) {
	b.WriteString("\n")
	fmt.Fprintf(b, "/// %s\n", e.Description)
	b.WriteString("#[repr(C)]\n")
	b.WriteString("#[derive(Clone, Copy, Debug, PartialEq, Eq, Hash)]\n")
	b.WriteString("#[cfg_attr(feature = \"serde\", derive(serde::Serialize, serde::Deserialize))]\n")

	if opts.IsBitflag(e.Name) {
		writeRustBitflags(b, e, opts)
		return
	}

	fmt.Fprintf(b, "pub enum %s {\n", e.Name)

	kept, dropped := e.Distinct()
	for _, v := range dropped {
		Logger().Debug("dropping duplicate enum value", "enum", e.Name, "name", v.Name, "value", v.Value)
	}
	for _, v := range kept {
		fmt.Fprintf(b, "\t/// %s\n", v.Description)
		fmt.Fprintf(b, "\t%s = %d,\n", EnumValueName(opts, e.Name, v.Name), v.Value)
	}

	b.WriteString("}\n")
}

// writeRustBitflags emits a bitflags! type. The trailing `const _ = !0`
// declares every bit as known so arbitrary patterns survive from_bits.
func writeRustBitflags(b *strings.Builder, e *model.Enum, opts *model.Options) {
	fmt.Fprintf(b, "pub struct %s(u32);\n\n", e.Name)
	fmt.Fprintf(b, "bitflags::bitflags! {\n\timpl %s: u32 {\n", e.Name)

	for _, v := range e.Values {
		fmt.Fprintf(b, "\t\t/// %s\n", v.Description)
		fmt.Fprintf(b, "\t\tconst %s = %d;\n", BitflagValueName(opts, e.Name, v.Name), v.Value)
	}
	b.WriteString("\n\t\tconst _ = !0;\n")

	b.WriteString("\t}\n}\n")
}

// rustSignature renders "(a: T, b: U, ) -> R" for a function or callback.
// Every parameter is followed by ", " and varargs become "..., ".
func rustSignature(fn *model.Function, opts *model.Options) (string, error) {
	var b strings.Builder
	b.WriteString("(")

	for _, p := range fn.Params {
		if p.IsVariadic() {
			b.WriteString("..., ")
			continue
		}
		rt, err := RustType(p.Type)
		if err != nil {
			return "", fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		fmt.Fprintf(&b, "%s: %s, ", opts.ParamName(p.Name), rt)
	}

	b.WriteString(")")

	if !fn.ReturnsVoid() {
		rt, err := RustType(fn.ReturnType)
		if err != nil {
			return "", fmt.Errorf("return type: %w", err)
		}
		fmt.Fprintf(&b, " -> %s", rt)
	}
	return b.String(), nil
}
