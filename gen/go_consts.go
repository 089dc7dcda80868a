package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"

	"github.com/Solar-Falcon/raylib-ffigen/model"
)

func init() {
	Register("go_consts", func() Generator { return &GoConstsGenerator{} })
}

// GoConstsGenerator produces a Go file carrying raylib's enums, integer and
// string defines, and the color palette, for Go code that talks to raylib
// through purego or cgo.
type GoConstsGenerator struct{}

func (g *GoConstsGenerator) Name() string { return "go_consts" }

func (g *GoConstsGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	code, err := GoConsts(ctx.API, ctx.Options)
	if err != nil {
		return nil, err
	}
	return []*OutputFile{
		{Path: ctx.Options.GoFile, Content: code},
	}, nil
}

// GoConsts renders the Go constants file for api.
func GoConsts(api *model.API, opts *model.Options) ([]byte, error) {
	f := jen.NewFile(opts.GoPackage)
	f.HeaderComment("Code generated by raylib-ffigen. DO NOT EDIT.")

	var defs []jen.Code
	for i := range api.Defines {
		d := &api.Defines[i]
		switch d.Kind {
		case model.DefineInt:
			v, err := d.IntValue()
			if err != nil {
				return nil, fmt.Errorf("defines[%d] %s: INT value: %w", i, d.Name, err)
			}
			defs = append(defs, jen.Id(strcase.ToCamel(d.Name)).Op("=").Lit(int(v)))
		case model.DefineString:
			v, err := d.StringValue()
			if err != nil {
				return nil, fmt.Errorf("defines[%d] %s: STRING value: %w", i, d.Name, err)
			}
			defs = append(defs, jen.Id(strcase.ToCamel(d.Name)).Op("=").Lit(v))
		}
	}
	if len(defs) > 0 {
		f.Const().Defs(defs...)
	}

	for i := range api.Enums {
		writeGoEnum(f, &api.Enums[i], opts)
	}

	if len(opts.Colors) > 0 {
		var colors []jen.Code
		for _, c := range opts.Colors {
			colors = append(colors, jen.Id(strcase.ToCamel(c.Name)).Op("=").Qual("image/color", "RGBA").Values(
				jen.Lit(int(c.R)), jen.Lit(int(c.G)), jen.Lit(int(c.B)), jen.Lit(int(c.A)),
			))
		}
		f.Comment("raylib palette.")
		f.Var().Defs(colors...)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering Go source: %w", err)
	}
	return buf.Bytes(), nil
}

func writeGoEnum(f *jen.File, e *model.Enum, opts *model.Options) {
	if e.Description != "" {
		f.Comment(fmt.Sprintf("%s: %s", e.Name, e.Description))
	}

	// Values span the full uint32 range raylib_api.json allows.
	f.Type().Id(e.Name).Uint32()

	var defs []jen.Code
	if opts.IsBitflag(e.Name) {
		for _, v := range e.Values {
			name := e.Name + strcase.ToCamel(BitflagValueName(opts, e.Name, v.Name))
			defs = append(defs, jen.Id(name).Id(e.Name).Op("=").Lit(int(v.Value)))
		}
		defs = append(defs, jen.Id(e.Name+"UnknownBits").Id(e.Name).Op("=").Lit(int(UnnamedBits(e))))
	} else {
		kept, _ := e.Distinct()
		for _, v := range kept {
			name := e.Name + EnumValueName(opts, e.Name, v.Name)
			defs = append(defs, jen.Id(name).Id(e.Name).Op("=").Lit(int(v.Value)))
		}
	}

	if len(defs) > 0 {
		f.Const().Defs(defs...)
	}
}

// UnnamedBits returns the bits of a flag set that no named value covers.
// Together with the named values it spans all 32 bits.
func UnnamedBits(e *model.Enum) uint32 {
	var named uint32
	for _, v := range e.Values {
		named |= v.Value
	}
	return ^named
}
