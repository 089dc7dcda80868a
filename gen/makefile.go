package gen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RaylibSourceDir is the default raylib checkout, relative to the working directory.
const RaylibSourceDir = "raylib"

func init() {
	Register("makefile", func() Generator { return &MakefileGenerator{} })
}

// MakefileGenerator produces a Makefile that rebuilds the static raylib
// library and regenerates the bindings when raylib_api.json changes.
type MakefileGenerator struct{}

func (g *MakefileGenerator) Name() string { return "makefile" }

func (g *MakefileGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	var b strings.Builder

	MakefileHeader(&b, ctx)
	MakefileCodegenStamp(&b, ctx)
	MakefileRaylibBuild(&b, ctx)

	b.WriteString(".PHONY: all bindings raylib clean\n\n")
	b.WriteString("all: bindings raylib\n\n")
	b.WriteString("bindings: $(STAMP)\n\n")
	b.WriteString("raylib: $(RAYLIB_LIB)\n\n")
	b.WriteString("clean:\n")
	b.WriteString("\trm -rf $(BUILD_DIR) $(GEN_FILES)\n")

	return []*OutputFile{
		{Path: "Makefile", Content: []byte(b.String())},
	}, nil
}

// outputRelPath rewrites path relative to the output directory, where the
// Makefile is written and run.
func outputRelPath(ctx *Context, path string) string {
	if filepath.IsAbs(path) {
		return filepath.ToSlash(path)
	}
	outDir, err := filepath.Abs(ctx.OutputDir)
	if err != nil {
		return filepath.ToSlash(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(outDir, abs)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// MakefileHeader emits the generated-file banner and core variables.
func MakefileHeader(b *strings.Builder, ctx *Context) {
	b.WriteString("# Code generated by raylib-ffigen. DO NOT EDIT.\n\n")

	var gen []string
	if ctx.Options.HasTarget("rust") {
		gen = append(gen, ctx.Options.RustFile)
	}
	if ctx.Options.HasTarget("go") {
		gen = append(gen, ctx.Options.GoFile)
	}

	fmt.Fprintf(b, "RAYLIB_FFIGEN ?= raylib-ffigen\n")
	fmt.Fprintf(b, "API_JSON  := %s\n", outputRelPath(ctx, ctx.APIPath))
	fmt.Fprintf(b, "TARGETS   := %s\n", strings.Join(ctx.Options.Targets, ","))
	fmt.Fprintf(b, "GEN_FILES := %s\n", strings.Join(gen, " "))
	fmt.Fprintf(b, "BUILD_DIR := build\n")
	fmt.Fprintf(b, "STAMP     := $(BUILD_DIR)/.generated\n\n")
}

// MakefileCodegenStamp emits the STAMP rule that reruns raylib-ffigen generate.
func MakefileCodegenStamp(b *strings.Builder, ctx *Context) {
	b.WriteString("# Codegen\n\n")
	configFlag := ""
	if ctx.ConfigPath != "" {
		configFlag = " -c " + outputRelPath(ctx, ctx.ConfigPath)
	}
	fmt.Fprintf(b, "$(STAMP): $(API_JSON)\n")
	fmt.Fprintf(b, "\t@mkdir -p $(BUILD_DIR)\n")
	fmt.Fprintf(b, "\t$(RAYLIB_FFIGEN) generate -q%s --targets $(TARGETS) -o . $(API_JSON)\n", configFlag)
	fmt.Fprintf(b, "\t@touch $@\n\n")
}

// MakefileRaylibBuild emits the rule building raylib as a static library.
// The library directory name varies by platform, so the rule depends on the
// install stamp rather than a specific lib path.
func MakefileRaylibBuild(b *strings.Builder, ctx *Context) {
	b.WriteString("# Native raylib\n\n")
	fmt.Fprintf(b, "RAYLIB_SRC     ?= %s\n", outputRelPath(ctx, RaylibSourceDir))
	b.WriteString("RAYLIB_INSTALL := $(BUILD_DIR)/raylib-install\n")
	b.WriteString("RAYLIB_LIB     := $(BUILD_DIR)/.raylib\n\n")
	b.WriteString("$(RAYLIB_LIB):\n")
	b.WriteString("\t@mkdir -p $(BUILD_DIR)\n")
	b.WriteString("\t$(RAYLIB_FFIGEN) build --build-dir $(BUILD_DIR)/raylib --install-dir $(RAYLIB_INSTALL) $(RAYLIB_SRC)\n")
	b.WriteString("\t@touch $@\n\n")
}
