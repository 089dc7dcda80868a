package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Solar-Falcon/raylib-ffigen/loader"
	"github.com/Solar-Falcon/raylib-ffigen/model"
)

var fixturePath = filepath.Join("..", "testdata", "raylib_api.json")

// execute runs the root command with args and restores flag globals afterwards.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		verbose, quiet, configPath = false, false, ""
		genOutput, genTargets, genDryRun = ".", nil, false
		initOutput, initForce = ".", false
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestResolveAPIPath(t *testing.T) {
	t.Setenv(APIPathEnvVar, "")
	if got := resolveAPIPath(nil); got != DefaultAPIPath {
		t.Errorf("default = %q", got)
	}

	t.Setenv(APIPathEnvVar, "/tmp/api.json")
	if got := resolveAPIPath(nil); got != "/tmp/api.json" {
		t.Errorf("env = %q", got)
	}
	if got := resolveAPIPath([]string{"arg.json"}); got != "arg.json" {
		t.Errorf("argument should win, got %q", got)
	}
}

func TestGenerate_WritesTargets(t *testing.T) {
	out := t.TempDir()
	if err := execute(t, "generate", "-q", "-o", out, "--targets", "rust,go", fixturePath); err != nil {
		t.Fatalf("generate: %v", err)
	}

	rust, err := os.ReadFile(filepath.Join(out, "raylib_ffi.rs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rust), "pub fn InitWindow(") {
		t.Error("Rust output missing InitWindow")
	}
	if _, err := os.Stat(filepath.Join(out, "raylib_consts.go")); err != nil {
		t.Errorf("Go output not written: %v", err)
	}
}

func TestGenerate_WithConfig(t *testing.T) {
	out := t.TempDir()
	config := filepath.Join("..", "testdata", "options.yaml")
	if err := execute(t, "generate", "-q", "-c", config, "-o", out, fixturePath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	code, err := os.ReadFile(filepath.Join(out, "raylib_consts.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "package rl") {
		t.Error("go_package from options file ignored")
	}
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen")
	if err := execute(t, "generate", "-q", "--dry-run", "-o", out, fixturePath); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("dry run created the output directory")
	}
}

func TestGenerate_UnknownTarget(t *testing.T) {
	err := execute(t, "generate", "-q", "-o", t.TempDir(), "--targets", "kotlin", fixturePath)
	if err == nil || !strings.Contains(err.Error(), "unknown target") {
		t.Fatalf("expected unknown target error, got %v", err)
	}
}

func TestValidate_Fixture(t *testing.T) {
	if err := execute(t, "validate", "-q", fixturePath); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	err := execute(t, "validate", "-q", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInit_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := execute(t, "init", "-q", "-o", dir); err != nil {
		t.Fatalf("init: %v", err)
	}

	opts, err := loader.LoadOptions(filepath.Join(dir, DefaultConfigName))
	if err != nil {
		t.Fatalf("loading written options: %v", err)
	}
	if !reflect.DeepEqual(opts, model.DefaultOptions()) {
		t.Errorf("round trip changed options:\n%+v", opts)
	}

	if err := execute(t, "init", "-q", "-o", dir); err == nil {
		t.Error("second init without --force should fail")
	}
}
