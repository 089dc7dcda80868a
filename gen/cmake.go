package gen

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// CMakeConfig holds configuration for building the raylib C library.
type CMakeConfig struct {
	CMakePath  string // resolved cmake binary path
	SourceDir  string // raylib checkout containing CMakeLists.txt
	BuildDir   string // scratch directory for the cmake build tree
	InstallDir string // install prefix; link directives point below it
	BuildType  string // CMAKE_BUILD_TYPE, e.g. "Release"
	DryRun     bool
	Verbose    bool
	Quiet      bool
}

// cmakeSteps returns the argument lists for configure, build and install.
func cmakeSteps(cfg *CMakeConfig) [][]string {
	buildType := cfg.BuildType
	if buildType == "" {
		buildType = "Release"
	}
	return [][]string{
		{
			"-S", cfg.SourceDir,
			"-B", cfg.BuildDir,
			"-DBUILD_EXAMPLES=OFF",
			"-DCMAKE_BUILD_TYPE=" + buildType,
			"-DCMAKE_INSTALL_PREFIX=" + cfg.InstallDir,
		},
		{"--build", cfg.BuildDir, "--config", buildType},
		{"--install", cfg.BuildDir, "--config", buildType},
	}
}

// RunCMake configures, builds and installs raylib as a static library.
// Returns the number of cmake invocations run.
func RunCMake(cfg *CMakeConfig) (int, error) {
	steps := cmakeSteps(cfg)

	for _, args := range steps {
		if cfg.DryRun {
			fmt.Printf("  Would run: %s %s\n", cfg.CMakePath, strings.Join(args, " "))
			continue
		}

		if cfg.Verbose {
			fmt.Printf("  Running: %s %s\n", cfg.CMakePath, strings.Join(args, " "))
		}

		cmd := exec.Command(cfg.CMakePath, args...)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return 0, fmt.Errorf("cmake %s failed: %w\n%s", args[0], err, string(output))
		}

		if !cfg.Quiet && len(output) > 0 {
			fmt.Print(string(output))
		}
	}

	if cfg.DryRun {
		return 0, nil
	}
	return len(steps), nil
}

// LinkDirectives returns the cargo build-script lines that link the static
// raylib installed under installDir. The library directory name differs
// across platforms, so all three are searched.
func LinkDirectives(installDir string) []string {
	var lines []string
	for _, dir := range []string{"lib", "lib64", "lib32"} {
		lines = append(lines, "cargo:rustc-link-search=native="+filepath.Join(installDir, dir))
	}
	return append(lines, "cargo:rustc-link-lib=static=raylib")
}
