package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Solar-Falcon/raylib-ffigen/gen"
	"github.com/Solar-Falcon/raylib-ffigen/resolver"
)

var (
	buildCMake      string
	buildDir        string
	buildInstallDir string
	buildType       string
	buildDryRun     bool
	buildCargo      bool
)

var buildCmd = &cobra.Command{
	Use:   "build [raylib-source-dir]",
	Short: "Build and install raylib as a static library with cmake",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildCMake, "cmake", "", "Path to cmake")
	buildCmd.Flags().StringVar(&buildDir, "build-dir", "build/raylib", "cmake build directory")
	buildCmd.Flags().StringVar(&buildInstallDir, "install-dir", "build/raylib-install", "Install prefix")
	buildCmd.Flags().StringVar(&buildType, "build-type", "Release", "CMAKE_BUILD_TYPE")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Print cmake invocations without running them")
	buildCmd.Flags().BoolVar(&buildCargo, "cargo", false, "Print cargo link directives for a Rust build script")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	sourceDir := gen.RaylibSourceDir
	if len(args) > 0 {
		sourceDir = args[0]
	}

	cmakePath, err := resolver.ResolveCMake(buildCMake)
	if err != nil {
		if !buildDryRun {
			return fmt.Errorf("cmake is required but not found: %w", err)
		}
		cmakePath = "cmake"
	}

	installDir, err := filepath.Abs(buildInstallDir)
	if err != nil {
		return fmt.Errorf("resolving install directory: %w", err)
	}

	if !quiet {
		fmt.Printf("Building raylib from %s\n", sourceDir)
	}

	n, err := gen.RunCMake(&gen.CMakeConfig{
		CMakePath:  cmakePath,
		SourceDir:  sourceDir,
		BuildDir:   buildDir,
		InstallDir: installDir,
		BuildType:  buildType,
		DryRun:     buildDryRun,
		Verbose:    verbose,
		Quiet:      quiet,
	})
	if err != nil {
		return err
	}

	if !quiet && !buildDryRun {
		fmt.Printf("Installed raylib to %s (cmake ran %d invocation(s))\n", installDir, n)
	}

	if buildCargo {
		for _, line := range gen.LinkDirectives(installDir) {
			fmt.Println(line)
		}
	}
	return nil
}
