package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Solar-Falcon/raylib-ffigen/gen"
	"github.com/Solar-Falcon/raylib-ffigen/loader"
	"github.com/Solar-Falcon/raylib-ffigen/model"
	"github.com/Solar-Falcon/raylib-ffigen/validate"
)

// APIPathEnvVar overrides the default location of raylib_api.json.
const APIPathEnvVar = "RAYLIBFFI_API_PATH"

// DefaultAPIPath is where raylib's parser writes its JSON output inside a raylib checkout.
const DefaultAPIPath = "raylib/parser/output/raylib_api.json"

var (
	genOutput  string
	genTargets []string
	genDryRun  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [raylib_api.json]",
	Short: "Generate bindings from raylib_api.json",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", ".", "Output directory")
	generateCmd.Flags().StringSliceVar(&genTargets, "targets", nil, "Override targets (comma-separated: rust, go, make)")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Show what would be generated without writing")
	rootCmd.AddCommand(generateCmd)
}

// resolveAPIPath picks the input file: the argument, then RAYLIBFFI_API_PATH,
// then the path inside a raylib checkout.
func resolveAPIPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if env := os.Getenv(APIPathEnvVar); env != "" {
		return env
	}
	return DefaultAPIPath
}

// loadAndValidate loads options and the API description and runs semantic
// validation. Warnings are printed unless quiet.
func loadAndValidate(apiPath string) (*model.API, *model.Options, error) {
	opts, err := loader.LoadOptions(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading options: %w", err)
	}

	api, err := loader.LoadAPI(apiPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading API description: %w", err)
	}

	result := validate.Validate(api, opts)
	if !quiet {
		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w.Error())
		}
	}
	if !result.IsValid() {
		return nil, nil, fmt.Errorf("validation failed:\n%s", result.Error())
	}
	return api, opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	apiPath := resolveAPIPath(args)

	if !quiet {
		fmt.Printf("Generating from %s\n", apiPath)
	}

	api, opts, err := loadAndValidate(apiPath)
	if err != nil {
		return err
	}

	if len(genTargets) > 0 {
		for _, t := range genTargets {
			if gen.GeneratorsForTarget(t) == nil {
				return fmt.Errorf("unknown target %q (valid: %v)", t, model.AllTargets)
			}
		}
		opts.Targets = genTargets
	}

	ctx := gen.NewContext(api, opts, genOutput, apiPath)
	ctx.ConfigPath = configPath

	if verbose {
		fmt.Printf("  Targets: %v\n", opts.Targets)
	}

	// Every generator runs before anything is written.
	files, err := gen.Run(ctx, opts.Targets)
	if err != nil {
		return err
	}

	var written int
	for _, f := range files {
		outPath := filepath.Join(genOutput, f.Path)

		if genDryRun {
			fmt.Printf("  Would write: %s\n", outPath)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		written++
		if verbose {
			fmt.Printf("  Wrote: %s\n", outPath)
		}
	}

	if !quiet {
		fmt.Printf("Generated %d files in %s\n", written, genOutput)
	}
	return nil
}
