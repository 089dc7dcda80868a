package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Solar-Falcon/raylib-ffigen/loader"
	"github.com/Solar-Falcon/raylib-ffigen/model"
)

// DefaultConfigName is the options file init writes.
const DefaultConfigName = "raylib-ffigen.yaml"

var (
	initOutput string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter options file holding the default naming tables",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", ".", "Output directory")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing options file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := filepath.Join(initOutput, DefaultConfigName)

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
	}

	data, err := loader.MarshalOptions(model.DefaultOptions())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(initOutput, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", initOutput, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing options: %w", err)
	}

	if !quiet {
		fmt.Printf("Created:\n")
		fmt.Printf("  %s\n", path)
		fmt.Printf("\nNext: raylib-ffigen generate -c %s\n", path)
	}
	return nil
}
