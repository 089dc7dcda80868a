package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [raylib_api.json]",
	Short: "Check raylib_api.json and the options file without generating",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	apiPath := resolveAPIPath(args)

	if !quiet {
		fmt.Printf("Validating %s\n", apiPath)
	}

	api, _, err := loadAndValidate(apiPath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("  Defines: %d\n", len(api.Defines))
		fmt.Printf("  Structs: %d\n", len(api.Structs))
		fmt.Printf("  Aliases: %d\n", len(api.Aliases))
		fmt.Printf("  Enums: %d\n", len(api.Enums))
		fmt.Printf("  Callbacks: %d\n", len(api.Callbacks))
		fmt.Printf("  Functions: %d\n", len(api.Functions))
	}

	if !quiet {
		fmt.Println("Validation passed.")
	}
	return nil
}
