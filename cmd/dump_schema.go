package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Solar-Falcon/raylib-ffigen/loader"
)

var (
	dumpSchemaOutput  string
	dumpSchemaOptions bool
)

var dumpSchemaCmd = &cobra.Command{
	Use:   "dump_schema",
	Short: "Print the built-in raylib_api.json JSON Schema",
	Long:  "Prints the JSON Schema used to validate raylib_api.json. With --options, prints the options file schema instead. Use -o to write to a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema := loader.APISchemaJSON()
		if dumpSchemaOptions {
			schema = loader.OptionsSchemaJSON()
		}
		if dumpSchemaOutput == "" {
			fmt.Println(schema)
			return nil
		}
		if err := os.WriteFile(dumpSchemaOutput, []byte(schema+"\n"), 0644); err != nil {
			return fmt.Errorf("writing schema to %s: %w", dumpSchemaOutput, err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Schema written to %s\n", dumpSchemaOutput)
		}
		return nil
	},
}

func init() {
	dumpSchemaCmd.Flags().StringVarP(&dumpSchemaOutput, "output", "o", "", "Write schema to file instead of stdout")
	dumpSchemaCmd.Flags().BoolVar(&dumpSchemaOptions, "options", false, "Print the options file schema")
	rootCmd.AddCommand(dumpSchemaCmd)
}
