package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Solar-Falcon/raylib-ffigen/gen"
)

var (
	verbose    bool
	quiet      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "raylib-ffigen",
	Short: "raylib FFI binding generator",
	Long:  "raylib-ffigen turns raylib's raylib_api.json into Rust FFI declarations and Go constants, and builds the static raylib library.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			gen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Options file (YAML); defaults are used when omitted")
}

func Execute() error {
	return rootCmd.Execute()
}
