package main

import (
	"os"

	"github.com/Solar-Falcon/raylib-ffigen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
