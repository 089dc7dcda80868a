package resolver

import (
	"fmt"
	"os"
	"os/exec"
)

// CMakeEnvVar overrides the cmake binary used for native builds.
const CMakeEnvVar = "RAYLIBFFI_CMAKE_PATH"

// ResolveCMake finds the cmake binary using the resolution order:
// 1. Explicit flag path (if non-empty)
// 2. RAYLIBFFI_CMAKE_PATH environment variable
// 3. "cmake" in PATH
func ResolveCMake(flagPath string) (string, error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err != nil {
			return "", fmt.Errorf("cmake not found at specified path: %s", flagPath)
		}
		return flagPath, nil
	}

	if envPath := os.Getenv(CMakeEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("cmake not found at %s: %s", CMakeEnvVar, envPath)
		}
		return envPath, nil
	}

	path, err := exec.LookPath("cmake")
	if err != nil {
		return "", fmt.Errorf("cmake not found in PATH; set --cmake flag or %s environment variable", CMakeEnvVar)
	}
	return path, nil
}
