package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRoot is the assets directory relative to the working directory.
const DefaultRoot = "assets"

// LoadShaderSource reads a GLSL source file from under the assets root.
func LoadShaderSource(root, relPath string) (string, error) {
	if root == "" {
		root = DefaultRoot
	}
	data, err := os.ReadFile(filepath.Join(root, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to read shader source %q: %w", relPath, err)
	}
	return string(data), nil
}
